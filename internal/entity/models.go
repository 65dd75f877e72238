package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item in the storefront catalog. Ids are
// assigned at catalog initialization and never reused; only the
// Active flag changes after creation.
//
// JSON field names follow the storefront wire format the frontend
// already speaks (descricao, ativo).
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"descricao"`
	Quantity    int             `json:"quantity"`
	Active      bool            `json:"ativo"`
}

// OrderItem is a line item within an order. It references a catalog
// product by id; the reference is weak and never checked against the
// catalog at submission time.
type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// Order represents a submitted customer order. Orders are immutable
// once created; they can only be removed.
type Order struct {
	ID        int         `json:"id"`
	Items     []OrderItem `json:"produtos"`
	Customer  string      `json:"nome"`
	Phone     string      `json:"telefone"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Account is a storefront account. Passwords are stored as given and
// never serialized.
type Account struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Password string `json:"-"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"telephone"`
	Role     string `json:"role"` // "admin" or "user"
}
