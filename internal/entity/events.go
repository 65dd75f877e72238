package entity

import "time"

// Event represents a domain event emitted after a successful mutation.
type Event interface {
	EventType() string
}

// OrderPlaced is emitted when an order is recorded in the ledger.
type OrderPlaced struct {
	OrderID  int         `json:"order_id"`
	Items    []OrderItem `json:"items"`
	Customer string      `json:"customer"`
	PlacedAt time.Time   `json:"placed_at"`
}

func (e OrderPlaced) EventType() string { return "OrderPlaced" }

// OrderRemoved is emitted when a single order is deleted.
type OrderRemoved struct {
	OrderID   int       `json:"order_id"`
	RemovedAt time.Time `json:"removed_at"`
}

func (e OrderRemoved) EventType() string { return "OrderRemoved" }

// OrdersCleared is emitted when the ledger is wiped in bulk.
type OrdersCleared struct {
	Removed   int       `json:"removed"`
	ClearedAt time.Time `json:"cleared_at"`
}

func (e OrdersCleared) EventType() string { return "OrdersCleared" }

// ProductActivationChanged is emitted when a product is switched
// between active and inactive.
type ProductActivationChanged struct {
	ProductID int  `json:"product_id"`
	Active    bool `json:"active"`
}

func (e ProductActivationChanged) EventType() string { return "ProductActivationChanged" }

// AccountRegistered is emitted when a new account is created.
type AccountRegistered struct {
	AccountID int    `json:"account_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

func (e AccountRegistered) EventType() string { return "AccountRegistered" }
