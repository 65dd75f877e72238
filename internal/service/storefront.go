package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/trufaria/storefront-backend/internal/entity"
	"github.com/trufaria/storefront-backend/internal/messaging"
	"github.com/trufaria/storefront-backend/internal/store"
)

// Storefront orchestrates the catalog, ledger and account stores.
// Every external operation maps to exactly one store operation; after
// a successful mutation the matching domain event is published. Event
// publishing sits outside the store boundary and never fails the
// caller.
type Storefront struct {
	catalog   *store.Catalog
	ledger    *store.Ledger
	accounts  *store.Accounts
	publisher messaging.Publisher
	topic     string
}

func NewStorefront(
	catalog *store.Catalog,
	ledger *store.Ledger,
	accounts *store.Accounts,
	publisher messaging.Publisher,
	topic string,
) *Storefront {
	return &Storefront{
		catalog:   catalog,
		ledger:    ledger,
		accounts:  accounts,
		publisher: publisher,
		topic:     topic,
	}
}

// Envelope wraps a published event with identity and timing metadata.
type Envelope struct {
	EventID    string       `json:"event_id"`
	EventType  string       `json:"event_type"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    entity.Event `json:"payload"`
}

func (s *Storefront) publish(ctx context.Context, key string, event entity.Event) {
	env := Envelope{
		EventID:    uuid.New().String(),
		EventType:  event.EventType(),
		OccurredAt: time.Now().UTC(),
		Payload:    event,
	}
	if err := s.publisher.PublishEvent(ctx, s.topic, key, env); err != nil {
		slog.Error("Failed to publish event", "type", env.EventType, "err", err)
	}
}

// ListProducts returns the catalog in insertion order, optionally
// restricted to active products.
func (s *Storefront) ListProducts(ctx context.Context, activeOnly bool) []entity.Product {
	return s.catalog.List(activeOnly)
}

// SetProductActive sets or toggles a product's active flag. A nil
// desired means toggle.
func (s *Storefront) SetProductActive(ctx context.Context, id int, desired *bool) (entity.Product, error) {
	p, err := s.catalog.SetActive(id, desired)
	if err != nil {
		return entity.Product{}, err
	}

	s.publish(ctx, "product-"+strconv.Itoa(p.ID), entity.ProductActivationChanged{
		ProductID: p.ID,
		Active:    p.Active,
	})
	return p, nil
}

// PlaceOrder records a new order in the ledger. The items may
// reference product ids that do not exist or are inactive; orders keep
// displaying historically even if the catalog changes underneath them.
// If a referential-integrity policy is ever wanted, this is the place
// to add it, not the ledger.
func (s *Storefront) PlaceOrder(ctx context.Context, items []entity.OrderItem, customer, phone string) (entity.Order, error) {
	o, err := s.ledger.Create(items, customer, phone)
	if err != nil {
		return entity.Order{}, err
	}

	s.publish(ctx, strconv.Itoa(o.ID), entity.OrderPlaced{
		OrderID:  o.ID,
		Items:    o.Items,
		Customer: o.Customer,
		PlacedAt: o.CreatedAt,
	})
	return o, nil
}

// ListOrders returns the retained orders in insertion order.
func (s *Storefront) ListOrders(ctx context.Context) []entity.Order {
	return s.ledger.List()
}

// RemoveOrder deletes a single order and returns the removed record.
func (s *Storefront) RemoveOrder(ctx context.Context, id int) (entity.Order, error) {
	o, err := s.ledger.Delete(id)
	if err != nil {
		return entity.Order{}, err
	}

	s.publish(ctx, strconv.Itoa(o.ID), entity.OrderRemoved{
		OrderID:   o.ID,
		RemovedAt: time.Now().UTC(),
	})
	return o, nil
}

// ClearOrders wipes the ledger and returns how many orders were
// removed. The order id counter is not reset.
func (s *Storefront) ClearOrders(ctx context.Context) int {
	n := s.ledger.Clear()

	s.publish(ctx, "orders", entity.OrdersCleared{
		Removed:   n,
		ClearedAt: time.Now().UTC(),
	})
	return n
}

// Login authenticates an account by name and password.
func (s *Storefront) Login(ctx context.Context, name, password string) (entity.Account, error) {
	return s.accounts.Authenticate(name, password)
}

// Register creates a new account with the "user" role.
func (s *Storefront) Register(ctx context.Context, name, password, email, fullName, phone string) (entity.Account, error) {
	acc, err := s.accounts.Register(name, password, email, fullName, phone)
	if err != nil {
		return entity.Account{}, err
	}

	s.publish(ctx, "account-"+strconv.Itoa(acc.ID), entity.AccountRegistered{
		AccountID: acc.ID,
		Name:      acc.Name,
		Role:      acc.Role,
	})
	return acc, nil
}
