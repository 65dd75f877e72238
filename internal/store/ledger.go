package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/trufaria/storefront-backend/internal/entity"
	"github.com/trufaria/storefront-backend/internal/validate"
)

// Ledger holds submitted orders in insertion order and owns the
// process-wide order id counter. Ids start at 1, increase strictly and
// are never reused: neither Delete nor Clear winds the counter back.
type Ledger struct {
	mu     sync.RWMutex
	orders []entity.Order
	nextID int

	now func() time.Time
}

func NewLedger() *Ledger {
	return &Ledger{nextID: 1, now: time.Now}
}

// Create validates the submission, allocates the next sequential id,
// stamps the creation time and appends the order to the ledger. The
// product ids inside the items are taken as given; whether they exist
// or are active in the catalog is not this store's concern.
func (l *Ledger) Create(items []entity.OrderItem, customer, phone string) (entity.Order, error) {
	if !validate.OrderSubmission(items, customer, phone) {
		return entity.Order{}, fmt.Errorf("order submission: %w", ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	o := entity.Order{
		ID:        l.nextID,
		Items:     append([]entity.OrderItem(nil), items...),
		Customer:  customer,
		Phone:     phone,
		CreatedAt: l.now().UTC(),
	}
	l.nextID++
	l.orders = append(l.orders, o)
	return o, nil
}

// List returns the retained orders in insertion order.
func (l *Ledger) List() []entity.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]entity.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Delete removes the order with the given id and returns it so callers
// can report what was removed. Removal is positional; ids are never
// derived from position, so the counter is untouched.
func (l *Ledger) Delete(id int) (entity.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, o := range l.orders {
		if o.ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return o, nil
		}
	}
	return entity.Order{}, fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// Clear drops every retained order and returns how many were removed.
// The id counter keeps its high-water mark so ids issued after a clear
// are still strictly increasing.
func (l *Ledger) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.orders)
	l.orders = nil
	return n
}
