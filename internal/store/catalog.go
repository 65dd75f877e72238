package store

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/trufaria/storefront-backend/internal/entity"
)

// Catalog holds the product records in insertion order. Products are
// created once at initialization and never deleted; only the active
// flag is mutable afterwards.
type Catalog struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewCatalog builds a catalog from the given seed. Ids must be unique
// and prices non-negative, otherwise the seed is rejected.
func NewCatalog(seed []entity.Product) (*Catalog, error) {
	seen := make(map[int]struct{}, len(seed))
	for _, p := range seed {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog seed: duplicate product id %d: %w", p.ID, ErrInvalidInput)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("catalog seed: product %d has negative price: %w", p.ID, ErrInvalidInput)
		}
		seen[p.ID] = struct{}{}
	}

	c := &Catalog{products: make([]entity.Product, len(seed))}
	copy(c.products, seed)
	return c, nil
}

// DefaultProducts is the built-in catalog seed, used when no seed file
// is configured.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Trufa de Chocolate", Price: decimal.NewFromFloat(5.0), Image: "trufachocolate.jpg", Description: "Deliciosa trufa recheada com ganache de chocolate meio amargo.", Quantity: 1, Active: true},
		{ID: 2, Name: "Trufa de Maracujá", Price: decimal.NewFromFloat(5.5), Image: "trufamaracuja.jpg", Description: "Trufa cremosa com recheio de maracujá e cobertura branca.", Quantity: 1, Active: true},
		{ID: 3, Name: "Trufa de Coco", Price: decimal.NewFromFloat(5.0), Image: "trufacoco.jpg", Description: "Recheio de coco com cobertura de chocolate ao leite.", Quantity: 1, Active: true},
		{ID: 4, Name: "Trufa de Limão", Price: decimal.NewFromFloat(5.5), Image: "trufalimão.jpg", Description: "Trufa refrescante com recheio de limão siciliano.", Quantity: 1, Active: false},
		{ID: 5, Name: "Trufa de Morango", Price: decimal.NewFromFloat(5.5), Image: "trufamorango.jpg", Description: "Trufa com recheio de morango e cobertura de chocolate ao leite.", Quantity: 1, Active: false},
	}
}

// List returns the products in insertion order. With activeOnly set it
// returns only the active subset, preserving relative order. An empty
// catalog yields an empty slice, never nil errors.
func (c *Catalog) List(activeOnly bool) []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Product, 0, len(c.products))
	for _, p := range c.products {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SetActive updates the active flag of the product with the given id
// and returns the updated record. A nil desired flips the current
// value; toggle semantics are kept for callers that omit the field.
func (c *Catalog) SetActive(id int, desired *bool) (entity.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		if desired != nil {
			c.products[i].Active = *desired
		} else {
			c.products[i].Active = !c.products[i].Active
		}
		return c.products[i], nil
	}
	return entity.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
}
