package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/trufaria/storefront-backend/internal/entity"
)

type seedProduct struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
	Quantity    int     `yaml:"quantity"`
	Active      bool    `yaml:"active"`
}

// LoadCatalogSeed reads a YAML product seed file of the form:
//
//	products:
//	  - id: 1
//	    name: Trufa de Chocolate
//	    price: 5.0
//	    active: true
//
// An omitted quantity defaults to 1.
func LoadCatalogSeed(path string) ([]entity.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}

	var doc struct {
		Products []seedProduct `yaml:"products"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog seed %s: no products", path)
	}

	out := make([]entity.Product, 0, len(doc.Products))
	for _, sp := range doc.Products {
		q := sp.Quantity
		if q == 0 {
			q = 1
		}
		out = append(out, entity.Product{
			ID:          sp.ID,
			Name:        sp.Name,
			Price:       decimal.NewFromFloat(sp.Price),
			Image:       sp.Image,
			Description: sp.Description,
			Quantity:    q,
			Active:      sp.Active,
		})
	}
	return out, nil
}
