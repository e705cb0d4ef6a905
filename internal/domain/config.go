package domain

import (
	"errors"
	"fmt"
)

// DefaultStoreName is used when a catalog does not name its store.
const DefaultStoreName = "Best Buy"

// CatalogConfig holds the initial store contents loaded from .stockroom.yaml.
type CatalogConfig struct {
	StoreName string        `yaml:"store_name" json:"store_name,omitempty"`
	Products  []ProductSeed `yaml:"products"   json:"products"`
}

// ProductSeed describes one product of the initial catalog.
// Active is a pointer so "not specified" keeps the quantity-derived flag.
type ProductSeed struct {
	Name     string  `yaml:"name"             json:"name"`
	Price    float64 `yaml:"price"            json:"price"`
	Quantity int     `yaml:"quantity"         json:"quantity"`
	Active   *bool   `yaml:"active,omitempty" json:"active,omitempty"`
}

// DefaultCatalog returns the built-in catalog used when no file is present.
func DefaultCatalog() CatalogConfig {
	return CatalogConfig{
		StoreName: DefaultStoreName,
		Products: []ProductSeed{
			{Name: "MacBook Air M2", Price: 1450, Quantity: 100},
			{Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 500},
			{Name: "Google Pixel 7", Price: 500, Quantity: 250},
		},
	}
}

// Validate checks every seed and reports all problems at once.
func (c CatalogConfig) Validate() error {
	var errs []error
	for i, seed := range c.Products {
		if seed.Name == "" {
			errs = append(errs, fmt.Errorf("products[%d]: %w", i, ErrInvalidName))
		}
		if !validPrice(seed.Price) {
			errs = append(errs, fmt.Errorf("products[%d] %q: %w", i, seed.Name, ErrInvalidPrice))
		}
		if !validQuantity(seed.Quantity) {
			errs = append(errs, fmt.Errorf("products[%d] %q: %w", i, seed.Name, ErrInvalidQuantity))
		}
	}
	return errors.Join(errs...)
}

// Name returns the configured store name or DefaultStoreName.
func (c CatalogConfig) Name() string {
	if c.StoreName == "" {
		return DefaultStoreName
	}
	return c.StoreName
}

// BuildStore turns the catalog into a Store, applying explicit active flags.
func (c CatalogConfig) BuildStore() (*Store, error) {
	products := make([]*Product, 0, len(c.Products))
	for i, seed := range c.Products {
		p, err := NewProduct(seed.Name, seed.Price, seed.Quantity)
		if err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
		if seed.Active != nil {
			if *seed.Active {
				p.Activate()
			} else {
				p.Deactivate()
			}
		}
		products = append(products, p)
	}
	return NewStore(products)
}
