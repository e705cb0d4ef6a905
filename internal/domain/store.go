package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Store is an ordered collection of products. Membership is decided by
// product ID, never by pointer.
type Store struct {
	products []*Product
}

func NewStore(products []*Product) (*Store, error) {
	for i, p := range products {
		if p == nil {
			return nil, invalidf(fmt.Sprintf("element %d", i), ErrNilProduct)
		}
	}
	owned := make([]*Product, len(products))
	copy(owned, products)
	return &Store{products: owned}, nil
}

func (s *Store) AddProduct(p *Product) error {
	if p == nil {
		return invalid(ErrNilProduct)
	}
	if s.indexOf(p.ID()) >= 0 {
		return invalidf(p.Name(), ErrDuplicateProduct)
	}
	s.products = append(s.products, p)
	return nil
}

func (s *Store) RemoveProduct(p *Product) error {
	if p == nil {
		return invalid(ErrNilProduct)
	}
	i := s.indexOf(p.ID())
	if i < 0 {
		return invalidf(p.Name(), ErrProductNotFound)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

// Find returns the store-held instance for id.
func (s *Store) Find(id uuid.UUID) (*Product, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, invalidf(id.String(), ErrProductNotFound)
	}
	return s.products[i], nil
}

// TotalQuantity sums stock over every product, active or not.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the products eligible for listing and purchase, in
// store order.
func (s *Store) ActiveProducts() []*Product {
	out := make([]*Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Products() []*Product {
	out := make([]*Product, len(s.products))
	copy(out, s.products)
	return out
}

// Order fulfills lines in input order against the store-held products.
//
// An unknown or inactive product aborts the call with an error; lines bought
// before that point stay bought. A line that fails to buy (for example on
// insufficient stock) is recorded in the result and skipped, and the
// remaining lines are still processed. TotalCost covers successful lines only.
func (s *Store) Order(lines []OrderLine) (*OrderResult, error) {
	result := &OrderResult{Lines: make([]LineOutcome, 0, len(lines))}
	for i, line := range lines {
		product, err := s.Find(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if !product.IsActive() {
			return nil, fmt.Errorf("line %d: %w", i+1, invalidf(product.Name(), ErrProductInactive))
		}

		outcome := LineOutcome{
			ProductID: product.ID(),
			Name:      product.Name(),
			Requested: line.Quantity,
		}
		cost, err := product.Buy(line.Quantity)
		if err != nil {
			outcome.Err = err
		} else {
			outcome.Cost = cost
			result.TotalCost += cost
		}
		outcome.Product = product.Snapshot()
		result.Lines = append(result.Lines, outcome)
	}
	return result, nil
}

func (s *Store) indexOf(id uuid.UUID) int {
	for i, p := range s.products {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
