package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Product is a named, priced stock item. The zero value is not usable; build
// products with NewProduct so the active flag follows the initial quantity.
type Product struct {
	id       uuid.UUID
	name     string
	price    float64
	quantity int
	active   bool
}

// ProductView is a read-only copy of a product for rendering and JSON output.
type ProductView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Active   bool      `json:"active"`
}

// MaxQuantity bounds a single product's stock so store totals cannot overflow.
const MaxQuantity = math.MaxInt32

func NewProduct(name string, price float64, quantity int) (*Product, error) {
	if name == "" {
		return nil, invalid(ErrInvalidName)
	}
	if !validPrice(price) {
		return nil, invalid(ErrInvalidPrice)
	}
	if !validQuantity(quantity) {
		return nil, invalid(ErrInvalidQuantity)
	}
	return &Product{
		id:       uuid.New(),
		name:     name,
		price:    price,
		quantity: quantity,
		active:   quantity != 0,
	}, nil
}

func (p *Product) ID() uuid.UUID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Price() float64 { return p.price }
func (p *Product) Quantity() int { return p.quantity }
func (p *Product) IsActive() bool { return p.active }
func (p *Product) Activate() { p.active = true }
func (p *Product) Deactivate() { p.active = false }

// SetQuantity replaces the stock level. Reaching zero deactivates the
// product; a positive value never reactivates it, call Activate for that.
func (p *Product) SetQuantity(quantity int) error {
	if !validQuantity(quantity) {
		return invalidf("new quantity", ErrInvalidQuantity)
	}
	if quantity == 0 {
		p.active = false
	}
	p.quantity = quantity
	return nil
}

// Buy takes quantity units out of stock and returns the line cost.
func (p *Product) Buy(quantity int) (float64, error) {
	if quantity < 0 {
		return 0, invalid(ErrInvalidQuantity)
	}
	if quantity > p.quantity {
		return 0, invalidf(fmt.Sprintf("requested %d, have %d", quantity, p.quantity), ErrInsufficientStock)
	}
	if err := p.SetQuantity(p.quantity - quantity); err != nil {
		return 0, err
	}
	return p.price * float64(quantity), nil
}

func validPrice(price float64) bool {
	return price >= 0 && !math.IsInf(price, 0)
}

func validQuantity(quantity int) bool {
	return quantity >= 0 && quantity <= MaxQuantity
}

func (p *Product) Snapshot() ProductView {
	return ProductView{
		ID:       p.id,
		Name:     p.name,
		Price:    p.price,
		Quantity: p.quantity,
		Active:   p.active,
	}
}

func (p *Product) String() string {
	return p.Snapshot().String()
}

func (v ProductView) String() string {
	return fmt.Sprintf("%s, Price: %s, Quantity: %d", v.Name, FormatAmount(v.Price), v.Quantity)
}

// FormatAmount renders a price or cost with the shortest exact decimal form,
// so 1450 prints as "1450" and 249.5 as "249.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
