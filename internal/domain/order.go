package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// OrderLine requests Quantity units of the product with ProductID.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// LineOutcome is what happened to one order line. Err is set for a per-line
// failure; such a line contributes nothing to the order total. Product is the
// product's state once the line was processed.
type LineOutcome struct {
	ProductID uuid.UUID
	Name      string
	Requested int
	Cost      float64
	Err       error
	Product   ProductView
}

func (o LineOutcome) OK() bool { return o.Err == nil }

func (o LineOutcome) MarshalJSON() ([]byte, error) {
	type wire struct {
		ProductID uuid.UUID `json:"product_id"`
		Name      string    `json:"name"`
		Requested int       `json:"requested"`
		Cost      float64   `json:"cost"`
		Error     string    `json:"error,omitempty"`
	}
	w := wire{
		ProductID: o.ProductID,
		Name:      o.Name,
		Requested: o.Requested,
		Cost:      o.Cost,
	}
	if o.Err != nil {
		w.Error = o.Err.Error()
	}
	return json.Marshal(w)
}

type OrderResult struct {
	Lines     []LineOutcome `json:"lines"`
	TotalCost float64       `json:"total_cost"`
}

// Failed returns the lines that were skipped.
func (r *OrderResult) Failed() []LineOutcome {
	var out []LineOutcome
	for _, l := range r.Lines {
		if !l.OK() {
			out = append(out, l)
		}
	}
	return out
}
