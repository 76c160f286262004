package models

import (
	"fmt"
	"strconv"
)

// Furniture is one catalog line item. Quantity stays in its raw textual
// form as read from the catalog file; it is only converted to a number
// during aggregation.
type Furniture struct {
	ID       int     `json:"id"`
	Weight   float64 `json:"weight"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Quantity string  `json:"quantity"`
}

// WithQuantity returns an independent copy of the catalog entry carrying
// the given quantity. Order items are built this way so they never alias
// the catalog entry.
func (f Furniture) WithQuantity(qty int) Furniture {
	f.Quantity = strconv.Itoa(qty)
	return f
}

// Units converts the raw quantity text to a unit count.
func (f Furniture) Units() (int, error) {
	n, err := strconv.Atoi(f.Quantity)
	if err != nil {
		return 0, fmt.Errorf("furniture %d: quantity %q is not a number", f.ID, f.Quantity)
	}
	return n, nil
}

type Store struct {
	ID       int    `json:"id"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Director string `json:"director"`
}
