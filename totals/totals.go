// Package totals prices an order snapshot. Compute is a pure
// function: the cart, checkout and invoice paths all call it with the
// same inputs and must see the same numbers.
package totals

import (
	"errors"
	"math"
)

const taxRate = 0.10

// Flat shipping tiers, in dollars.
const (
	standardCost  = 0
	expressCost   = 10.00
	overnightCost = 25.00
)

var ErrUnknownShippingMethod = errors.New("unknown shipping method")

type Breakdown struct {
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
}

// ShippingCost returns the flat cost for a shipping method.
func ShippingCost(method string) (float64, error) {
	switch method {
	case "standard":
		return standardCost, nil
	case "express":
		return expressCost, nil
	case "overnight":
		return overnightCost, nil
	default:
		return 0, ErrUnknownShippingMethod
	}
}

// Compute derives tax, shipping and grand total from a subtotal and a
// shipping method. Total always equals Subtotal + Tax + ShippingCost
// to the cent.
func Compute(subtotal float64, method string) (Breakdown, error) {
	shipping, err := ShippingCost(method)
	if err != nil {
		return Breakdown{}, err
	}

	sub := Round2(subtotal)
	tax := Round2(sub * taxRate)
	return Breakdown{
		Subtotal:     sub,
		Tax:          tax,
		ShippingCost: shipping,
		Total:        Round2(sub + tax + shipping),
	}, nil
}

// Round2 rounds to the nearest cent.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
