package service

import "github.com/shopspring/decimal"

// roundedAvg rounds a raw average star value to two decimal places.
// A spot with no reviews has no average at all, so nil passes through.
func roundedAvg(avg *float64) *decimal.Decimal {
	if avg == nil {
		return nil
	}
	rounded := decimal.NewFromFloat(*avg).Round(2)
	return &rounded
}
