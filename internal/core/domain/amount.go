package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits every persisted amount is
// normalized to (spec.md §3: "precision 28 and scale 8").
const AmountScale = 8

// NewAmount validates and normalizes a caller-supplied decimal amount.
// It rejects non-positive, non-finite, or over-scale values.
func NewAmount(raw decimal.Decimal) (decimal.Decimal, error) {
	if raw.Exponent() < -AmountScale {
		return decimal.Decimal{}, fmt.Errorf("amount has more than %d fractional digits", AmountScale)
	}
	if !raw.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be positive")
	}
	return raw.Truncate(AmountScale), nil
}
