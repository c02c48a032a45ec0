package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for zero, negative, or non-numeric amounts.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// ParseAmount parses a user-supplied amount string. Zero, negative, and
// non-numeric input is rejected before any network call is made.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
