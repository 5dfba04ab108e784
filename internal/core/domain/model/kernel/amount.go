package kernel

import (
	"fmt"
	"strings"

	"deliveryops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative money value in the company's single currency.
// Arithmetic is exact; rounding happens only when an amount is displayed.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps d, rejecting negative values.
func NewAmount(param string, d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, errs.NewValueIsOutOfRangeError(param, d.String(), 0, "unbounded")
	}
	return Amount{value: d}, nil
}

// ParseAmount parses user input such as "12", "12.50" or " 7.5 ".
func ParseAmount(param, s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, errs.NewValueIsRequiredError(param)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a number", s))
	}
	return NewAmount(param, d)
}

// Decimal exposes the exact value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Add returns a + other.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal compares numerically, so "2" equals "2.00".
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String renders the amount with two decimal places.
func (a Amount) String() string {
	return a.value.StringFixed(2)
}
