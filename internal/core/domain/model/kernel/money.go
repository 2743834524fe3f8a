package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor units
// (kuruş/cents). Amounts are never negative; arithmetic returns new values.
//
// The zero value is a valid zero amount, so Money can be summed with Add
// starting from Money{}.
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts. The result may not be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount - other.amount)
}

// MulQuantity returns the amount multiplied by a line quantity.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount * int64(quantity)}
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount as major.minor, e.g. "149.90".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
