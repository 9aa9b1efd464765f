package kernel

import (
	"fmt"
	"math"

	"frontdash/internal/pkg/errs"
)

// Money is a non-negative monetary amount stored as an integer number of
// cents. Arithmetic on cents avoids the floating-point drift that would
// otherwise accumulate in order totals.
//
// Money is a value object: construct it via NewMoneyFromFloat or
// NewMoneyFromCents, compare it with IsEqual, and derive new amounts with Add.
type Money struct {
	cents int64
}

// ZeroMoney returns the zero amount. Used for absent subtotal or tips.
func ZeroMoney() Money {
	return Money{}
}

// NewMoneyFromFloat creates a Money value from a decimal amount such as 20.00.
// The amount is rounded to the nearest cent.
//
// Returns an error when the amount is negative, NaN, or infinite.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// NewMoneyFromCents creates a Money value from an integer number of cents.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("cents",
			fmt.Errorf("%d is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal number of currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "23.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
