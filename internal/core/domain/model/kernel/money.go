package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a monetary amount in minor units (cents) together with its
// ISO 4217 currency code. Money is an immutable value object; the zero value
// is invalid and fails validation.
//
// Example:
//
//	total, err := kernel.NewMoney(2499, "USD")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(total) // Output: 2499 USD
type Money struct {
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units and a currency code.
// The amount must be non-negative and the currency must be a three-letter
// uppercase code.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter code", currency))
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not uppercase", currency))
		}
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Money value was created through its constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
