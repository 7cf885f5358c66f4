package kernel

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// orderNumberMaxLength bounds the opaque token length accepted from order intake.
const orderNumberMaxLength = 32

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
// Order numbers must be created via NewOrderNumber to ensure validity.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber constructor")

// OrderNumber is the opaque identity token of an order. Tokens are issued by
// order intake, are never reused, and carry no structure the core depends on.
//
// OrderNumber is an immutable value object. The zero value is invalid and
// fails validation; use NewOrderNumber to create instances.
//
// Example:
//
//	number, err := kernel.NewOrderNumber("ORD-2041")
//	if err != nil {
//	    // handle validation error
//	}
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber creates an OrderNumber from its raw token.
// The token is trimmed of surrounding whitespace and must be non-empty,
// contain no inner whitespace, and not exceed 32 characters.
func NewOrderNumber(value string) (OrderNumber, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if strings.ContainsAny(value, " \t\n") {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q contains whitespace", value))
	}
	if len(value) > orderNumberMaxLength {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q exceeds %d characters", value, orderNumberMaxLength))
	}

	return OrderNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the OrderNumber was created through its constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// String returns the raw token.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by token.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}
