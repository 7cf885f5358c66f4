package kernel

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is the delivery destination of an order together with the contact
// phone the driver calls on arrival. Address is an immutable value object;
// the zero value is invalid and fails validation.
type Address struct {
	street string
	city   string
	phone  string
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address. Street and phone are required; city may be
// empty for single-city deployments.
func NewAddress(street string, city string, phone string) (Address, error) {
	addr := Address{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setPhone(phone),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created through its constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Phone returns the contact phone number.
func (a Address) Phone() string {
	return a.phone
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}
