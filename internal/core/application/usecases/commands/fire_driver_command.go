package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrFireDriverCommandIsNotConstructed = errors.New(
	"FireDriverCommand must be created via NewFireDriverCommand constructor",
)

// FireDriverCommand removes a driver from the roster. A driver in the middle
// of a delivery cannot be removed; the attempt reports StateConflict.
type FireDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFireDriverCommand creates a command to remove a driver.
func NewFireDriverCommand(driverID kernel.UUID) (FireDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return FireDriverCommand{}, err
	}

	return FireDriverCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FireDriverCommand) Validate() error {
	return c.guard.Validate(ErrFireDriverCommandIsNotConstructed)
}

// DriverID returns the driver to remove.
func (c FireDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
