package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand pairs a claimed order with a specific driver.
// This is the dispatch engine's entry point; the order must be Confirmed and
// the driver Available at commit time.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber("ORD-2041")
//	cmd, _ := NewAssignDriverCommand(number, driverID)
//	dispatched, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStateConflict) {
//	    // order already dispatched or driver already taken; refresh and retry
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	number   kernel.OrderNumber
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to an order.
// Validates both identifiers.
func NewAssignDriverCommand(number kernel.OrderNumber, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// Number returns the order number to dispatch.
func (c AssignDriverCommand) Number() kernel.OrderNumber {
	return c.number
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.number = number
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
