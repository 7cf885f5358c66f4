package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand withdraws an order from the lifecycle. Any non-terminal
// order may be cancelled; a Delivered or already Cancelled order reports
// StateConflict.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(number kernel.OrderNumber) (CancelOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Number returns the order number to cancel.
func (c CancelOrderCommand) Number() kernel.OrderNumber {
	return c.number
}
