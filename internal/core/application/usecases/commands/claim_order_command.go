package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand asks to claim one specific order from the shared queue.
//
// Unlike ClaimNextOrderCommand, the caller names the order, so the two
// failure modes stay distinct: an unknown order number reports NotFound,
// while an order that exists but is no longer Pending (a concurrent caller
// got there first) reports StateConflict.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber("ORD-2041")
//	cmd, _ := NewClaimOrderCommand(number)
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrStateConflict):
//	    // someone beat you to it; refresh the queue view
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	number kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim a specific order.
func NewClaimOrderCommand(number kernel.OrderNumber) (ClaimOrderCommand, error) {
	if err := number.Validate(); err != nil {
		return ClaimOrderCommand{}, err
	}

	return ClaimOrderCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// Number returns the order number to claim.
func (c ClaimOrderCommand) Number() kernel.OrderNumber {
	return c.number
}
