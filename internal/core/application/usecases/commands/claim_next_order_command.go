package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrClaimNextOrderCommandIsNotConstructed = errors.New(
	"ClaimNextOrderCommand must be created via NewClaimNextOrderCommand constructor",
)

// ClaimNextOrderCommand asks for the head of the shared claim queue: the
// Pending order with the earliest placement timestamp, ties broken by order
// number. The claiming staff member's identity is not part of the command;
// ownership is implicit in the Confirmed status, not tracked per staff.
//
// Example:
//
//	cmd := NewClaimNextOrderCommand()
//	handler := NewClaimNextOrderCommandHandler(uowFactory)
//	claimed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // queue is empty
//	}
type ClaimNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewClaimNextOrderCommand creates a command to claim the next queued order.
// This is a parameterless command; the queue head is selected transactionally.
func NewClaimNextOrderCommand() ClaimNextOrderCommand {
	return ClaimNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ClaimNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimNextOrderCommandIsNotConstructed)
}
