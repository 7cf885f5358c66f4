package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrAutoAssignDriverCommandIsNotConstructed = errors.New(
	"AutoAssignDriverCommand must be created via NewAutoAssignDriverCommand constructor",
)

// AutoAssignDriverCommand triggers the background matching of a confirmed
// order with an available driver. It finds the earliest-placed order in
// Confirmed status and dispatches it with the first free driver.
//
// Example:
//
//	cmd := NewAutoAssignDriverCommand()
//	handler := NewAutoAssignDriverCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to dispatch or no available drivers: %v", err)
//	}
type AutoAssignDriverCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignDriverCommand creates a new command to trigger driver assignment.
// This is a parameterless command that initiates the order-driver matching process.
func NewAutoAssignDriverCommand() AutoAssignDriverCommand {
	return AutoAssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AutoAssignDriverCommand) Validate() error {
	return c.guard.Validate(
		ErrAutoAssignDriverCommandIsNotConstructed,
	)
}
