package commands

import (
	"context"
)

// FireDriverCommandHandler removes a driver from the roster. The load and
// the delete run in one transaction, and the delete itself refuses a row
// that went Busy in between, so a driver dispatched concurrently with the
// removal survives.
type FireDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewFireDriverCommandHandler creates a handler for removing drivers.
func NewFireDriverCommandHandler(uowFactory DriverUoWFactory) FireDriverCommandHandler {
	return FireDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the named driver.
// Returns an ObjectNotFoundError for an unknown driver and a
// StateConflictError when the driver has a delivery in flight.
func (h FireDriverCommandHandler) Handle(ctx context.Context, cmd FireDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	fired, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = fired.EnsureRemovable(); err != nil {
		return err
	}

	if err = driverRepo.Remove(ctx, fired.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
