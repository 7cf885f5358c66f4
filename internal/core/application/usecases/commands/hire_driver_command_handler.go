package commands

import (
	"context"
	"marketplace/internal/core/domain/model/driver"
)

// HireDriverCommandHandler handles the business logic for driver registration.
// Creates and persists new driver entities in the Available state.
//
// Example:
//
//	handler := NewHireDriverCommandHandler(uowFactory)
//	cmd, _ := NewHireDriverCommand("Dana Reyes")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver registration failed: %w", err)
//	}
type HireDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewHireDriverCommandHandler creates a handler for driver registration.
// Requires a DriverUoWFactory for transactional persistence operations.
func NewHireDriverCommandHandler(uowFactory DriverUoWFactory) HireDriverCommandHandler {
	return HireDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hire command.
// Creates a new driver entity and persists it within a transaction.
func (h HireDriverCommandHandler) Handle(ctx context.Context, cmd HireDriverCommand) error {
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

	hired, err := driver.NewDriver(cmd.DriverID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, hired); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
