package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
)

// CancelOrderCommandHandler withdraws an order. Cancelling an order that is
// already out for delivery recalls its driver: the driver returns to
// Available in the same transaction, so a Busy driver always traces back to
// exactly one live delivery.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the named order and returns it.
// Returns an ObjectNotFoundError for an unknown order number and a
// StateConflictError when the order is already in a terminal state.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	cancelled, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	fromStatus := cancelled.Status()
	recalledDriverID := cancelled.Driver()

	if err = cancelled.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFromStatus(ctx, cancelled, fromStatus); err != nil {
		return nil, err
	}

	if recalledDriverID != nil {
		driverRepo := uow.DriverRepository()

		recalled, err := driverRepo.Get(ctx, *recalledDriverID)
		if err != nil {
			return nil, fmt.Errorf("load driver for order %s: %w", cancelled.Number(), err)
		}

		if err = recalled.MarkAvailable(); err != nil {
			return nil, err
		}

		if err = driverRepo.UpdateFromStatus(ctx, recalled, driver.Busy); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cancelled, nil
}
