package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler completes a delivery: the order moves to
// Delivered with the confirmed timestamp recorded, and its driver returns
// to Available, as one atomic unit.
//
// Both writes are conditional on the status each aggregate was read in
// (order still OutForDelivery, driver still Busy); a duplicate confirmation
// therefore fails its conditional update and rolls back without touching
// the driver a second time.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory spanning both order and driver repositories.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes the named order and returns it in its delivered state.
// Returns an ObjectNotFoundError when the order is unknown, a
// StateConflictError when it is not out for delivery, and a
// ValueIsInvalidError when the timestamp precedes the order's placement.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) (*order.Order, error) {
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
	driverRepo := uow.DriverRepository()

	delivered, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = delivered.Complete(cmd.DeliveredAt()); err != nil {
		return nil, err
	}

	// A delivered order always carries a driver reference; its absence in
	// storage is corruption, not a client error.
	released, err := driverRepo.Get(ctx, *delivered.Driver())
	if err != nil {
		return nil, fmt.Errorf("load driver for order %s: %w", delivered.Number(), err)
	}

	if err = released.MarkAvailable(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFromStatus(ctx, delivered, order.OutForDelivery); err != nil {
		return nil, err
	}

	if err = driverRepo.UpdateFromStatus(ctx, released, driver.Busy); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return delivered, nil
}
