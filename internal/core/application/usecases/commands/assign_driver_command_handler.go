package commands

import (
	"context"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
)

// AssignDriverCommandHandler orchestrates the dispatch transition: the order
// moves to OutForDelivery with the driver recorded, and the driver moves to
// Busy, as one atomic unit.
//
// This is the highest-contention operation in the system: two staff members
// may race to give the same driver two different orders, or the same order
// two different drivers. Both writes are conditional on the status each
// aggregate was read in (order still Confirmed, driver still Available); if
// either condition no longer holds the transaction rolls back entirely and
// the caller sees a StateConflictError. An order updated while its driver
// stayed Available, or vice versa, can never be observed.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for dispatch operations.
// Requires a UoWFactory spanning both order and driver repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle dispatches the named order with the named driver and returns the
// updated order. Returns an ObjectNotFoundError when either entity is
// unknown and a StateConflictError when either precondition fails.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*order.Order, error) {
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

	dispatched, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	assigned, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = dispatched.AssignDriver(assigned.ID()); err != nil {
		return nil, err
	}

	if err = assigned.MarkBusy(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFromStatus(ctx, dispatched, order.Confirmed); err != nil {
		return nil, err
	}

	if err = driverRepo.UpdateFromStatus(ctx, assigned, driver.Available); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dispatched, nil
}
