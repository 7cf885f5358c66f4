package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

var (
	ErrNoAvailableDriversFound = errors.New("no available drivers found")
	ErrNoOrderFound            = errors.New("no order found")
)

// AutoAssignDriverCommandHandler orchestrates background dispatch.
// Finds the earliest confirmed order and matches it with an available driver
// using OrderDispatcher, updating both entities in a single transaction.
//
// Example:
//
//	handler := NewAutoAssignDriverCommandHandler(uowFactory)
//	cmd := NewAutoAssignDriverCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No confirmed orders")
//	case errors.Is(err, ErrNoAvailableDriversFound):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type AutoAssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAutoAssignDriverCommandHandler creates a handler for background dispatch.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAutoAssignDriverCommandHandler(uowFactory UoWFactory) AutoAssignDriverCommandHandler {
	return AutoAssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the auto-assignment command.
// Retrieves the earliest confirmed order, finds available drivers, and uses
// OrderDispatcher to pick one. Both transitions are persisted with
// status-guarded updates, so a concurrent manual dispatch of the same order
// or driver makes this attempt roll back cleanly.
func (h AutoAssignDriverCommandHandler) Handle(ctx context.Context, command AutoAssignDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	dispatched, err := orderRepo.GetFirstInConfirmedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoAvailableDriversFound
	}

	assigned, err := services.NewOrderDispatcher().Dispatch(dispatched, drivers)
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateFromStatus(ctx, dispatched, order.Confirmed); err != nil {
		return err
	}

	if err = driverRepo.UpdateFromStatus(ctx, assigned, driver.Available); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
