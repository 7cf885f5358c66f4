package commands

import (
	"context"
	"marketplace/internal/core/domain/model/order"
)

// ClaimNextOrderCommandHandler implements the "take next order from queue"
// half of the claim engine.
//
// Exactly-once semantics come from two layers working together: the queue
// head is selected with a row lock that skips rows locked by concurrent
// claimers, and the transition is persisted with a conditional update that
// only applies while the order is still Pending. Two concurrent callers can
// therefore never both claim the same order.
type ClaimNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimNextOrderCommandHandler creates a handler for queue claims.
// Requires an OrderUoWFactory; claims never touch the driver roster.
func NewClaimNextOrderCommandHandler(uowFactory OrderUoWFactory) ClaimNextOrderCommandHandler {
	return ClaimNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the queue head and returns the claimed order, now Confirmed.
// Returns an ObjectNotFoundError when no Pending order exists.
func (h ClaimNextOrderCommandHandler) Handle(ctx context.Context, cmd ClaimNextOrderCommand) (*order.Order, error) {
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

	claimed, err := orderRepo.GetFirstInPendingStatus(ctx)
	if err != nil {
		return nil, err
	}

	if err = claimed.Claim(); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFromStatus(ctx, claimed, order.Pending); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
