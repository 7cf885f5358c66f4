package commands

import (
	"context"
	"marketplace/internal/core/domain/model/order"
)

// ClaimOrderCommandHandler implements the "take specific order by id" half of
// the claim engine. The read-check-write is indivisible with respect to other
// claim attempts: the Claim transition is persisted with a conditional update
// guarded on Pending, so of N concurrent claims on the same order exactly one
// commits and the rest see a StateConflictError.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for targeted claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the named order and returns it, now Confirmed.
// Returns an ObjectNotFoundError for an unknown order number and a
// StateConflictError when the order exists but is not Pending.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
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

	claimed, err := orderRepo.Get(ctx, cmd.Number())
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
