package commands_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-2041", order.Pending)
	cmd, err := commands.NewClaimOrderCommand(testOrder.Number())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateFromStatus", ctx, mock.AnythingOfType("*order.Order"), order.Pending).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	claimed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, claimed.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	number, err := kernel.NewOrderNumber("ORD-9999")
	require.NoError(t, err)
	cmd, err := commands.NewClaimOrderCommand(number)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, number).Return(nil, errs.NewObjectNotFoundError("number", number)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	claimed, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, claimed)
	uow.AssertNotCalled(t, "Commit")
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-2041", order.Confirmed)
	cmd, err := commands.NewClaimOrderCommand(testOrder.Number())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	claimed, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Nil(t, claimed)
	orderRepo.AssertNotCalled(t, "UpdateFromStatus")
	uow.AssertNotCalled(t, "Commit")
}

func TestClaimOrderCommandHandler_Handle_CancelledOrder(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-2041", order.Cancelled)
	cmd, err := commands.NewClaimOrderCommand(testOrder.Number())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestClaimOrderCommandHandler_Handle_LostConditionalUpdateRace(t *testing.T) {
	ctx := context.Background()

	// The order read as Pending but another transaction claimed it between
	// our read and our write; the guarded update matches no row.
	testOrder := newTestOrder(t, "ORD-2041", order.Pending)
	cmd, err := commands.NewClaimOrderCommand(testOrder.Number())
	require.NoError(t, err)

	conflict := errs.NewStateConflictError("order", order.Confirmed.String())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateFromStatus", ctx, mock.AnythingOfType("*order.Order"), order.Pending).
			Return(conflict).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewClaimOrderCommandHandler(factory)
	claimed, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Nil(t, claimed)
	uow.AssertNotCalled(t, "Commit")
}
