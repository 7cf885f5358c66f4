package commands_test

import (
	"context"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-3001", order.Confirmed)
	testDriver := newTestDriver(t, "Dana Reyes", driver.Available)

	cmd, err := commands.NewAssignDriverCommand(testOrder.Number(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("UpdateFromStatus", ctx, mock.AnythingOfType("*order.Order"), order.Confirmed).
			Return(nil).
			Once(),
		driverRepo.On("UpdateFromStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	dispatched, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, dispatched.Status())
	require.NotNil(t, dispatched.Driver())
	assert.True(t, dispatched.Driver().IsEqual(testDriver.ID()))
	assert.Equal(t, driver.Busy, testDriver.Status())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-3001", order.Confirmed)
	testDriver := newTestDriver(t, "Dana Reyes", driver.Available)

	cmd, err := commands.NewAssignDriverCommand(testOrder.Number(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).
			Return(nil, errs.NewObjectNotFoundError("number", testOrder.Number())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	dispatched, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, dispatched)
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignDriverCommandHandler_Handle_OrderNotConfirmed(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-3001", order.Pending)
	testDriver := newTestDriver(t, "Dana Reyes", driver.Available)

	cmd, err := commands.NewAssignDriverCommand(testOrder.Number(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	dispatched, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Nil(t, dispatched)
	// The driver must not be marked busy when the order transition fails.
	assert.Equal(t, driver.Available, testDriver.Status())
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignDriverCommandHandler_Handle_DriverBusy(t *testing.T) {
	ctx := context.Background()

	testOrder := newTestOrder(t, "ORD-3001", order.Confirmed)
	testDriver := newTestDriver(t, "Dana Reyes", driver.Busy)

	cmd, err := commands.NewAssignDriverCommand(testOrder.Number(), testDriver.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	dispatched, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Nil(t, dispatched)
	orderRepo.AssertNotCalled(t, "UpdateFromStatus")
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignDriverCommandHandler_Handle_DriverTakenConcurrently(t *testing.T) {
	ctx := context.Background()

	// The driver read as Available but a concurrent dispatch took them
	// first; the guarded driver update matches no row and the whole
	// transaction rolls back, leaving the order untouched in storage.
	testOrder := newTestOrder(t, "ORD-3001", order.Confirmed)
	testDriver := newTestDriver(t, "Dana Reyes", driver.Available)

	cmd, err := commands.NewAssignDriverCommand(testOrder.Number(), testDriver.ID())
	require.NoError(t, err)

	conflict := errs.NewStateConflictError("driver", driver.Busy.String())

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.Number()).Return(testOrder, nil).Once(),
		driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		orderRepo.On("UpdateFromStatus", ctx, mock.AnythingOfType("*order.Order"), order.Confirmed).
			Return(nil).
			Once(),
		driverRepo.On("UpdateFromStatus", ctx, mock.AnythingOfType("*driver.Driver"), driver.Available).
			Return(conflict).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	dispatched, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	assert.Nil(t, dispatched)
	uow.AssertNotCalled(t, "Commit")
}
