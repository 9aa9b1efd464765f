package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"
)

func pendingOrder(t *testing.T, number string) *order.Order {
	t.Helper()
	item, err := order.NewItem(7, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(number, 42, "Ada Lovelace", "555-0101", nil,
		kernel.ZeroMoney(), kernel.ZeroMoney(), time.Now(), []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestAssignDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand("FD0001", 7)
	require.NoError(t, err)

	testOrder := pendingOrder(t, "FD0001")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, "FD0001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("TakeIfAvailable", ctx, 7).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusOutForDelivery, testOrder.Status())
	require.NotNil(t, testOrder.DriverID())
	assert.Equal(t, 7, *testOrder.DriverID())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_BusyDriverFailsWholeOperation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand("FD0001", 7)
	require.NoError(t, err)

	testOrder := pendingOrder(t, "FD0001")

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, "FD0001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("TakeIfAvailable", ctx, 7).
			Return(errs.NewInvalidStateTransitionError("driver", "BUSY", "BUSY")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, order.StatusPending, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	orderRepo.AssertNotCalled(t, "Update", ctx, testOrder)
}

func TestAssignDriverCommandHandler_Handle_OrderAlreadyDispatched(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignDriverCommand("FD0001", 8)
	require.NoError(t, err)

	testOrder := pendingOrder(t, "FD0001")
	require.NoError(t, testOrder.AssignDriver(7))

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, "FD0001").Return(testOrder, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("TakeIfAvailable", ctx, 8).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDriverCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignDriverCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDriverCommand{} // not constructed properly

	factory := new(MockFulfillmentUoWFactory)
	handler := commands.NewAssignDriverCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
