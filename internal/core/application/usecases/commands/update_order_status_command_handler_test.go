package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"
)

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredReleasesDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("FD0001", order.StatusDelivered)
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
		driverRepo.On("Release", ctx, 7).Return(nil).Once(),
		orderRepo.On("Update", ctx, testOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, testOrder.Status())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_PendingOrderIsGuarded(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateOrderStatusCommand("FD0001", order.StatusNotDelivered)
	require.NoError(t, err)

	testOrder := pendingOrder(t, "FD0001")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, "FD0001").Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	assert.Equal(t, order.StatusPending, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateOrderStatusCommand_RejectsNonTerminalTarget(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand("FD0001", order.Status("SHIPPED"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
