package commands_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/core/ports"
	"frontdash/internal/pkg/errs"
)

func restoredRestaurant(t *testing.T, id int, status restaurant.Status) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.RestoreRestaurant(
		id, "Thai Garden", "Thai", "", nil,
		"555-0100", "Alice Wong", "alice@thaigarden.example", status)
	require.NoError(t, err)
	return r
}

func TestApproveRegistrationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApproveRegistrationCommand(42)
	require.NoError(t, err)

	testRestaurant := restoredRestaurant(t, 42, restaurant.StatusNewRegistration)

	restaurantRepo := new(MockRestaurantRepository)
	loginRepo := new(MockLoginRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, 42).Return(testRestaurant, nil).Once(),
		uow.On("LoginRepository").Return(loginRepo).Once(),
		loginRepo.On("UsernameExists", ctx, "alice01").Return(true, nil).Once(),
		loginRepo.On("UsernameExists", ctx, "alice02").Return(false, nil).Once(),
		loginRepo.On("Add", ctx, mock.AnythingOfType("*restaurant.Login")).Return(nil).Once(),
		restaurantRepo.On("Update", ctx, testRestaurant).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.AnythingOfType("string")).Return("$2a$10$hash", nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Kind == ports.NotificationRegistrationApproved &&
			n.Recipient == "alice@thaigarden.example"
	})).Return(nil).Once()

	handler := commands.NewApproveRegistrationCommandHandler(factory, hasher, notifier, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, restaurant.StatusActive, testRestaurant.Status())
	restaurantRepo.AssertExpectations(t)
	loginRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	hasher.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestApproveRegistrationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApproveRegistrationCommand{} // not constructed properly

	factory := new(MockLifecycleUoWFactory)
	handler := commands.NewApproveRegistrationCommandHandler(
		factory, new(MockPasswordHasher), new(MockNotifier), zap.NewNop())
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApproveRegistrationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestApproveRegistrationCommandHandler_Handle_AlreadyActive(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApproveRegistrationCommand(42)
	require.NoError(t, err)

	testRestaurant := restoredRestaurant(t, 42, restaurant.StatusActive)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, 42).Return(testRestaurant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := commands.NewApproveRegistrationCommandHandler(
		factory, new(MockPasswordHasher), notifier, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "Send", ctx, mock.Anything)
}

func TestApproveRegistrationCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApproveRegistrationCommand(42)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, 42).Return(nil, errs.NewObjectNotFoundError("restaurantId", 42)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveRegistrationCommandHandler(
		factory, new(MockPasswordHasher), new(MockNotifier), zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestApproveRegistrationCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewApproveRegistrationCommand(42)
	require.NoError(t, err)

	testRestaurant := restoredRestaurant(t, 42, restaurant.StatusNewRegistration)

	restaurantRepo := new(MockRestaurantRepository)
	loginRepo := new(MockLoginRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", ctx, 42).Return(testRestaurant, nil).Once(),
		uow.On("LoginRepository").Return(loginRepo).Once(),
		loginRepo.On("UsernameExists", ctx, "alice01").Return(false, nil).Once(),
		loginRepo.On("Add", ctx, mock.AnythingOfType("*restaurant.Login")).Return(nil).Once(),
		restaurantRepo.On("Update", ctx, testRestaurant).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", mock.AnythingOfType("string")).Return("$2a$10$hash", nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", ctx, mock.Anything).Return(errors.New("smtp relay down")).Once()

	handler := commands.NewApproveRegistrationCommandHandler(factory, hasher, notifier, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	// the state transition committed; the failed notification must not surface
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
