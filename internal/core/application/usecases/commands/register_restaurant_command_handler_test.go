package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/core/domain/model/address"
	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/pkg/errs"
)

func TestRegisterRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterRestaurantCommand(
		"Mario's Pizzeria", "Italian", "", "555-0100", "Mario Rossi", "mario@example.com",
		commands.AddressInput{Street: "1 Dough St", City: "Springfield", State: "IL", ZipCode: "62701"},
		[]commands.HourInput{{WeekDay: "MONDAY", OpenTime: "09:00", CloseTime: "21:00"}},
		[]commands.MenuCategoryInput{{
			Name:  "Mains",
			Items: []commands.MenuItemInput{{Name: "Margherita", Price: 12.50, Available: true}},
		}})
	require.NoError(t, err)

	var created *restaurant.Restaurant

	restaurantRepo := new(MockRestaurantRepository)
	addressRepo := new(MockAddressRepository)
	hourRepo := new(MockOperatingHourRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUnitOfWork)

	uow.On("RestaurantRepository").Return(restaurantRepo).Twice()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		restaurantRepo.On("NameExists", ctx, "Mario's Pizzeria").Return(false, nil).Once(),
		uow.On("AddressRepository").Return(addressRepo).Once(),
		addressRepo.On("Add", ctx, mock.AnythingOfType("*address.Address")).
			Run(func(args mock.Arguments) {
				a := args.Get(1).(*address.Address)
				require.NoError(t, a.AssignID(11))
			}).Return(nil).Once(),
		restaurantRepo.On("Add", ctx, mock.AnythingOfType("*restaurant.Restaurant")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*restaurant.Restaurant)
				require.NoError(t, created.AssignID(5))
			}).Return(nil).Once(),
		uow.On("OperatingHourRepository").Return(hourRepo).Once(),
		hourRepo.On("Upsert", ctx, mock.AnythingOfType("*restaurant.OperatingHour")).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("AddCategory", ctx, mock.AnythingOfType("*restaurant.MenuCategory")).
			Run(func(args mock.Arguments) {
				category := args.Get(1).(*restaurant.MenuCategory)
				require.NoError(t, category.AssignID(3))
			}).Return(nil).Once(),
		menuRepo.On("AddItem", ctx, mock.AnythingOfType("*restaurant.MenuItem")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterRestaurantCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 5, id)
	require.NotNil(t, created)
	assert.Equal(t, restaurant.StatusNewRegistration, created.Status())
	require.NotNil(t, created.AddressID())
	assert.Equal(t, 11, *created.AddressID())
	restaurantRepo.AssertExpectations(t)
	addressRepo.AssertExpectations(t)
	hourRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterRestaurantCommandHandler_Handle_SkipsBlankWeekDays(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterRestaurantCommand(
		"Mario's Pizzeria", "", "", "", "Mario Rossi", "mario@example.com",
		commands.AddressInput{Street: "1 Dough St"},
		[]commands.HourInput{
			{WeekDay: ""},
			{WeekDay: "  "},
			{WeekDay: "FRIDAY", OpenTime: "09:00", CloseTime: "21:00"},
		},
		nil)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	addressRepo := new(MockAddressRepository)
	hourRepo := new(MockOperatingHourRepository)
	uow := new(MockUnitOfWork)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Twice()
	restaurantRepo.On("NameExists", ctx, "Mario's Pizzeria").Return(false, nil).Once()
	uow.On("AddressRepository").Return(addressRepo).Once()
	addressRepo.On("Add", ctx, mock.AnythingOfType("*address.Address")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*address.Address)
			require.NoError(t, a.AssignID(11))
		}).Return(nil).Once()
	restaurantRepo.On("Add", ctx, mock.AnythingOfType("*restaurant.Restaurant")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*restaurant.Restaurant)
			require.NoError(t, r.AssignID(5))
		}).Return(nil).Once()
	uow.On("OperatingHourRepository").Return(hourRepo).Once()
	hourRepo.On("Upsert", ctx, mock.AnythingOfType("*restaurant.OperatingHour")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterRestaurantCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	hourRepo.AssertNumberOfCalls(t, "Upsert", 1)
	uow.AssertExpectations(t)
}

func TestRegisterRestaurantCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterRestaurantCommand(
		"Mario's Pizzeria", "", "", "", "Mario Rossi", "mario@example.com",
		commands.AddressInput{Street: "1 Dough St"}, nil, nil)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("NameExists", ctx, "Mario's Pizzeria").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRegistrationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterRestaurantCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	restaurantRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestRegisterRestaurantCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterRestaurantCommand{} // not constructed properly

	factory := new(MockRegistrationUoWFactory)
	handler := commands.NewRegisterRestaurantCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegisterRestaurantCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
