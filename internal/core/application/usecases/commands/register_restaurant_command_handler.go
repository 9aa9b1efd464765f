package commands

import (
	"context"
	"fmt"
	"strings"

	"frontdash/internal/core/domain/model/address"
	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/pkg/errs"
)

// RegisterRestaurantCommandHandler persists a restaurant application: the
// restaurant row in NEW_REG status, its address, its weekly schedule, and
// the initial menu, all in one transaction.
type RegisterRestaurantCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant
// registration.
func NewRegisterRestaurantCommandHandler(uowFactory RegistrationUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the new restaurant's id.
func (h *RegisterRestaurantCommandHandler) Handle(ctx context.Context, cmd RegisterRestaurantCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	aggregate, err := restaurant.NewRestaurant(
		cmd.Name(), cmd.CuisineType(), cmd.PhoneNumber(), cmd.ContactName(), cmd.Email())
	if err != nil {
		return 0, err
	}
	aggregate.SetPictureURL(cmd.PictureURL())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taken, err := uow.RestaurantRepository().NameExists(ctx, cmd.Name())
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("restaurant %q is already registered", cmd.Name()))
	}

	addressID, err := h.addAddress(ctx, uow, cmd.Address())
	if err != nil {
		return 0, err
	}
	if err = aggregate.SetAddressID(addressID); err != nil {
		return 0, err
	}

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = h.addSchedule(ctx, uow, aggregate.ID(), cmd.Hours()); err != nil {
		return 0, err
	}
	if err = h.addMenu(ctx, uow, aggregate.ID(), cmd.Menu()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return aggregate.ID(), nil
}

func (h *RegisterRestaurantCommandHandler) addAddress(
	ctx context.Context, uow RegistrationUoW, in AddressInput,
) (int, error) {
	aggregate, err := address.NewAddress(in.Street, in.City, in.State, in.ZipCode, in.Building, in.Unit)
	if err != nil {
		return 0, err
	}
	if err = uow.AddressRepository().Add(ctx, aggregate); err != nil {
		return 0, err
	}
	return aggregate.ID(), nil
}

func (h *RegisterRestaurantCommandHandler) addSchedule(
	ctx context.Context, uow RegistrationUoW, restaurantID int, hours []HourInput,
) error {
	for _, in := range hours {
		// A blank weekday means the form row was left empty, not an error.
		if strings.TrimSpace(in.WeekDay) == "" {
			continue
		}

		weekDay, err := kernel.NewWeekDay(in.WeekDay)
		if err != nil {
			return err
		}

		hour, err := restaurant.NewOperatingHour(restaurantID, weekDay,
			optionalClock(in.OpenTime), optionalClock(in.CloseTime))
		if err != nil {
			return err
		}

		if err = uow.OperatingHourRepository().Upsert(ctx, hour); err != nil {
			return err
		}
	}
	return nil
}

func (h *RegisterRestaurantCommandHandler) addMenu(
	ctx context.Context, uow RegistrationUoW, restaurantID int, menu []MenuCategoryInput,
) error {
	menuRepo := uow.MenuRepository()

	for _, categoryIn := range menu {
		category, err := restaurant.NewMenuCategory(restaurantID, categoryIn.Name)
		if err != nil {
			return err
		}
		if err = menuRepo.AddCategory(ctx, category); err != nil {
			return err
		}

		for _, itemIn := range categoryIn.Items {
			price, err := kernel.NewMoneyFromFloat(itemIn.Price)
			if err != nil {
				return err
			}

			item, err := restaurant.NewMenuItem(category.ID(), itemIn.Name, itemIn.Description, price)
			if err != nil {
				return err
			}
			if !itemIn.Available {
				item.MarkUnavailable()
			}

			if err = menuRepo.AddItem(ctx, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func optionalClock(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
