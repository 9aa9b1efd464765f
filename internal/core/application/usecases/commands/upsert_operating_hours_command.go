package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrUpsertOperatingHoursCommandIsNotConstructed = errors.New(
	"UpsertOperatingHoursCommand must be created via NewUpsertOperatingHoursCommand constructor",
)

// UpsertOperatingHoursCommand represents a restaurant replacing part of its
// weekly schedule. Rows are keyed by weekday: a second submission for the
// same weekday overwrites the stored window.
type UpsertOperatingHoursCommand struct { //nolint:recvcheck //using for validation
	restaurantID int
	hours        []HourInput

	guard guard.ConstructorGuard
}

// NewUpsertOperatingHoursCommand creates a schedule update command.
func NewUpsertOperatingHoursCommand(restaurantID int, hours []HourInput) (UpsertOperatingHoursCommand, error) {
	cmd := UpsertOperatingHoursCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setHours(hours),
	); err != nil {
		return UpsertOperatingHoursCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertOperatingHoursCommand) Validate() error {
	return c.guard.Validate(ErrUpsertOperatingHoursCommandIsNotConstructed)
}

// RestaurantID returns the restaurant whose schedule changes.
func (c UpsertOperatingHoursCommand) RestaurantID() int {
	return c.restaurantID
}

// Hours returns the weekday windows to store.
func (c UpsertOperatingHoursCommand) Hours() []HourInput {
	return c.hours
}

func (c *UpsertOperatingHoursCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *UpsertOperatingHoursCommand) setHours(hours []HourInput) error {
	if len(hours) == 0 {
		return errs.NewValueIsRequiredError("hours")
	}
	c.hours = append([]HourInput(nil), hours...)
	return nil
}
