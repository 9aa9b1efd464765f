package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrRejectRegistrationCommandIsNotConstructed = errors.New(
	"RejectRegistrationCommand must be created via NewRejectRegistrationCommand constructor",
)

// RejectRegistrationCommand represents an administrator turning down a
// pending registration. Rejection hard-deletes the restaurant and every
// dependent record.
type RejectRegistrationCommand struct { //nolint:recvcheck //using for validation
	restaurantID int

	guard guard.ConstructorGuard
}

// NewRejectRegistrationCommand creates a rejection command for the given
// restaurant.
func NewRejectRegistrationCommand(restaurantID int) (RejectRegistrationCommand, error) {
	cmd := RejectRegistrationCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return RejectRegistrationCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRegistrationCommand) Validate() error {
	return c.guard.Validate(ErrRejectRegistrationCommandIsNotConstructed)
}

// RestaurantID returns the restaurant awaiting the decision.
func (c RejectRegistrationCommand) RestaurantID() int {
	return c.restaurantID
}

func (c *RejectRegistrationCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}
