package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrApproveRegistrationCommandIsNotConstructed = errors.New(
	"ApproveRegistrationCommand must be created via NewApproveRegistrationCommand constructor",
)

// ApproveRegistrationCommand represents an administrator approving a
// pending registration. Approval activates the restaurant and provisions
// its login credentials.
type ApproveRegistrationCommand struct { //nolint:recvcheck //using for validation
	restaurantID int

	guard guard.ConstructorGuard
}

// NewApproveRegistrationCommand creates an approval command for the given
// restaurant.
func NewApproveRegistrationCommand(restaurantID int) (ApproveRegistrationCommand, error) {
	cmd := ApproveRegistrationCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return ApproveRegistrationCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRegistrationCommand) Validate() error {
	return c.guard.Validate(ErrApproveRegistrationCommandIsNotConstructed)
}

// RestaurantID returns the restaurant awaiting the decision.
func (c ApproveRegistrationCommand) RestaurantID() int {
	return c.restaurantID
}

func (c *ApproveRegistrationCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}
