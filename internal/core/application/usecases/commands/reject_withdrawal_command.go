package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrRejectWithdrawalCommandIsNotConstructed = errors.New(
	"RejectWithdrawalCommand must be created via NewRejectWithdrawalCommand constructor",
)

// RejectWithdrawalCommand represents an administrator declining a pending
// withdrawal. The restaurant returns to ACTIVE; nothing else changes.
type RejectWithdrawalCommand struct { //nolint:recvcheck //using for validation
	restaurantID int

	guard guard.ConstructorGuard
}

// NewRejectWithdrawalCommand creates a rejection command for the given
// restaurant's withdrawal request.
func NewRejectWithdrawalCommand(restaurantID int) (RejectWithdrawalCommand, error) {
	cmd := RejectWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return RejectWithdrawalCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRejectWithdrawalCommandIsNotConstructed)
}

// RestaurantID returns the restaurant awaiting the decision.
func (c RejectWithdrawalCommand) RestaurantID() int {
	return c.restaurantID
}

func (c *RejectWithdrawalCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}
