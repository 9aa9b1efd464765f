package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrApproveWithdrawalCommandIsNotConstructed = errors.New(
	"ApproveWithdrawalCommand must be created via NewApproveWithdrawalCommand constructor",
)

// ApproveWithdrawalCommand represents an administrator granting a pending
// withdrawal. Approval hard-deletes the restaurant and every dependent
// record, same as rejecting a registration.
type ApproveWithdrawalCommand struct { //nolint:recvcheck //using for validation
	restaurantID int

	guard guard.ConstructorGuard
}

// NewApproveWithdrawalCommand creates an approval command for the given
// restaurant's withdrawal request.
func NewApproveWithdrawalCommand(restaurantID int) (ApproveWithdrawalCommand, error) {
	cmd := ApproveWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return ApproveWithdrawalCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrApproveWithdrawalCommandIsNotConstructed)
}

// RestaurantID returns the restaurant awaiting the decision.
func (c ApproveWithdrawalCommand) RestaurantID() int {
	return c.restaurantID
}

func (c *ApproveWithdrawalCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}
