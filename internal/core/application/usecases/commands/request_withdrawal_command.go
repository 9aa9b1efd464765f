package commands

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrRequestWithdrawalCommandIsNotConstructed = errors.New(
	"RequestWithdrawalCommand must be created via NewRequestWithdrawalCommand constructor",
)

// RequestWithdrawalCommand represents a restaurant asking to leave the
// platform. The restaurant stays operational in WITHDRAW_REQ until an
// administrator decides.
type RequestWithdrawalCommand struct { //nolint:recvcheck //using for validation
	restaurantID int
	reason       string

	guard guard.ConstructorGuard
}

// NewRequestWithdrawalCommand creates a withdrawal request. A reason is
// required so administrators can review the request.
func NewRequestWithdrawalCommand(restaurantID int, reason string) (RequestWithdrawalCommand, error) {
	cmd := RequestWithdrawalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setReason(reason),
	); err != nil {
		return RequestWithdrawalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestWithdrawalCommand) Validate() error {
	return c.guard.Validate(ErrRequestWithdrawalCommandIsNotConstructed)
}

// RestaurantID returns the restaurant asking to leave.
func (c RequestWithdrawalCommand) RestaurantID() int {
	return c.restaurantID
}

// Reason returns the caller-supplied explanation.
func (c RequestWithdrawalCommand) Reason() string {
	return c.reason
}

func (c *RequestWithdrawalCommand) setRestaurantID(restaurantID int) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *RequestWithdrawalCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
