package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents dispatching a driver for a PENDING order.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	driverID    int

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a dispatch command.
func NewAssignDriverCommand(orderNumber string, driverID int) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderNumber returns the order to dispatch.
func (c AssignDriverCommand) OrderNumber() string {
	return c.orderNumber
}

// DriverID returns the driver to send out.
func (c AssignDriverCommand) DriverID() int {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderNumber(orderNumber string) error {
	if err := order.ValidateNumber(orderNumber); err != nil {
		return err
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not a positive id", driverID))
	}
	c.driverID = driverID
	return nil
}
