package commands

import (
	"errors"
	"fmt"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand represents removing a driver from the dispatch pool.
type DeleteDriverCommand struct { //nolint:recvcheck //using for validation
	driverID int

	guard guard.ConstructorGuard
}

// NewDeleteDriverCommand creates a driver removal command.
func NewDeleteDriverCommand(driverID int) (DeleteDriverCommand, error) {
	cmd := DeleteDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setDriverID(driverID); err != nil {
		return DeleteDriverCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

// DriverID returns the driver to remove.
func (c DeleteDriverCommand) DriverID() int {
	return c.driverID
}

func (c *DeleteDriverCommand) setDriverID(driverID int) error {
	if driverID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("driverId",
			fmt.Errorf("%d is not a positive id", driverID))
	}
	c.driverID = driverID
	return nil
}
