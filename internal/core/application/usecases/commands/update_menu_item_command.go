package commands

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents an owner editing one dish: its name,
// description, price, and whether it can currently be ordered.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID  int
	name        string
	description string
	price       float64
	available   bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a menu item edit command.
func NewUpdateMenuItemCommand(
	menuItemID int,
	name, description string,
	price float64,
	available bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setName(name),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	cmd.description = description
	cmd.price = price
	cmd.available = available
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() int     { return c.menuItemID }
func (c UpdateMenuItemCommand) Name() string        { return c.name }
func (c UpdateMenuItemCommand) Description() string { return c.description }
func (c UpdateMenuItemCommand) Price() float64      { return c.price }
func (c UpdateMenuItemCommand) Available() bool     { return c.available }

func (c *UpdateMenuItemCommand) setMenuItemID(menuItemID int) error {
	if menuItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemId",
			fmt.Errorf("%d is not a positive id", menuItemID))
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	c.name = name
	return nil
}
