package commands

import (
	"errors"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents adding a delivery driver to the dispatch
// pool. New drivers start AVAILABLE.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a driver admission command.
func NewCreateDriverCommand(name string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setName(name); err != nil {
		return CreateDriverCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c *CreateDriverCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
