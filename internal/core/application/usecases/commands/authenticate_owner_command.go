package commands

import (
	"errors"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var ErrAuthenticateOwnerCommandIsNotConstructed = errors.New(
	"AuthenticateOwnerCommand must be created via NewAuthenticateOwnerCommand constructor",
)

// AuthenticateOwnerCommand represents a restaurant owner signing in with
// the credentials issued at approval time.
type AuthenticateOwnerCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateOwnerCommand creates a sign-in command.
func NewAuthenticateOwnerCommand(username, password string) (AuthenticateOwnerCommand, error) {
	cmd := AuthenticateOwnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateOwnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateOwnerCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateOwnerCommandIsNotConstructed)
}

// Username returns the login username.
func (c AuthenticateOwnerCommand) Username() string {
	return c.username
}

// Password returns the plaintext password to verify.
func (c AuthenticateOwnerCommand) Password() string {
	return c.password
}

func (c *AuthenticateOwnerCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *AuthenticateOwnerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
