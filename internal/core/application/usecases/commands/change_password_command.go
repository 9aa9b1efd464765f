package commands

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

const minPasswordLength = 8

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents an owner replacing the temporary
// password issued at approval with one of their own.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	username        string
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a password change command.
func NewChangePasswordCommand(username, currentPassword, newPassword string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setCurrentPassword(currentPassword),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// Username returns the login username.
func (c ChangePasswordCommand) Username() string {
	return c.username
}

// CurrentPassword returns the password to verify before the change.
func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

// NewPassword returns the replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *ChangePasswordCommand) setCurrentPassword(currentPassword string) error {
	if currentPassword == "" {
		return errs.NewValueIsRequiredError("currentPassword")
	}
	c.currentPassword = currentPassword
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("newPassword",
			fmt.Errorf("must be at least %d characters", minPasswordLength))
	}
	c.newPassword = newPassword
	return nil
}
