package commands

import (
	"context"
	"errors"

	"frontdash/internal/core/ports"
	"frontdash/internal/pkg/errs"
)

// ChangePasswordCommandHandler verifies the current password and stores the
// hash of the replacement.
type ChangePasswordCommandHandler struct {
	uowFactory LoginUoWFactory
	hasher     ports.PasswordHasher
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(
	uowFactory LoginUoWFactory,
	hasher ports.PasswordHasher,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the password change.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loginRepo := uow.LoginRepository()
	login, err := loginRepo.GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err = h.hasher.Verify(login.PasswordHash(), cmd.CurrentPassword()); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = loginRepo.UpdatePasswordHash(ctx, login.Username(), newHash); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
