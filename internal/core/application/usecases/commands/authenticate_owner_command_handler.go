package commands

import (
	"context"
	"errors"

	"frontdash/internal/core/ports"
	"frontdash/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong password so callers cannot distinguish which part failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthenticateOwnerCommandHandler verifies owner credentials against the
// stored hash and mints a bearer token on success.
type AuthenticateOwnerCommandHandler struct {
	uowFactory LoginUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

// NewAuthenticateOwnerCommandHandler creates a handler for owner sign-in.
func NewAuthenticateOwnerCommandHandler(
	uowFactory LoginUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AuthenticateOwnerCommandHandler {
	return AuthenticateOwnerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle verifies the credentials and returns a signed token plus the
// owner's restaurant id.
func (h *AuthenticateOwnerCommandHandler) Handle(
	ctx context.Context, cmd AuthenticateOwnerCommand,
) (string, int, error) {
	if err := cmd.Validate(); err != nil {
		return "", 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	login, err := uow.LoginRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if err = h.hasher.Verify(login.PasswordHash(), cmd.Password()); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(login.Username(), login.RestaurantID())
	if err != nil {
		return "", 0, err
	}

	return token, login.RestaurantID(), nil
}
