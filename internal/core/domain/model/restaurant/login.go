package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrLoginIsNotConstructed is returned when a Login instance was not created
// through NewLogin.
var ErrLoginIsNotConstructed = errors.New("Login must be created via NewLogin constructor")

// Login holds the generated credentials of an ACTIVE restaurant. The username
// is the natural key; the password is stored only as a one-way hash. A
// restaurant has at most one login row, created at approval time and deleted
// together with the restaurant.
type Login struct {
	username     string
	passwordHash string
	restaurantID int

	guard guard.ConstructorGuard
}

// NewLogin creates a login with an already-hashed password. Plaintext
// passwords never reach this type.
func NewLogin(username, passwordHash string, restaurantID int) (*Login, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	if restaurantID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}

	return &Login{
		username:     username,
		passwordHash: passwordHash,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the instance came from the constructor.
func (l *Login) Validate() error {
	if l == nil {
		return ErrLoginIsNotConstructed
	}
	return l.guard.Validate(ErrLoginIsNotConstructed)
}

// Username returns the generated login name.
func (l *Login) Username() string { return l.username }

// PasswordHash returns the one-way hash of the password.
func (l *Login) PasswordHash() string { return l.passwordHash }

// RestaurantID returns the owning restaurant's id.
func (l *Login) RestaurantID() int { return l.restaurantID }

// ChangePasswordHash replaces the stored hash after a password change.
func (l *Login) ChangePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	l.passwordHash = passwordHash
	return nil
}
