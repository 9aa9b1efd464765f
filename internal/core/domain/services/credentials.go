// Package services holds stateless domain services that do not belong to a
// single aggregate.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"frontdash/internal/pkg/errs"
)

const (
	usernameSuffixMin = 1
	usernameSuffixMax = 99
	passwordLength    = 8
)

// UsernameTaken reports whether a username is already in use. Implementations
// typically query the login store inside the registration transaction.
type UsernameTaken func(ctx context.Context, username string) (bool, error)

// GenerateUsername derives a login username from a contact person's name:
// the first whitespace-separated token, lowercased, with a two-digit suffix
// probed from 01 upward until a free slot is found. When all 99 slots for a
// stem are taken it returns ErrUsernameExhausted.
func GenerateUsername(ctx context.Context, contactName string, taken UsernameTaken) (string, error) {
	stem := usernameStem(contactName)
	if stem == "" {
		return "", errs.NewValueIsRequiredError("contactName")
	}

	for suffix := usernameSuffixMin; suffix <= usernameSuffixMax; suffix++ {
		candidate := fmt.Sprintf("%s%02d", stem, suffix)

		inUse, err := taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
	}

	return "", errs.NewUsernameExhaustedError(stem)
}

// GeneratePassword produces a random initial password: the first eight
// characters of a fresh UUID.
func GeneratePassword() string {
	return uuid.NewString()[:passwordLength]
}

func usernameStem(contactName string) string {
	fields := strings.Fields(contactName)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
