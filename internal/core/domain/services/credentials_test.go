package services_test

import (
	"context"
	"errors"
	"testing"

	"frontdash/internal/core/domain/services"
	"frontdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverTaken(context.Context, string) (bool, error) {
	return false, nil
}

func TestGenerateUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("uses_first_name_lowercased_with_01_suffix", func(t *testing.T) {
		username, err := services.GenerateUsername(ctx, "John Smith", neverTaken)

		require.NoError(t, err)
		assert.Equal(t, "john01", username)
	})

	t.Run("probes_past_taken_suffixes", func(t *testing.T) {
		taken := map[string]bool{"john01": true, "john02": true}
		username, err := services.GenerateUsername(ctx, "John Smith",
			func(_ context.Context, candidate string) (bool, error) {
				return taken[candidate], nil
			})

		require.NoError(t, err)
		assert.Equal(t, "john03", username)
	})

	t.Run("single_token_names_work", func(t *testing.T) {
		username, err := services.GenerateUsername(ctx, "  Madonna  ", neverTaken)

		require.NoError(t, err)
		assert.Equal(t, "madonna01", username)
	})

	t.Run("exhausts_after_99_suffixes", func(t *testing.T) {
		probes := 0
		_, err := services.GenerateUsername(ctx, "John Smith",
			func(context.Context, string) (bool, error) {
				probes++
				return true, nil
			})

		require.ErrorIs(t, err, errs.ErrUsernameExhausted)
		assert.Equal(t, 99, probes)
	})

	t.Run("blank_contact_name_is_rejected", func(t *testing.T) {
		_, err := services.GenerateUsername(ctx, "   ", neverTaken)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("probe_errors_stop_generation", func(t *testing.T) {
		boom := errors.New("login store down")
		_, err := services.GenerateUsername(ctx, "John Smith",
			func(context.Context, string) (bool, error) {
				return false, boom
			})

		require.ErrorIs(t, err, boom)
	})
}

func TestGeneratePassword(t *testing.T) {
	first := services.GeneratePassword()
	second := services.GeneratePassword()

	assert.Len(t, first, 8)
	assert.Len(t, second, 8)
	assert.NotEqual(t, first, second)
}
