package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdash/internal/adapters/out/auth"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := auth.NewBcryptPasswordHasher()

	t.Run("hashes_and_verifies_password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret99")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret99", hash)

		require.NoError(t, hasher.Verify(hash, "s3cret99"))
	})

	t.Run("rejects_wrong_password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret99")
		require.NoError(t, err)

		assert.Error(t, hasher.Verify(hash, "wrong-password"))
	})

	t.Run("produces_distinct_hashes_for_same_password", func(t *testing.T) {
		first, err := hasher.Hash("s3cret99")
		require.NoError(t, err)
		second, err := hasher.Hash("s3cret99")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestJWTTokenIssuer(t *testing.T) {
	t.Run("issues_parseable_token_with_owner_claims", func(t *testing.T) {
		issuer := auth.NewJWTTokenIssuer("test-signing-secret", time.Hour)

		token, err := issuer.Issue("mario01", 42)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "mario01", claims.Username)
		assert.Equal(t, 42, claims.RestaurantID)
		assert.Equal(t, auth.RoleOwner, claims.Role)
	})

	t.Run("rejects_token_signed_with_different_secret", func(t *testing.T) {
		issuer := auth.NewJWTTokenIssuer("test-signing-secret", time.Hour)
		other := auth.NewJWTTokenIssuer("different-secret", time.Hour)

		token, err := other.Issue("mario01", 42)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})

	t.Run("rejects_expired_token", func(t *testing.T) {
		issuer := auth.NewJWTTokenIssuer("test-signing-secret", -time.Minute)

		token, err := issuer.Issue("mario01", 42)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.Error(t, err)
	})
}
