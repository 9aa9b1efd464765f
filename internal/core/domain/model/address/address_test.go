package address_test

import (
	"testing"

	"frontdash/internal/core/domain/model/address"
	"frontdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates_valid_address", func(t *testing.T) {
		a, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701", "Bldg 2", "4B")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "100 Main St", a.Street())
		assert.Equal(t, "4B", a.Unit())
		assert.Zero(t, a.ID())
	})

	t.Run("building_and_unit_are_optional", func(t *testing.T) {
		_, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701", "", "")

		require.NoError(t, err)
	})

	t.Run("joins_all_missing_required_fields", func(t *testing.T) {
		_, err := address.NewAddress("", "", "IL", "", "", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "zipCode")
	})

	t.Run("zero_value_fails_guard", func(t *testing.T) {
		var a address.Address
		require.Error(t, a.Validate())
	})
}

func TestAddress_AssignID(t *testing.T) {
	a, err := address.NewAddress("100 Main St", "Springfield", "IL", "62701", "", "")
	require.NoError(t, err)

	require.NoError(t, a.AssignID(11))
	assert.Equal(t, 11, a.ID())

	require.ErrorIs(t, a.AssignID(12), errs.ErrValueIsInvalid)
}

func TestRestoreAddress(t *testing.T) {
	a, err := address.RestoreAddress(5, "100 Main St", "Springfield", "IL", "62701", "", "")

	require.NoError(t, err)
	assert.Equal(t, 5, a.ID())
}
