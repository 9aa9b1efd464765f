package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdash/internal/core/application/usecases/commands"
	"frontdash/internal/pkg/errs"
)

func TestNewRegisterRestaurantCommand(t *testing.T) {
	validAddress := commands.AddressInput{
		Street: "100 Main St", City: "Springfield", State: "IL", ZipCode: "62701",
	}

	t.Run("creates_valid_command", func(t *testing.T) {
		cmd, err := commands.NewRegisterRestaurantCommand(
			"Thai Garden", "Thai", "", "555-0100", "Alice Wong", "alice@thaigarden.example",
			validAddress,
			[]commands.HourInput{{WeekDay: "MONDAY", OpenTime: "09:00", CloseTime: "21:00"}},
			[]commands.MenuCategoryInput{{Name: "Curries", Items: []commands.MenuItemInput{
				{Name: "Green Curry", Price: 12.50, Available: true},
			}}})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Thai Garden", cmd.Name())
		assert.Len(t, cmd.Hours(), 1)
		assert.Len(t, cmd.Menu(), 1)
	})

	t.Run("joins_missing_required_fields", func(t *testing.T) {
		_, err := commands.NewRegisterRestaurantCommand(
			"", "Thai", "", "555-0100", " ", "", commands.AddressInput{}, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "contactName")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "address.street")
	})

	t.Run("zero_value_fails_guard", func(t *testing.T) {
		var cmd commands.RegisterRestaurantCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterRestaurantCommandIsNotConstructed)
	})
}
