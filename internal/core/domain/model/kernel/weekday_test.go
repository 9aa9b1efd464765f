package kernel_test

import (
	"testing"

	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeekDay(t *testing.T) {
	t.Run("normalizes_case_and_whitespace", func(t *testing.T) {
		day, err := kernel.NewWeekDay("  monday ")

		require.NoError(t, err)
		assert.Equal(t, kernel.Monday, day)
		assert.Equal(t, "MONDAY", day.String())
	})

	t.Run("accepts_all_seven_days", func(t *testing.T) {
		for _, name := range []string{
			"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
		} {
			day, err := kernel.NewWeekDay(name)
			require.NoError(t, err)
			require.NoError(t, day.Validate())
		}
	})

	t.Run("blank_day_is_required_error", func(t *testing.T) {
		_, err := kernel.NewWeekDay("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown_day_is_invalid", func(t *testing.T) {
		_, err := kernel.NewWeekDay("someday")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestWeekDay_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var day kernel.WeekDay

		require.ErrorIs(t, day.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("lowercase_raw_value_is_invalid", func(t *testing.T) {
		require.ErrorIs(t, kernel.WeekDay("monday").Validate(), errs.ErrValueIsInvalid)
	})
}
