package kernel

import (
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
)

// WeekDay identifies the day of week an operating-hour row belongs to.
// Values are normalized to upper case ("MONDAY".."SUNDAY") because the
// (restaurant, weekday) pair is the upsert key for operating hours.
type WeekDay string

const (
	Monday    WeekDay = "MONDAY"
	Tuesday   WeekDay = "TUESDAY"
	Wednesday WeekDay = "WEDNESDAY"
	Thursday  WeekDay = "THURSDAY"
	Friday    WeekDay = "FRIDAY"
	Saturday  WeekDay = "SATURDAY"
	Sunday    WeekDay = "SUNDAY"
)

func validWeekDays() map[WeekDay]struct{} {
	return map[WeekDay]struct{}{
		Monday:    {},
		Tuesday:   {},
		Wednesday: {},
		Thursday:  {},
		Friday:    {},
		Saturday:  {},
		Sunday:    {},
	}
}

// NewWeekDay normalizes and validates a day-of-week name.
// Returns ValueIsRequired for blank input and ValueIsInvalid for names
// outside the seven-day set.
func NewWeekDay(day string) (WeekDay, error) {
	trimmed := strings.TrimSpace(day)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("weekDay")
	}

	candidate := WeekDay(strings.ToUpper(trimmed))
	if _, ok := validWeekDays()[candidate]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("weekDay",
			fmt.Errorf("%q is not a day of week", day))
	}
	return candidate, nil
}

// Validate checks that the value is one of the seven canonical days.
func (d WeekDay) Validate() error {
	if _, ok := validWeekDays()[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weekDay",
			fmt.Errorf("%q is not a day of week", string(d)))
	}
	return nil
}

// String returns the canonical upper-case name.
func (d WeekDay) String() string {
	return string(d)
}
