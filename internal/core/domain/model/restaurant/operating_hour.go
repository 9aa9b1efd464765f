package restaurant

import (
	"errors"
	"fmt"
	"time"

	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrOperatingHourIsNotConstructed is returned when an OperatingHour instance
// was not created through its constructors.
var ErrOperatingHourIsNotConstructed = errors.New("OperatingHour must be created via NewOperatingHour constructor")

// OperatingHour holds the opening window of a restaurant on one weekday.
// The (restaurant, weekday) pair is the upsert key: updating hours for a
// weekday replaces the existing row instead of adding a second one.
// A nil open or close time means closed that day.
type OperatingHour struct {
	id           int
	restaurantID int
	weekDay      kernel.WeekDay
	openTime     *string
	closeTime    *string

	guard guard.ConstructorGuard
}

// NewOperatingHour creates an operating-hour entry. Times are "HH:MM" or
// "HH:MM:SS" strings; nil means closed.
func NewOperatingHour(restaurantID int, weekDay kernel.WeekDay, openTime, closeTime *string) (*OperatingHour, error) {
	if restaurantID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	if err := weekDay.Validate(); err != nil {
		return nil, err
	}

	o := &OperatingHour{
		restaurantID: restaurantID,
		weekDay:      weekDay,
		guard:        guard.NewConstructorGuard(),
	}
	if err := o.SetWindow(openTime, closeTime); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOperatingHour reconstructs an entry from persistence.
func RestoreOperatingHour(
	id, restaurantID int,
	weekDay kernel.WeekDay,
	openTime, closeTime *string,
) (*OperatingHour, error) {
	o, err := NewOperatingHour(restaurantID, weekDay, openTime, closeTime)
	if err != nil {
		return nil, err
	}
	o.id = id
	return o, nil
}

// Validate ensures the instance came from a constructor.
func (o *OperatingHour) Validate() error {
	if o == nil {
		return ErrOperatingHourIsNotConstructed
	}
	return o.guard.Validate(ErrOperatingHourIsNotConstructed)
}

// AssignID records the storage-generated key on a freshly inserted entry.
func (o *OperatingHour) AssignID(id int) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("operatingHourId",
			fmt.Errorf("id already assigned: %d", o.id))
	}
	o.id = id
	return nil
}

func (o *OperatingHour) ID() int                 { return o.id }
func (o *OperatingHour) RestaurantID() int       { return o.restaurantID }
func (o *OperatingHour) WeekDay() kernel.WeekDay { return o.weekDay }
func (o *OperatingHour) OpenTime() *string       { return o.openTime }
func (o *OperatingHour) CloseTime() *string      { return o.closeTime }

// SetWindow replaces the opening window, validating the time format.
func (o *OperatingHour) SetWindow(openTime, closeTime *string) error {
	open, err := normalizeClock("openTime", openTime)
	if err != nil {
		return err
	}
	closeT, err := normalizeClock("closeTime", closeTime)
	if err != nil {
		return err
	}
	o.openTime = open
	o.closeTime = closeT
	return nil
}

// normalizeClock parses "HH:MM" or "HH:MM:SS" and renders back "HH:MM:SS".
// Blank strings collapse to nil, matching "closed that day".
func normalizeClock(param string, value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("15:04:05", *value)
	if err != nil {
		parsed, err = time.Parse("15:04", *value)
	}
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(param, err)
	}

	normalized := parsed.Format("15:04:05")
	return &normalized, nil
}
