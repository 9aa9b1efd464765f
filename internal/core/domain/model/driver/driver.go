// Package driver holds the delivery driver aggregate. A driver is a small
// record with a name and an availability flag; the flag is the concurrency
// hot spot of the platform, since assigning an order must atomically flip an
// AVAILABLE driver to BUSY.
package driver

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Availability tells whether a driver can take a new order.
type Availability string

const (
	Available Availability = "AVAILABLE"
	Busy      Availability = "BUSY"
)

// Validate checks that the availability is a defined value.
func (a Availability) Validate() error {
	switch a {
	case Available, Busy:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not a known availability", string(a)))
	}
}

func (a Availability) String() string {
	return string(a)
}

// Driver is the aggregate root for delivery staff.
type Driver struct {
	id           int
	name         string
	availability Availability

	guard guard.ConstructorGuard
}

// NewDriver creates a driver that is immediately available for assignment.
func NewDriver(name string) (*Driver, error) {
	d := &Driver{
		availability: Available,
		guard:        guard.NewConstructorGuard(),
	}
	if err := d.setName(name); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id int, name string, availability Availability) (*Driver, error) {
	if err := availability.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDriver(name)
	if err != nil {
		return nil, err
	}
	d.id = id
	d.availability = availability
	return d, nil
}

// Validate ensures the instance came from a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id == other.id
}

// AssignID records the storage-generated identity after the first insert.
func (d *Driver) AssignID(id int) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("driver already has id %d", d.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive id", id))
	}
	d.id = id
	return nil
}

// ID returns the driver identity, zero before the first insert.
func (d *Driver) ID() int { return d.id }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Availability returns the current availability flag.
func (d *Driver) Availability() Availability { return d.availability }

// IsAvailable reports whether the driver can take a new order.
func (d *Driver) IsAvailable() bool {
	return d.availability == Available
}

// MarkBusy flags the driver as occupied with a delivery. Only an AVAILABLE
// driver can be taken; callers needing atomicity against concurrent
// assignment rely on the repository's conditional update as well.
func (d *Driver) MarkBusy() error {
	if d.availability != Available {
		return errs.NewInvalidStateTransitionError("availability",
			d.availability.String(), Busy.String())
	}
	d.availability = Busy
	return nil
}

// MarkAvailable releases the driver after a delivery is closed out. The
// release is idempotent.
func (d *Driver) MarkAvailable() {
	d.availability = Available
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
