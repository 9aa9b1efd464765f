// Package address holds the street address entity shared by restaurant
// registration and order checkout. Addresses are referenced by id from both
// sides and never updated in place.
package address

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through NewAddress or RestoreAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a plain street address.
type Address struct {
	id       int
	street   string
	city     string
	state    string
	zipCode  string
	building string
	unit     string

	guard guard.ConstructorGuard
}

// NewAddress creates an address. Street, city, state and zip are required;
// building and unit are optional refinements.
func NewAddress(street, city, state, zipCode, building, unit string) (*Address, error) {
	a := &Address{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requireField("street", street),
		requireField("city", city),
		requireField("state", state),
		requireField("zipCode", zipCode),
	); err != nil {
		return nil, err
	}

	a.street = street
	a.city = city
	a.state = state
	a.zipCode = zipCode
	a.building = building
	a.unit = unit
	return a, nil
}

// RestoreAddress reconstructs an address from persistence.
func RestoreAddress(id int, street, city, state, zipCode, building, unit string) (*Address, error) {
	a, err := NewAddress(street, city, state, zipCode, building, unit)
	if err != nil {
		return nil, err
	}
	a.id = id
	return a, nil
}

// Validate ensures the instance came from a constructor.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// AssignID records the storage-generated identity after the first insert.
func (a *Address) AssignID(id int) error {
	if a.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("address already has id %d", a.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive id", id))
	}
	a.id = id
	return nil
}

func (a *Address) ID() int          { return a.id }
func (a *Address) Street() string   { return a.street }
func (a *Address) City() string     { return a.city }
func (a *Address) State() string    { return a.state }
func (a *Address) ZipCode() string  { return a.zipCode }
func (a *Address) Building() string { return a.building }
func (a *Address) Unit() string     { return a.unit }

func requireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
