package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the aggregate root for a marketplace restaurant. It owns the
// registration lifecycle status; name, contact info, and address reference are
// plain attributes mutated by profile editing, which lives outside this
// aggregate's state machine.
//
// Invariants:
//   - Name is required and unique platform-wide (uniqueness enforced by storage)
//   - Contact person name is required: approval derives the login username from it
//   - Status only changes through the transition methods below
type Restaurant struct {
	id          int
	name        string
	cuisineType string
	pictureURL  string
	addressID   *int
	phoneNumber string
	contactName string
	email       string
	status      Status

	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant in NEW_REG status. The id is zero until
// the repository persists the row and assigns the generated key.
func NewRestaurant(name, cuisineType, phoneNumber, contactName, email string) (*Restaurant, error) {
	r := &Restaurant{
		status: StatusNewRegistration,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setName(name),
		r.setContactName(contactName),
	); err != nil {
		return nil, err
	}

	r.cuisineType = cuisineType
	r.phoneNumber = phoneNumber
	r.email = email
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence without
// re-running registration validation, but still rejecting corrupted status
// values.
func RestoreRestaurant(
	id int,
	name, cuisineType, pictureURL string,
	addressID *int,
	phoneNumber, contactName, email string,
	status Status,
) (*Restaurant, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Restaurant{
		id:          id,
		name:        name,
		cuisineType: cuisineType,
		pictureURL:  pictureURL,
		addressID:   addressID,
		phoneNumber: phoneNumber,
		contactName: contactName,
		email:       email,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the instance came from a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// AssignID records the storage-generated key on a freshly inserted aggregate.
// It fails if an id was already assigned.
func (r *Restaurant) AssignID(id int) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("id already assigned: %d", r.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", id))
	}
	r.id = id
	return nil
}

// ID returns the restaurant's storage key, zero before the first insert.
func (r *Restaurant) ID() int { return r.id }

// Name returns the unique restaurant name.
func (r *Restaurant) Name() string { return r.name }

// CuisineType returns the declared cuisine or business type.
func (r *Restaurant) CuisineType() string { return r.cuisineType }

// PictureURL returns the uploaded picture reference, empty when absent.
func (r *Restaurant) PictureURL() string { return r.pictureURL }

// AddressID returns the address reference, nil when no address is on file.
func (r *Restaurant) AddressID() *int { return r.addressID }

// PhoneNumber returns the restaurant contact phone.
func (r *Restaurant) PhoneNumber() string { return r.phoneNumber }

// ContactName returns the contact person's name. Approval derives the login
// username from its first token.
func (r *Restaurant) ContactName() string { return r.contactName }

// Email returns the notification address, empty when none was supplied.
func (r *Restaurant) Email() string { return r.email }

// Status returns the current lifecycle status.
func (r *Restaurant) Status() Status { return r.status }

// SetAddressID links the restaurant to a persisted address row.
func (r *Restaurant) SetAddressID(addressID int) error {
	if addressID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("addressId",
			fmt.Errorf("%d is not a positive id", addressID))
	}
	r.addressID = &addressID
	return nil
}

// SetPictureURL records the uploaded picture reference.
func (r *Restaurant) SetPictureURL(url string) {
	r.pictureURL = url
}

// Approve transitions the registration from NEW_REG to ACTIVE.
// The caller is responsible for creating the login credentials that an
// active restaurant must have.
func (r *Restaurant) Approve() error {
	next, err := r.status.Approve()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// EnsureRejectable verifies the registration can be rejected (and the
// aggregate deleted) without mutating anything.
func (r *Restaurant) EnsureRejectable() error {
	return r.status.CanReject()
}

// RequestWithdrawal transitions ACTIVE to WITHDRAW_REQ.
func (r *Restaurant) RequestWithdrawal() error {
	next, err := r.status.RequestWithdrawal()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// EnsureWithdrawable verifies an approved withdrawal may delete the
// aggregate without mutating anything.
func (r *Restaurant) EnsureWithdrawable() error {
	return r.status.CanApproveWithdrawal()
}

// RejectWithdrawal transitions WITHDRAW_REQ back to ACTIVE. No other field
// changes.
func (r *Restaurant) RejectWithdrawal() error {
	next, err := r.status.RejectWithdrawal()
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

func (r *Restaurant) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setContactName(contactName string) error {
	if strings.TrimSpace(contactName) == "" {
		return errs.NewValueIsRequiredError("contactPersonName")
	}
	r.contactName = contactName
	return nil
}
