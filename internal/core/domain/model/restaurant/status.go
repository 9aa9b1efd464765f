package restaurant

import (
	"fmt"

	"frontdash/internal/pkg/errs"
)

// Status represents the registration lifecycle state of a restaurant.
// It is stored as its string value, so renaming a constant is a schema change.
//
// State transitions:
//
//	NEW_REG ──approve──> ACTIVE ──requestWithdrawal──> WITHDRAW_REQ
//	NEW_REG ──reject──> deleted
//	WITHDRAW_REQ ──approveWithdrawal──> deleted
//	WITHDRAW_REQ ──rejectWithdrawal──> ACTIVE
//
// Status is a value object that validates state transitions. The deleting
// transitions have no target status; CanReject and CanApproveWithdrawal
// guard them instead.
type Status string

const (
	// StatusNewRegistration is the initial status of a freshly registered
	// restaurant awaiting staff review.
	StatusNewRegistration Status = "NEW_REG"

	// StatusActive marks an approved restaurant that can take orders.
	StatusActive Status = "ACTIVE"

	// StatusWithdrawRequested marks an active restaurant that asked to leave
	// the platform and awaits a staff decision.
	StatusWithdrawRequested Status = "WITHDRAW_REQ"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNewRegistration:   {},
		StatusActive:            {},
		StatusWithdrawRequested: {},
	}
}

// Validate checks that the value is one of the defined statuses.
// Used when reconstructing restaurants from persistence.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a restaurant status", string(s)))
	}
	return nil
}

// String returns the stored representation, e.g. "NEW_REG".
func (s Status) String() string {
	return string(s)
}

// Approve transitions NEW_REG to ACTIVE.
//
// Returns InvalidStateTransition for every other starting status, so a
// restaurant can only be approved once.
func (s Status) Approve() (Status, error) {
	if s != StatusNewRegistration {
		return "", errs.NewInvalidStateTransitionError("restaurant", s.String(), StatusActive.String())
	}
	return StatusActive, nil
}

// CanReject reports whether the registration may be rejected, which deletes
// the restaurant. Only NEW_REG restaurants can be rejected.
func (s Status) CanReject() error {
	if s != StatusNewRegistration {
		return errs.NewInvalidStateTransitionError("restaurant", s.String(), "deleted")
	}
	return nil
}

// RequestWithdrawal transitions ACTIVE to WITHDRAW_REQ.
func (s Status) RequestWithdrawal() (Status, error) {
	if s != StatusActive {
		return "", errs.NewInvalidStateTransitionError("restaurant", s.String(), StatusWithdrawRequested.String())
	}
	return StatusWithdrawRequested, nil
}

// CanApproveWithdrawal reports whether an approved withdrawal may delete the
// restaurant. Only WITHDRAW_REQ restaurants qualify.
func (s Status) CanApproveWithdrawal() error {
	if s != StatusWithdrawRequested {
		return errs.NewInvalidStateTransitionError("restaurant", s.String(), "deleted")
	}
	return nil
}

// RejectWithdrawal transitions WITHDRAW_REQ back to ACTIVE.
func (s Status) RejectWithdrawal() (Status, error) {
	if s != StatusWithdrawRequested {
		return "", errs.NewInvalidStateTransitionError("restaurant", s.String(), StatusActive.String())
	}
	return StatusActive, nil
}
