package order

import (
	"fmt"

	"frontdash/internal/pkg/errs"
)

// Status represents the fulfillment state of an order, stored as its string
// value.
//
// State transitions:
//
//	PENDING ──assign──> OUT_FOR_DELIVERY ──complete──> DELIVERED
//	                                     └─complete──> NOT_DELIVERED
//
// DELIVERED and NOT_DELIVERED are terminal states. Orders are never deleted
// by the fulfillment flow.
type Status string

const (
	// StatusPending is the initial status of a freshly placed order waiting
	// for a driver.
	StatusPending Status = "PENDING"

	// StatusOutForDelivery marks an order handed to a driver.
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"

	// StatusDelivered marks a successfully completed delivery. Terminal.
	StatusDelivered Status = "DELIVERED"

	// StatusNotDelivered marks a failed delivery attempt. Terminal.
	StatusNotDelivered Status = "NOT_DELIVERED"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:        {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
		StatusNotDelivered:   {},
	}
}

// Validate checks that the value is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%q is not an order status", string(s)))
	}
	return nil
}

// String returns the stored representation, e.g. "OUT_FOR_DELIVERY".
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status ends the fulfillment flow.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusNotDelivered
}

// Assign transitions PENDING to OUT_FOR_DELIVERY.
func (s Status) Assign() (Status, error) {
	if s != StatusPending {
		return "", errs.NewInvalidStateTransitionError("order", s.String(), StatusOutForDelivery.String())
	}
	return StatusOutForDelivery, nil
}

// Complete transitions OUT_FOR_DELIVERY into one of the terminal statuses.
func (s Status) Complete(outcome Status) (Status, error) {
	if !outcome.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a terminal status", outcome))
	}
	if s != StatusOutForDelivery {
		return "", errs.NewInvalidStateTransitionError("order", s.String(), outcome.String())
	}
	return outcome, nil
}

// ValidateCanHaveDriver checks the driver-reference rule: a PENDING order
// never references a driver, an OUT_FOR_DELIVERY order always does.
// Terminal orders usually carry one too, but delivery-time confirmation
// can force DELIVERED without a dispatch, so terminal statuses accept
// either.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s must not have an assigned driver", s))
	}
	if !hasDriver && s == StatusOutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s requires an assigned driver", s))
	}
	return nil
}
