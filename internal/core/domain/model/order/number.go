package order

import (
	"fmt"
	"strconv"
	"strings"

	"frontdash/internal/pkg/errs"
)

// NumberPrefix starts every order number handed out by the platform.
const NumberPrefix = "FD"

// numberWidth is the minimum digit count; counters beyond its capacity
// widen naturally ("FD9999" is followed by "FD10000").
const numberWidth = 4

// FormatNumber renders a sequence value as an order number: the FD prefix
// followed by the value zero-padded to four digits, widening once the value
// no longer fits.
func FormatNumber(seq int64) (string, error) {
	if seq <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%d is not a positive sequence value", seq))
	}
	return fmt.Sprintf("%s%0*d", NumberPrefix, numberWidth, seq), nil
}

// ValidateNumber checks that a string is a well-formed order number.
func ValidateNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	digits, ok := strings.CutPrefix(number, NumberPrefix)
	if !ok || len(digits) < numberWidth {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match %s + padded counter", number, NumberPrefix))
	}
	if _, err := strconv.ParseInt(digits, 10, 64); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}
	return nil
}
