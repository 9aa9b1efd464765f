package queries

import (
	"errors"
	"fmt"
	"time"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

var (
	ErrGetOrdersByRestaurantQueryIsNotConstructed = errors.New(
		"GetOrdersByRestaurantQuery must be created via NewGetOrdersByRestaurantQuery constructor",
	)
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// DriverFilter narrows an order listing by assignment state.
type DriverFilter string

const (
	// AnyDriver keeps both assigned and unassigned orders.
	AnyDriver DriverFilter = "ANY"
	// WithDriver keeps only orders that already have a driver.
	WithDriver DriverFilter = "WITH_DRIVER"
	// WithoutDriver keeps only orders still waiting for a driver.
	WithoutDriver DriverFilter = "WITHOUT_DRIVER"
)

// Validate checks that the filter is a defined value.
func (f DriverFilter) Validate() error {
	switch f {
	case AnyDriver, WithDriver, WithoutDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("driverFilter",
			fmt.Errorf("%q is not a driver filter", string(f)))
	}
}

// OrderResponse is one row of an order listing.
type OrderResponse struct {
	Number        string
	RestaurantID  int
	CustomerName  string
	CustomerPhone string
	DriverID      *int
	Subtotal      float64
	Tips          float64
	Total         float64
	Status        string
	OrderTime     time.Time
	DeliveryTime  *time.Time
}

// GetOrdersByRestaurantQuery lists every order placed with one restaurant.
type GetOrdersByRestaurantQuery struct {
	restaurantID int

	guard guard.ConstructorGuard
}

// NewGetOrdersByRestaurantQuery creates a per-restaurant order listing
// query.
func NewGetOrdersByRestaurantQuery(restaurantID int) (GetOrdersByRestaurantQuery, error) {
	if restaurantID <= 0 {
		return GetOrdersByRestaurantQuery{}, errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	return GetOrdersByRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q GetOrdersByRestaurantQuery) RestaurantID() int {
	return q.restaurantID
}

// GetOrdersByStatusQuery lists orders in one fulfillment status, optionally
// narrowed by assignment state. Dispatchers use PENDING crossed with
// WithoutDriver to find work.
type GetOrdersByStatusQuery struct {
	status       order.Status
	driverFilter DriverFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a status listing query.
func NewGetOrdersByStatusQuery(status order.Status, driverFilter DriverFilter) (GetOrdersByStatusQuery, error) {
	if err := errors.Join(status.Validate(), driverFilter.Validate()); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	return GetOrdersByStatusQuery{
		status:       status,
		driverFilter: driverFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the fulfillment status to filter on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// DriverFilter returns the assignment-state filter.
func (q GetOrdersByStatusQuery) DriverFilter() DriverFilter {
	return q.driverFilter
}
