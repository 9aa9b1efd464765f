// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/pkg/guard"
)

var ErrGetRestaurantsByStatusQueryIsNotConstructed = errors.New(
	"GetRestaurantsByStatusQuery must be created via NewGetRestaurantsByStatusQuery constructor",
)

// GetRestaurantsByStatusQuery lists restaurants in one lifecycle status,
// e.g. the NEW_REG applications waiting for an administrator. An empty
// status lists restaurants in every status.
type GetRestaurantsByStatusQuery struct {
	status restaurant.Status

	guard guard.ConstructorGuard
}

// NewGetRestaurantsByStatusQuery creates a status listing query. An empty
// status means no filter.
func NewGetRestaurantsByStatusQuery(status restaurant.Status) (GetRestaurantsByStatusQuery, error) {
	if status != "" {
		if err := status.Validate(); err != nil {
			return GetRestaurantsByStatusQuery{}, err
		}
	}
	return GetRestaurantsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to filter on.
func (q GetRestaurantsByStatusQuery) Status() restaurant.Status {
	return q.status
}

// RestaurantResponse is one row of a restaurant listing.
type RestaurantResponse struct {
	ID          int
	Name        string
	CuisineType string
	PictureURL  string
	PhoneNumber string
	ContactName string
	Email       string
	Status      string
}
