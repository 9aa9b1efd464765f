package ports

import (
	"context"

	"frontdash/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates, including the cascading removal that closes out a withdrawal.
type RestaurantRepository interface {
	// Add persists a new restaurant and assigns its generated id.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by id.
	Get(ctx context.Context, id int) (*restaurant.Restaurant, error)

	// NameExists reports whether a restaurant with the given name is
	// already registered.
	NameExists(ctx context.Context, name string) (bool, error)

	// Delete removes the restaurant row itself. Dependent rows must already
	// be gone; use DeleteDependents first within the same transaction.
	Delete(ctx context.Context, id int) error

	// DeleteDependents removes everything hanging off a restaurant in
	// reference order: order items, orders, menu items, menu categories,
	// operating hours, and the login record.
	DeleteDependents(ctx context.Context, id int) error
}

// LoginRepository defines the persistence contract for restaurant owner
// credentials.
type LoginRepository interface {
	// Add persists a new login record.
	Add(ctx context.Context, login *restaurant.Login) error

	// GetByUsername retrieves a login record by username.
	GetByUsername(ctx context.Context, username string) (*restaurant.Login, error)

	// UsernameExists reports whether a username is already taken.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// UpdatePasswordHash replaces the stored password hash for a username.
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
}

// MenuRepository defines the persistence contract for menu categories and
// items. The menu hangs off the restaurant aggregate but is persisted
// separately to keep writes small.
type MenuRepository interface {
	// AddCategory persists a menu category and assigns its generated id.
	AddCategory(ctx context.Context, category *restaurant.MenuCategory) error

	// AddItem persists a menu item and assigns its generated id.
	AddItem(ctx context.Context, item *restaurant.MenuItem) error

	// UpdateItem persists changes to an existing menu item.
	UpdateItem(ctx context.Context, item *restaurant.MenuItem) error

	// GetItem retrieves a menu item by id.
	GetItem(ctx context.Context, id int) (*restaurant.MenuItem, error)
}

// OperatingHourRepository defines the persistence contract for a
// restaurant's weekly schedule.
type OperatingHourRepository interface {
	// Upsert replaces the stored window for the row's (restaurant, weekday)
	// pair, inserting when absent.
	Upsert(ctx context.Context, hour *restaurant.OperatingHour) error

	// GetByRestaurant retrieves all schedule rows for a restaurant.
	GetByRestaurant(ctx context.Context, restaurantID int) ([]*restaurant.OperatingHour, error)
}
