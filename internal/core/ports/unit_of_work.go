package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tx-bound repository access.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RestaurantRepository returns a RestaurantRepository bound to the
	// current transaction.
	RestaurantRepository() RestaurantRepository

	// LoginRepository returns a LoginRepository bound to the current
	// transaction.
	LoginRepository() LoginRepository

	// MenuRepository returns a MenuRepository bound to the current
	// transaction.
	MenuRepository() MenuRepository

	// OperatingHourRepository returns an OperatingHourRepository bound to
	// the current transaction.
	OperatingHourRepository() OperatingHourRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction.
	DriverRepository() DriverRepository

	// AddressRepository returns an AddressRepository bound to the current
	// transaction.
	AddressRepository() AddressRepository
}
