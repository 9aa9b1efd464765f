// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"frontdash/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RestaurantRepoFactory provides access to the restaurant repository
	// within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// LoginRepoFactory provides access to the login repository within a
	// transaction.
	LoginRepoFactory interface {
		LoginRepository() ports.LoginRepository
	}

	// MenuRepoFactory provides access to the menu repository within a
	// transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OperatingHourRepoFactory provides access to the operating hour
	// repository within a transaction.
	OperatingHourRepoFactory interface {
		OperatingHourRepository() ports.OperatingHourRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a
	// transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AddressRepoFactory provides access to the address repository within a
	// transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// RegistrationUoW spans the aggregates written during restaurant
	// registration: the restaurant itself, its address, menu, and schedule.
	RegistrationUoW interface {
		TxManager
		RestaurantRepoFactory
		AddressRepoFactory
		MenuRepoFactory
		OperatingHourRepoFactory
	}

	// RegistrationUoWFactory creates registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// LifecycleUoW spans a restaurant lifecycle decision: the restaurant
	// row plus its login record.
	LifecycleUoW interface {
		TxManager
		RestaurantRepoFactory
		LoginRepoFactory
	}

	// LifecycleUoWFactory creates lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// OrderUoW spans order creation: the order plus its delivery address.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AddressRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW spans order fulfillment transitions, which couple the
	// order status to driver availability.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// FulfillmentUoWFactory creates fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// DriverUoW manages transactions for driver administration.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// MenuUoW spans menu edits for an existing restaurant.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// ScheduleUoW spans operating hour maintenance for an existing
	// restaurant.
	ScheduleUoW interface {
		TxManager
		RestaurantRepoFactory
		OperatingHourRepoFactory
	}

	// ScheduleUoWFactory creates schedule unit of work instances.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// LoginUoW manages transactions for credential operations.
	LoginUoW interface {
		TxManager
		LoginRepoFactory
	}

	// LoginUoWFactory creates login unit of work instances.
	LoginUoWFactory interface {
		Create() LoginUoW
	}
)
