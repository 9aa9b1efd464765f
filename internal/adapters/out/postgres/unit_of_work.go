// Package postgres provides the GORM-based Unit of Work that binds the
// repository implementations to a shared database transaction.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"frontdash/internal/adapters/out/postgres/addressrepo"
	"frontdash/internal/adapters/out/postgres/driverrepo"
	"frontdash/internal/adapters/out/postgres/orderrepo"
	"frontdash/internal/adapters/out/postgres/restaurantrepo"
	"frontdash/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances backed by a shared GORM
// connection. Each business operation gets a fresh instance so concurrent
// handlers never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the repositories.
// Repository accessors return instances bound to the active transaction, or
// to the main connection when no transaction has been started.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin again on the same instance is a
// no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. Returns
// gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Returns
// gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// RestaurantRepository returns a restaurant repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

// LoginRepository returns a login repository bound to the current
// transaction.
func (uow *GormUnitOfWork) LoginRepository() ports.LoginRepository {
	return restaurantrepo.NewGormLoginRepository(uow.conn())
}

// MenuRepository returns a menu repository bound to the current transaction.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return restaurantrepo.NewGormMenuRepository(uow.conn())
}

// OperatingHourRepository returns an operating-hour repository bound to the
// current transaction.
func (uow *GormUnitOfWork) OperatingHourRepository() ports.OperatingHourRepository {
	return restaurantrepo.NewGormOperatingHourRepository(uow.conn())
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// AddressRepository returns an address repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn())
}
