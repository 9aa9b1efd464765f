package ports

import (
	"context"

	"frontdash/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for delivery drivers.
type DriverRepository interface {
	// Add persists a new driver and assigns its generated id.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id.
	Get(ctx context.Context, id int) (*driver.Driver, error)

	// Delete removes a driver by id.
	Delete(ctx context.Context, id int) error

	// TakeIfAvailable flips the driver to BUSY only if it is currently
	// AVAILABLE, in a single conditional update. Returns
	// errs.ErrInvalidStateTransition when the driver was already busy and
	// errs.ErrObjectNotFound when no such driver exists.
	TakeIfAvailable(ctx context.Context, id int) error

	// Release flips the driver back to AVAILABLE.
	Release(ctx context.Context, id int) error
}
