package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"frontdash/internal/core/domain/model/driver"
	"frontdash/internal/pkg/errs"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver and assigns the generated id to the aggregate.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Get retrieves a driver by id.
func (r *GormDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a driver by id.
func (r *GormDriverRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&DriverDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id)
	}
	return nil
}

// TakeIfAvailable flips an AVAILABLE driver to BUSY in one conditional
// update. Zero affected rows means the driver is either busy or gone; the
// follow-up lookup tells the two apart.
func (r *GormDriverRepository) TakeIfAvailable(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND availability = ?", id, driver.Available.String()).
		Update("availability", driver.Busy.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var dto DriverDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("driver", id)
			}
			return err
		}
		return errs.NewInvalidStateTransitionError("driver",
			dto.Availability, driver.Busy.String())
	}

	return nil
}

// Release flips a driver back to AVAILABLE.
func (r *GormDriverRepository) Release(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", id).
		Update("availability", driver.Available.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", id)
	}
	return nil
}
