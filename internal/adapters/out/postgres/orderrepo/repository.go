package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/errs"
)

// NumberSequence is the database sequence backing order number allocation.
// Values survive rolled-back transactions, so numbers are unique but may
// have gaps.
const NumberSequence = "order_number_seq"

// EnsureNumberSequence creates the order number sequence if it does not
// exist yet. Called once at startup.
func EnsureNumberSequence(db *gorm.DB) error {
	return db.Exec("CREATE SEQUENCE IF NOT EXISTS " + NumberSequence).Error
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NextNumber allocates the next order number from the sequence.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.WithContext(ctx).
		Raw("SELECT nextval(?)", NumberSequence).
		Scan(&seq).Error; err != nil {
		return "", err
	}

	return order.FormatNumber(seq)
}

// Add saves a new order with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing order. Line items are immutable and
// left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Select("driver_id", "status", "delivery_time").
		Updates(map[string]any{
			"driver_id":     dto.DriverID,
			"status":        dto.Status,
			"delivery_time": dto.DeliveryTime,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.Number)
	}

	return nil
}

// Get retrieves an order by its number, line items included.
func (r *GormOrderRepository) Get(ctx context.Context, number string) (*order.Order, error) {
	if err := order.ValidateNumber(number); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}
