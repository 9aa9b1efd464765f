package restaurantrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frontdash/internal/core/domain/model/restaurant"
	"frontdash/internal/pkg/errs"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a new restaurant and assigns the generated id to the aggregate.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// The name is checked via NameExists first, but a concurrent
		// registration can still claim it between the check and the insert.
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("name", err)
		}
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update saves changes to an existing restaurant.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":         dto.Name,
			"cuisine_type": dto.CuisineType,
			"picture_url":  dto.PictureURL,
			"address_id":   dto.AddressID,
			"phone_number": dto.PhoneNumber,
			"contact_name": dto.ContactName,
			"email":        dto.Email,
			"status":       dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", dto.ID)
	}

	return nil
}

// Get retrieves a restaurant by id.
func (r *GormRestaurantRepository) Get(ctx context.Context, id int) (*restaurant.Restaurant, error) {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id)
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// NameExists reports whether a restaurant with the given name is already
// registered.
func (r *GormRestaurantRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Delete removes the restaurant row. Dependent rows must already be gone.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&RestaurantDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id)
	}

	return nil
}

// DeleteDependents removes every row referencing the restaurant, innermost
// first so no foreign key is left dangling mid-transaction: order items,
// orders, menu items, menu categories, operating hours, and the login.
func (r *GormRestaurantRepository) DeleteDependents(ctx context.Context, id int) error {
	db := r.db.WithContext(ctx)

	steps := []struct {
		sql string
	}{
		{"DELETE FROM order_items WHERE order_number IN (SELECT number FROM orders WHERE restaurant_id = ?)"},
		{"DELETE FROM orders WHERE restaurant_id = ?"},
		{"DELETE FROM menu_items WHERE category_id IN (SELECT id FROM menu_categories WHERE restaurant_id = ?)"},
		{"DELETE FROM menu_categories WHERE restaurant_id = ?"},
		{"DELETE FROM operating_hours WHERE restaurant_id = ?"},
		{"DELETE FROM logins WHERE restaurant_id = ?"},
	}
	for _, step := range steps {
		if err := db.Exec(step.sql, id).Error; err != nil {
			return err
		}
	}

	return nil
}

// GormLoginRepository implements ports.LoginRepository using GORM.
type GormLoginRepository struct {
	db *gorm.DB
}

// NewGormLoginRepository creates a new GORM login repository.
func NewGormLoginRepository(db *gorm.DB) *GormLoginRepository {
	return &GormLoginRepository{db: db}
}

// Add saves a new login record.
func (r *GormLoginRepository) Add(ctx context.Context, login *restaurant.Login) error {
	if err := login.Validate(); err != nil {
		return err
	}

	dto := loginFromDomain(login)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// Usernames are probed before insertion, but a concurrent approval
		// can still claim the same one first.
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("username", err)
		}
		return err
	}

	return nil
}

// GetByUsername retrieves a login record by username.
func (r *GormLoginRepository) GetByUsername(ctx context.Context, username string) (*restaurant.Login, error) {
	var dto LoginDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("login", username)
		}
		return nil, err
	}

	return loginToDomain(dto)
}

// UsernameExists reports whether a username is already taken.
func (r *GormLoginRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LoginDTO{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UpdatePasswordHash replaces the stored password hash for a username.
func (r *GormLoginRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&LoginDTO{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("login", username)
	}

	return nil
}

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// AddCategory saves a new menu category and assigns the generated id.
func (r *GormMenuRepository) AddCategory(ctx context.Context, category *restaurant.MenuCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return category.AssignID(dto.ID)
}

// AddItem saves a new menu item and assigns the generated id.
func (r *GormMenuRepository) AddItem(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.AssignID(dto.ID)
}

// UpdateItem saves changes to an existing menu item.
func (r *GormMenuRepository) UpdateItem(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":        dto.Name,
			"description": dto.Description,
			"picture_url": dto.PictureURL,
			"price_cents": dto.PriceCents,
			"available":   dto.Available,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", dto.ID)
	}

	return nil
}

// GetItem retrieves a menu item by id.
func (r *GormMenuRepository) GetItem(ctx context.Context, id int) (*restaurant.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id)
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GormOperatingHourRepository implements ports.OperatingHourRepository using
// GORM.
type GormOperatingHourRepository struct {
	db *gorm.DB
}

// NewGormOperatingHourRepository creates a new GORM operating-hour
// repository.
func NewGormOperatingHourRepository(db *gorm.DB) *GormOperatingHourRepository {
	return &GormOperatingHourRepository{db: db}
}

// Upsert replaces the stored window for the (restaurant, weekday) pair,
// inserting when absent.
func (r *GormOperatingHourRepository) Upsert(ctx context.Context, hour *restaurant.OperatingHour) error {
	if err := hour.Validate(); err != nil {
		return err
	}

	dto := hourFromDomain(hour)
	dto.ID = 0
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "week_day"}},
			DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time"}),
		}).
		Create(&dto).Error
}

// GetByRestaurant retrieves all schedule rows for a restaurant.
func (r *GormOperatingHourRepository) GetByRestaurant(ctx context.Context, restaurantID int) ([]*restaurant.OperatingHour, error) {
	var dtos []OperatingHourDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	hours := make([]*restaurant.OperatingHour, 0, len(dtos))
	for _, dto := range dtos {
		hour, err := hourToDomain(dto)
		if err != nil {
			return nil, err
		}
		hours = append(hours, hour)
	}

	return hours, nil
}
