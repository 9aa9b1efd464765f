// Package restaurantrepo persists the restaurant aggregate and everything
// hanging off it: owner logins, menu categories and items, and the weekly
// operating schedule.
package restaurantrepo

import (
	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/core/domain/model/restaurant"
)

// RestaurantDTO maps the restaurant aggregate to the restaurants table.
type RestaurantDTO struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"size:255;not null;uniqueIndex"`
	CuisineType string `gorm:"size:100"`
	PictureURL  string `gorm:"size:512"`
	AddressID   *int   `gorm:"index"`
	PhoneNumber string `gorm:"size:30"`
	ContactName string `gorm:"size:255;not null"`
	Email       string `gorm:"size:255;not null"`
	Status      string `gorm:"size:20;not null;index"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// LoginDTO maps owner credentials to the logins table. The username is the
// natural key.
type LoginDTO struct {
	Username     string `gorm:"primaryKey;size:100"`
	PasswordHash string `gorm:"size:100;not null"`
	RestaurantID int    `gorm:"uniqueIndex;not null"`
}

// TableName overrides GORM's default naming to use "logins".
func (LoginDTO) TableName() string {
	return "logins"
}

// MenuCategoryDTO maps a menu category to the menu_categories table.
type MenuCategoryDTO struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	RestaurantID int    `gorm:"index;not null"`
	Name         string `gorm:"size:255;not null"`
}

// TableName overrides GORM's default naming to use "menu_categories".
func (MenuCategoryDTO) TableName() string {
	return "menu_categories"
}

// MenuItemDTO maps a menu item to the menu_items table. Prices are stored
// as integer cents.
type MenuItemDTO struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	CategoryID  int    `gorm:"index;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:1000"`
	PictureURL  string `gorm:"size:512"`
	PriceCents  int64  `gorm:"not null"`
	Available   string `gorm:"size:20;not null"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// OperatingHourDTO maps a weekly schedule row to the operating_hours table.
// The (restaurant_id, week_day) pair carries a unique index to back the
// upsert.
type OperatingHourDTO struct {
	ID           int     `gorm:"primaryKey;autoIncrement"`
	RestaurantID int     `gorm:"uniqueIndex:idx_restaurant_week_day;not null"`
	WeekDay      string  `gorm:"uniqueIndex:idx_restaurant_week_day;size:10;not null"`
	OpenTime     *string `gorm:"size:10"`
	CloseTime    *string `gorm:"size:10"`
}

// TableName overrides GORM's default naming to use "operating_hours".
func (OperatingHourDTO) TableName() string {
	return "operating_hours"
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		CuisineType: aggregate.CuisineType(),
		PictureURL:  aggregate.PictureURL(),
		AddressID:   aggregate.AddressID(),
		PhoneNumber: aggregate.PhoneNumber(),
		ContactName: aggregate.ContactName(),
		Email:       aggregate.Email(),
		Status:      aggregate.Status().String(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	return restaurant.RestoreRestaurant(
		dto.ID,
		dto.Name, dto.CuisineType, dto.PictureURL,
		dto.AddressID,
		dto.PhoneNumber, dto.ContactName, dto.Email,
		restaurant.Status(dto.Status),
	)
}

func loginFromDomain(login *restaurant.Login) LoginDTO {
	return LoginDTO{
		Username:     login.Username(),
		PasswordHash: login.PasswordHash(),
		RestaurantID: login.RestaurantID(),
	}
}

func loginToDomain(dto LoginDTO) (*restaurant.Login, error) {
	return restaurant.NewLogin(dto.Username, dto.PasswordHash, dto.RestaurantID)
}

func categoryFromDomain(category *restaurant.MenuCategory) MenuCategoryDTO {
	return MenuCategoryDTO{
		ID:           category.ID(),
		RestaurantID: category.RestaurantID(),
		Name:         category.Name(),
	}
}

func itemFromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID(),
		CategoryID:  item.CategoryID(),
		Name:        item.Name(),
		Description: item.Description(),
		PictureURL:  item.PictureURL(),
		PriceCents:  item.Price().Cents(),
		Available:   item.Available().String(),
	}
}

func itemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		dto.ID, dto.CategoryID,
		dto.Name, dto.Description, dto.PictureURL,
		price,
		restaurant.Availability(dto.Available),
	)
}

func hourFromDomain(hour *restaurant.OperatingHour) OperatingHourDTO {
	return OperatingHourDTO{
		ID:           hour.ID(),
		RestaurantID: hour.RestaurantID(),
		WeekDay:      hour.WeekDay().String(),
		OpenTime:     hour.OpenTime(),
		CloseTime:    hour.CloseTime(),
	}
}

func hourToDomain(dto OperatingHourDTO) (*restaurant.OperatingHour, error) {
	weekDay, err := kernel.NewWeekDay(dto.WeekDay)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreOperatingHour(dto.ID, dto.RestaurantID, weekDay, dto.OpenTime, dto.CloseTime)
}
