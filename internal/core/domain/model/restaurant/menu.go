package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/pkg/errs"
	"frontdash/internal/pkg/guard"
)

// ErrMenuCategoryIsNotConstructed is returned when a MenuCategory instance
// was not created through its constructors.
var ErrMenuCategoryIsNotConstructed = errors.New("MenuCategory must be created via NewMenuCategory constructor")

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through its constructors.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// Availability marks whether a menu item can currently be ordered.
type Availability string

const (
	ItemAvailable   Availability = "AVAILABLE"
	ItemUnavailable Availability = "UNAVAILABLE"
)

// Validate checks the availability value.
func (a Availability) Validate() error {
	if a != ItemAvailable && a != ItemUnavailable {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%q is not an availability status", string(a)))
	}
	return nil
}

func (a Availability) String() string { return string(a) }

// MenuCategory groups menu items under a restaurant. Categories are created
// during registration (derived from the submitted items) or later by menu
// editing, and removed transitively when the restaurant is deleted.
type MenuCategory struct {
	id           int
	restaurantID int
	name         string

	guard guard.ConstructorGuard
}

// NewMenuCategory creates a category for a restaurant.
func NewMenuCategory(restaurantID int, name string) (*MenuCategory, error) {
	if restaurantID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurantId",
			fmt.Errorf("%d is not a positive id", restaurantID))
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("categoryName")
	}

	return &MenuCategory{
		restaurantID: restaurantID,
		name:         name,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreMenuCategory reconstructs a category from persistence.
func RestoreMenuCategory(id, restaurantID int, name string) (*MenuCategory, error) {
	c, err := NewMenuCategory(restaurantID, name)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the instance came from a constructor.
func (c *MenuCategory) Validate() error {
	if c == nil {
		return ErrMenuCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrMenuCategoryIsNotConstructed)
}

// AssignID records the storage-generated key on a freshly inserted category.
func (c *MenuCategory) AssignID(id int) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("categoryId",
			fmt.Errorf("id already assigned: %d", c.id))
	}
	c.id = id
	return nil
}

func (c *MenuCategory) ID() int           { return c.id }
func (c *MenuCategory) RestaurantID() int { return c.restaurantID }
func (c *MenuCategory) Name() string      { return c.name }

// MenuItem belongs to exactly one category. Price is a Money value; the
// zero amount is permitted for promotional items.
type MenuItem struct {
	id          int
	categoryID  int
	name        string
	description string
	pictureURL  string
	price       kernel.Money
	available   Availability

	guard guard.ConstructorGuard
}

// NewMenuItem creates an item in AVAILABLE state.
func NewMenuItem(categoryID int, name, description string, price kernel.Money) (*MenuItem, error) {
	if categoryID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("categoryId",
			fmt.Errorf("%d is not a positive id", categoryID))
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("itemName")
	}

	return &MenuItem{
		categoryID:  categoryID,
		name:        name,
		description: description,
		price:       price,
		available:   ItemAvailable,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreMenuItem reconstructs an item from persistence.
func RestoreMenuItem(
	id, categoryID int,
	name, description, pictureURL string,
	price kernel.Money,
	available Availability,
) (*MenuItem, error) {
	if err := available.Validate(); err != nil {
		return nil, err
	}
	item, err := NewMenuItem(categoryID, name, description, price)
	if err != nil {
		return nil, err
	}
	item.id = id
	item.pictureURL = pictureURL
	item.available = available
	return item, nil
}

// Validate ensures the instance came from a constructor.
func (i *MenuItem) Validate() error {
	if i == nil {
		return ErrMenuItemIsNotConstructed
	}
	return i.guard.Validate(ErrMenuItemIsNotConstructed)
}

// AssignID records the storage-generated key on a freshly inserted item.
func (i *MenuItem) AssignID(id int) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemId",
			fmt.Errorf("id already assigned: %d", i.id))
	}
	i.id = id
	return nil
}

func (i *MenuItem) ID() int                 { return i.id }
func (i *MenuItem) CategoryID() int         { return i.categoryID }
func (i *MenuItem) Name() string            { return i.name }
func (i *MenuItem) Description() string     { return i.description }
func (i *MenuItem) PictureURL() string      { return i.pictureURL }
func (i *MenuItem) Price() kernel.Money     { return i.price }
func (i *MenuItem) Available() Availability { return i.available }

// Rename changes the item's display name.
func (i *MenuItem) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("itemName")
	}
	i.name = name
	return nil
}

// SetDescription replaces the item's description.
func (i *MenuItem) SetDescription(description string) { i.description = description }

// SetPrice replaces the item's price.
func (i *MenuItem) SetPrice(price kernel.Money) { i.price = price }

// MarkUnavailable takes the item off the menu without deleting it.
func (i *MenuItem) MarkUnavailable() { i.available = ItemUnavailable }

// MarkAvailable puts the item back on the menu.
func (i *MenuItem) MarkAvailable() { i.available = ItemAvailable }
