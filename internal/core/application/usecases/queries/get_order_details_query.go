package queries

import (
	"errors"
	"time"

	"frontdash/internal/core/domain/model/order"
	"frontdash/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery composes one order with its resolved restaurant,
// address, driver, and line items. Each reference is resolved independently
// and reported as absent when the referenced row no longer exists, so a
// deleted restaurant does not break reading its historical orders.
type GetOrderDetailsQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates an order detail query.
func NewGetOrderDetailsQuery(number string) (GetOrderDetailsQuery, error) {
	if err := order.ValidateNumber(number); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// Number returns the order number to resolve.
func (q GetOrderDetailsQuery) Number() string {
	return q.number
}

// OrderRestaurantDetail is the restaurant slice of an order detail, nil
// when the restaurant has since been deleted.
type OrderRestaurantDetail struct {
	ID          int
	Name        string
	PhoneNumber string
}

// OrderAddressDetail is the delivery address slice of an order detail.
type OrderAddressDetail struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// OrderDriverDetail is the driver slice of an order detail.
type OrderDriverDetail struct {
	ID   int
	Name string
}

// OrderItemDetail is one resolved line item. MenuItemName is empty when the
// menu item no longer exists.
type OrderItemDetail struct {
	MenuItemID   int
	MenuItemName string
	Quantity     int
	Price        float64
}

// OrderDetailsResponse is the full composed order view.
type OrderDetailsResponse struct {
	Number        string
	CustomerName  string
	CustomerPhone string
	Subtotal      float64
	Tips          float64
	Total         float64
	Status        string
	OrderTime     time.Time
	DeliveryTime  *time.Time
	Restaurant    *OrderRestaurantDetail
	Address       *OrderAddressDetail
	Driver        *OrderDriverDetail
	Items         []OrderItemDetail
}
