// Package orderrepo persists order aggregates and their line items, and
// allocates order numbers from a database sequence so concurrent checkouts
// never collide.
package orderrepo

import (
	"time"

	"frontdash/internal/core/domain/model/kernel"
	"frontdash/internal/core/domain/model/order"
)

// OrderDTO maps the order aggregate to the orders table. The order number
// is the primary key; amounts are stored as integer cents.
type OrderDTO struct {
	Number        string `gorm:"primaryKey;size:20"`
	RestaurantID  int    `gorm:"not null;index"`
	CustomerName  string `gorm:"size:100;not null"`
	CustomerPhone string `gorm:"size:30"`
	AddressID     *int
	DriverID      *int `gorm:"index"`
	SubtotalCents int64
	TipsCents     int64
	TotalCents    int64
	Status        string    `gorm:"size:20;not null;index"`
	OrderTime     time.Time `gorm:"not null"`
	DeliveryTime  *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderNumber;references:Number"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO maps one line item. The (order number, menu item) pair is
// the composite primary key.
type OrderItemDTO struct {
	OrderNumber string `gorm:"primaryKey;size:20"`
	MenuItemID  int    `gorm:"primaryKey"`
	Quantity    int    `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderNumber: aggregate.Number(),
			MenuItemID:  item.MenuItemID(),
			Quantity:    item.Quantity(),
		})
	}

	return OrderDTO{
		Number:        aggregate.Number(),
		RestaurantID:  aggregate.RestaurantID(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		AddressID:     aggregate.AddressID(),
		DriverID:      aggregate.DriverID(),
		SubtotalCents: aggregate.Subtotal().Cents(),
		TipsCents:     aggregate.Tips().Cents(),
		TotalCents:    aggregate.Total().Cents(),
		Status:        aggregate.Status().String(),
		OrderTime:     aggregate.OrderTime(),
		DeliveryTime:  aggregate.DeliveryTime(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(itemDTO.MenuItemID, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoneyFromCents(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}
	tips, err := kernel.NewMoneyFromCents(dto.TipsCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.Number,
		dto.RestaurantID,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.AddressID,
		dto.DriverID,
		subtotal,
		tips,
		order.Status(dto.Status),
		dto.OrderTime,
		dto.DeliveryTime,
		items,
	)
}
