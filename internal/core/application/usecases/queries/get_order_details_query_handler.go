package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"frontdash/internal/pkg/errs"
)

// GetOrderDetailsQueryHandler composes an order view from the orders table
// and its references. The order row itself must exist; every referenced row
// is optional.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order details.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle resolves the order, tolerating dangling references.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	var resp OrderDetailsResponse
	var restaurantID int
	var addressID, driverID sql.NullInt64
	var deliveryTime sql.NullTime
	var subtotalCents, tipsCents, totalCents int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			restaurant_id,
			customer_name,
			customer_phone,
			address_id,
			driver_id,
			subtotal_cents,
			tips_cents,
			total_cents,
			status,
			order_time,
			delivery_time
		FROM orders
		WHERE number = ?
	`, query.Number()).Row()

	err := row.Scan(
		&resp.Number,
		&restaurantID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&addressID,
		&driverID,
		&subtotalCents,
		&tipsCents,
		&totalCents,
		&resp.Status,
		&resp.OrderTime,
		&deliveryTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailsResponse{}, errs.NewObjectNotFoundErrorWithCause("orderNumber", query.Number(), err)
		}
		return OrderDetailsResponse{}, err
	}

	resp.Subtotal = centsToFloat(subtotalCents)
	resp.Tips = centsToFloat(tipsCents)
	resp.Total = centsToFloat(totalCents)
	if deliveryTime.Valid {
		t := deliveryTime.Time
		resp.DeliveryTime = &t
	}

	if resp.Restaurant, err = h.resolveRestaurant(ctx, restaurantID); err != nil {
		return OrderDetailsResponse{}, err
	}
	if addressID.Valid {
		if resp.Address, err = h.resolveAddress(ctx, int(addressID.Int64)); err != nil {
			return OrderDetailsResponse{}, err
		}
	}
	if driverID.Valid {
		if resp.Driver, err = h.resolveDriver(ctx, int(driverID.Int64)); err != nil {
			return OrderDetailsResponse{}, err
		}
	}
	if resp.Items, err = h.resolveItems(ctx, resp.Number); err != nil {
		return OrderDetailsResponse{}, err
	}

	return resp, nil
}

func (h GetOrderDetailsQueryHandler) resolveRestaurant(ctx context.Context, id int) (*OrderRestaurantDetail, error) {
	var detail OrderRestaurantDetail

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone_number
		FROM restaurants
		WHERE id = ?
	`, id).Row()

	if err := row.Scan(&detail.ID, &detail.Name, &detail.PhoneNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (h GetOrderDetailsQueryHandler) resolveAddress(ctx context.Context, id int) (*OrderAddressDetail, error) {
	var detail OrderAddressDetail

	row := h.db.WithContext(ctx).Raw(`
		SELECT street, city, state, zip_code
		FROM addresses
		WHERE id = ?
	`, id).Row()

	if err := row.Scan(&detail.Street, &detail.City, &detail.State, &detail.ZipCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (h GetOrderDetailsQueryHandler) resolveDriver(ctx context.Context, id int) (*OrderDriverDetail, error) {
	var detail OrderDriverDetail

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM drivers
		WHERE id = ?
	`, id).Row()

	if err := row.Scan(&detail.ID, &detail.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (h GetOrderDetailsQueryHandler) resolveItems(ctx context.Context, number string) ([]OrderItemDetail, error) {
	items := make([]OrderItemDetail, 0)

	// LEFT JOIN keeps lines whose menu item has since been deleted
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id,
			COALESCE(mi.name, ''),
			oi.quantity,
			COALESCE(mi.price_cents, 0)
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_number = ?
		ORDER BY oi.menu_item_id
	`, number).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail OrderItemDetail
		var priceCents int64

		if err = rows.Scan(
			&detail.MenuItemID,
			&detail.MenuItemName,
			&detail.Quantity,
			&priceCents,
		); err != nil {
			return nil, err
		}
		detail.Price = centsToFloat(priceCents)
		items = append(items, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
