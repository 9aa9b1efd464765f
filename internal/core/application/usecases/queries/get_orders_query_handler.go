package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

const orderColumns = `
	number,
	restaurant_id,
	customer_name,
	customer_phone,
	driver_id,
	subtotal_cents,
	tips_cents,
	total_cents,
	status,
	order_time,
	delivery_time
`

// GetOrdersByRestaurantQueryHandler reads a restaurant's order history.
type GetOrdersByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRestaurantQueryHandler creates a handler for per-restaurant
// order listings.
func NewGetOrdersByRestaurantQueryHandler(db *gorm.DB) GetOrdersByRestaurantQueryHandler {
	return GetOrdersByRestaurantQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
func (h GetOrdersByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRestaurantQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY order_time DESC
	`, query.RestaurantID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// GetOrdersByStatusQueryHandler reads orders in one status, optionally
// narrowed by assignment state.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the listing, oldest orders first so dispatchers work the
// queue in placement order.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = ?
	`
	switch query.DriverFilter() {
	case WithDriver:
		sqlQuery += ` AND driver_id IS NOT NULL`
	case WithoutDriver:
		sqlQuery += ` AND driver_id IS NULL`
	case AnyDriver:
	}
	sqlQuery += ` ORDER BY order_time`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var resp OrderResponse
		var driverID sql.NullInt64
		var deliveryTime sql.NullTime
		var subtotalCents, tipsCents, totalCents int64

		if err := rows.Scan(
			&resp.Number,
			&resp.RestaurantID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&driverID,
			&subtotalCents,
			&tipsCents,
			&totalCents,
			&resp.Status,
			&resp.OrderTime,
			&deliveryTime,
		); err != nil {
			return nil, err
		}

		if driverID.Valid {
			id := int(driverID.Int64)
			resp.DriverID = &id
		}
		if deliveryTime.Valid {
			t := deliveryTime.Time
			resp.DeliveryTime = &t
		}
		resp.Subtotal = centsToFloat(subtotalCents)
		resp.Tips = centsToFloat(tipsCents)
		resp.Total = centsToFloat(totalCents)

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func centsToFloat(cents int64) float64 {
	return float64(cents) / 100
}
