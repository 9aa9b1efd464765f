package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetRestaurantsByStatusQueryHandler reads restaurant listings straight
// from the database.
type GetRestaurantsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsByStatusQueryHandler creates a handler for restaurant
// listings.
func NewGetRestaurantsByStatusQueryHandler(db *gorm.DB) GetRestaurantsByStatusQueryHandler {
	return GetRestaurantsByStatusQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by name for stable
// output.
func (h GetRestaurantsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsByStatusQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]RestaurantResponse, 0)

	tx := h.db.WithContext(ctx)

	const selectRestaurants = `
		SELECT
			id,
			name,
			cuisine_type,
			picture_url,
			phone_number,
			contact_name,
			email,
			status
		FROM restaurants
	`

	// An empty status lists every restaurant regardless of lifecycle state.
	var rows *sql.Rows
	var err error
	if status := query.Status().String(); status != "" {
		rows, err = tx.Raw(selectRestaurants+` WHERE status = ? ORDER BY name`, status).Rows()
	} else {
		rows, err = tx.Raw(selectRestaurants + ` ORDER BY name`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp RestaurantResponse
		if err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.CuisineType,
			&resp.PictureURL,
			&resp.PhoneNumber,
			&resp.ContactName,
			&resp.Email,
			&resp.Status,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
