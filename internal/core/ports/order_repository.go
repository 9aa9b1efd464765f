package ports

import (
	"context"

	"frontdash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Line items never change
	// after creation and are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its order number, line items included.
	Get(ctx context.Context, number string) (*order.Order, error)

	// NextNumber allocates the next order number from the shared counter.
	// Allocation is atomic across concurrent transactions; numbers are
	// never reused even when the surrounding transaction rolls back.
	NextNumber(ctx context.Context) (string, error)
}
