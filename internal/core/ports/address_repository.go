package ports

import (
	"context"

	"frontdash/internal/core/domain/model/address"
)

// AddressRepository defines the persistence contract for street addresses.
type AddressRepository interface {
	// Add persists a new address and assigns its generated id.
	Add(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address by id.
	Get(ctx context.Context, id int) (*address.Address, error)
}
