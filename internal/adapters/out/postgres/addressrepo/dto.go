// Package addressrepo persists street addresses shared by restaurant
// registration and order checkout.
package addressrepo

import (
	"frontdash/internal/core/domain/model/address"
)

// AddressDTO maps the address entity to the addresses table.
type AddressDTO struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Street   string `gorm:"size:255;not null"`
	City     string `gorm:"size:100;not null"`
	State    string `gorm:"size:50;not null"`
	ZipCode  string `gorm:"size:20;not null"`
	Building string `gorm:"size:100"`
	Unit     string `gorm:"size:50"`
}

// TableName overrides GORM's default naming to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(aggregate *address.Address) AddressDTO {
	return AddressDTO{
		ID:       aggregate.ID(),
		Street:   aggregate.Street(),
		City:     aggregate.City(),
		State:    aggregate.State(),
		ZipCode:  aggregate.ZipCode(),
		Building: aggregate.Building(),
		Unit:     aggregate.Unit(),
	}
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	return address.RestoreAddress(dto.ID, dto.Street, dto.City, dto.State, dto.ZipCode, dto.Building, dto.Unit)
}
