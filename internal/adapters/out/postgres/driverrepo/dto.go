// Package driverrepo persists the delivery driver pool. The availability
// flip on assignment is a conditional update so two dispatchers cannot take
// the same driver.
package driverrepo

import (
	"frontdash/internal/core/domain/model/driver"
)

// DriverDTO maps the driver aggregate to the drivers table.
type DriverDTO struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:100;not null"`
	Availability string `gorm:"size:20;not null;index"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		Availability: aggregate.Availability().String(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(dto.ID, dto.Name, driver.Availability(dto.Availability))
}
