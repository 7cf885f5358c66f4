// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence. It implements the repository pattern for the driver
// aggregate on the marketplace roster.
package driverrepo

import (
	"time"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// HiredAt orders GetAllAvailable deterministically.
type DriverDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Status  int       `gorm:"index"`
	HiredAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO back to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, driver.Status(dto.Status))
}
