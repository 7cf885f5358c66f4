// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between the domain model and the relational schema.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders are keyed by their externally assigned number. The composite index
// on (status, placed_at, number) serves the claim queue scan.
type OrderDTO struct {
	Number              string     `gorm:"primaryKey;size:32"`
	RestaurantID        uuid.UUID  `gorm:"type:uuid"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	Status              int        `gorm:"index:idx_orders_queue,priority:1"`
	PlacedAt            time.Time  `gorm:"index:idx_orders_queue,priority:2"`
	EstimatedDeliveryAt time.Time
	DeliveredAt         *time.Time
	Address             AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Total               MoneyDTO   `gorm:"embedded;embeddedPrefix:total_"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street string
	City   string
	Phone  string
}

// MoneyDTO represents the embedded order total within the order table.
// Amount is stored in minor currency units.
type MoneyDTO struct {
	Amount   int64
	Currency string `gorm:"size:3"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		Number:              aggregate.Number().String(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		DriverID:            driverID,
		Status:              int(aggregate.Status()),
		PlacedAt:            aggregate.PlacedAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		Address: AddressDTO{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			Phone:  aggregate.Address().Phone(),
		},
		Total: MoneyDTO{
			Amount:   aggregate.Total().Amount(),
			Currency: aggregate.Total().Currency(),
		},
	}
}

// toDomain converts a database DTO back to an order domain aggregate using
// RestoreOrder, which re-verifies cross-field consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		id, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &id
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Phone)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total.Amount, dto.Total.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		number,
		restaurantID,
		dto.PlacedAt,
		dto.EstimatedDeliveryAt,
		address,
		total,
		order.Status(dto.Status),
		driverID,
		dto.DeliveredAt,
	)
}
