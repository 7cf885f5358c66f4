package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads in-flight deliveries from the
// database, joining each OutForDelivery order with its driver.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for delivery board queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all OutForDelivery orders.
// Results are sorted by placement time so the longest-running deliveries
// surface first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.driver_id,
			d.name,
			o.placed_at,
			o.estimated_delivery_at,
			o.address_street
		FROM orders o
		JOIN drivers d ON d.id = o.driver_id
		WHERE o.status = ?
		ORDER BY o.placed_at, o.number
	`, order.OutForDelivery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var delivery GetActiveDeliveriesQueryResponse
		var number string
		var driverID uuid.UUID
		var placedAt, estimatedDeliveryAt time.Time

		err = rows.Scan(
			&number,
			&driverID,
			&delivery.DriverName,
			&placedAt,
			&estimatedDeliveryAt,
			&delivery.Street,
		)
		if err != nil {
			return nil, err
		}

		orderNumber, numErr := kernel.NewOrderNumber(number)
		if numErr != nil {
			return nil, numErr
		}
		delivery.Number = orderNumber

		id, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return nil, idErr
		}
		delivery.DriverID = id
		delivery.PlacedAt = placedAt
		delivery.EstimatedDeliveryAt = estimatedDeliveryAt
		deliveries = append(deliveries, delivery)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
