package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderQueueQueryHandler reads the claim queue from the database.
// Uses direct SQL for read performance in the CQRS pattern; the ordering
// matches the one the claim engine locks rows in, so the view is an honest
// preview of claim sequence.
type GetOrderQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueueQueryHandler creates a handler for claim queue queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueueQueryHandler(db *gorm.DB) GetOrderQueueQueryHandler {
	return GetOrderQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve all Pending orders.
// Results are sorted by placement time, ties broken by order number.
func (h GetOrderQueueQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQueueQuery,
) ([]GetOrderQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetOrderQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			placed_at,
			estimated_delivery_at,
			address_street,
			address_city,
			total_amount,
			total_currency
		FROM orders
		WHERE status = ?
		ORDER BY placed_at, number
	`, order.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var queued GetOrderQueueQueryResponse
		var number string
		var placedAt, estimatedDeliveryAt time.Time
		var totalAmount int64
		var totalCurrency string

		err = rows.Scan(
			&number,
			&placedAt,
			&estimatedDeliveryAt,
			&queued.Street,
			&queued.City,
			&totalAmount,
			&totalCurrency,
		)
		if err != nil {
			return nil, err
		}

		orderNumber, numErr := kernel.NewOrderNumber(number)
		if numErr != nil {
			return nil, numErr
		}
		queued.Number = orderNumber
		queued.PlacedAt = placedAt
		queued.EstimatedDeliveryAt = estimatedDeliveryAt

		total, moneyErr := kernel.NewMoney(totalAmount, totalCurrency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		queued.Total = total
		queue = append(queue, queued)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
