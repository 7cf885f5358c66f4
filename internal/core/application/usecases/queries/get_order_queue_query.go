package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueueQueryIsNotConstructed = errors.New(
	"GetOrderQueueQuery must be created via NewGetOrderQueueQuery constructor",
)

// GetOrderQueueQuery retrieves the shared claim queue: all Pending orders in
// the exact sequence claimNext would hand them out.
//
// Example:
//
//	query := NewGetOrderQueueQuery()
//	handler := NewGetOrderQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order queue: %w", err)
//	}
//
//	fmt.Printf("%d orders awaiting claim\n", len(queue))
type GetOrderQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderQueueQuery creates a query to retrieve the claim queue.
func NewGetOrderQueueQuery() GetOrderQueueQuery {
	return GetOrderQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueueQueryIsNotConstructed)
}

// GetOrderQueueQueryResponse represents one queued order awaiting claim.
type GetOrderQueueQueryResponse struct {
	Number              kernel.OrderNumber
	PlacedAt            time.Time
	EstimatedDeliveryAt time.Time
	Street              string
	City                string
	Total               kernel.Money
}
