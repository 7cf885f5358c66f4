package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Transition effectiveness under concurrency rests on UpdateFromStatus: a
// conditional write that only applies when the stored row still carries the
// status the caller observed. Plain read-then-write sequences are what cause
// the shared-queue races, so the engines never use Update for transitions.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate without a status
	// guard. Reserved for non-transition attribute changes.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateFromStatus persists a transitioned aggregate only if the stored
	// row is still in expected status. When a concurrent actor already moved
	// the order, no row matches and a StateConflictError is returned; the
	// transaction must then roll back so no partial effect survives.
	UpdateFromStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its order number.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetFirstInPendingStatus retrieves the head of the shared claim queue:
	// the Pending order with the earliest placement timestamp, ties broken by
	// order number ascending. The row is locked for the transaction and rows
	// locked by concurrent claimers are skipped, so two simultaneous callers
	// never observe the same head.
	GetFirstInPendingStatus(ctx context.Context) (*order.Order, error)

	// GetFirstInConfirmedStatus retrieves the oldest claimed order still
	// awaiting driver assignment. Used by the auto-dispatch workflow.
	GetFirstInConfirmedStatus(ctx context.Context) (*order.Order, error)
}
