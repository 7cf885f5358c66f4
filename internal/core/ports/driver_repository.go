// Package ports defines repository and transaction interfaces for the marketplace core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
//
// Driver status changes share the conditional-write discipline of
// OrderRepository: the dispatch and completion engines persist through
// UpdateFromStatus so a concurrently taken driver surfaces as a
// StateConflictError instead of a silent double-assignment.
type DriverRepository interface {
	// Add persists a newly hired driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// UpdateFromStatus persists a transitioned driver only if the stored row
	// is still in expected status. Returns a StateConflictError when a
	// concurrent actor already moved the driver.
	UpdateFromStatus(ctx context.Context, aggregate *driver.Driver, expected driver.Status) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such driver exists.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all drivers currently in Available status,
	// ordered by hire sequence for deterministic dispatch.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// Remove deletes a driver from the roster. The delete is conditional on
	// the driver not being Busy: removing a driver with a delivery in flight
	// returns a StateConflictError, an unknown id an ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error
}
