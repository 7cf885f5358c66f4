package queries

import (
	"context"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves all driver information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query to retrieve all drivers.
// Returns a slice of driver read models sorted by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status
		FROM drivers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var roster GetAllDriversQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&roster.Name,
			&status,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		roster.ID = driverID
		roster.Status = driver.Status(status)
		drivers = append(drivers, roster)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
