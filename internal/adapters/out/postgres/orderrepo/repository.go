package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Number().String(), aggregate)
	return nil
}

// Update saves an existing order without a status guard.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Select("*").Omit("number").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.Number)
	}

	r.tracker.TrackAggregate(aggregate.Number().String(), aggregate)
	return nil
}

// UpdateFromStatus persists a transitioned order only if the stored row is
// still in expected status. Zero rows affected means a concurrent actor got
// there first; the resulting StateConflictError makes the caller roll back
// the whole transaction, so no partial transition can ever be observed.
func (r *GormOrderRepository) UpdateFromStatus(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ? AND status = ?", dto.Number, int(expected)).
		Select("*").Omit("number").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictErrorWithCause("order", aggregate.Status().String(),
			errors.New("order "+dto.Number+" is no longer "+expected.String()))
	}

	r.tracker.TrackAggregate(aggregate.Number().String(), aggregate)
	return nil
}

// Get retrieves an order by its number.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstInPendingStatus retrieves the head of the claim queue: the Pending
// order with the earliest placement time, ties broken by number. The row is
// locked with FOR UPDATE SKIP LOCKED, so concurrent claimers each lock a
// different head instead of queueing up on the same one.
func (r *GormOrderRepository) GetFirstInPendingStatus(ctx context.Context) (*order.Order, error) {
	return r.getFirstInStatus(ctx, order.Pending)
}

// GetFirstInConfirmedStatus retrieves the oldest claimed order still
// awaiting driver assignment, locked the same way as the claim queue head.
func (r *GormOrderRepository) GetFirstInConfirmedStatus(ctx context.Context) (*order.Order, error) {
	return r.getFirstInStatus(ctx, order.Confirmed)
}

func (r *GormOrderRepository) getFirstInStatus(ctx context.Context, status order.Status) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", int(status)).
		Order("placed_at, number").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "first in "+status.String()+" status")
		}
		return nil, err
	}

	return toDomain(dto)
}
