package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a marketplace delivery order. It is the aggregate root that
// manages the order lifecycle from placement through staff claim and driver
// assignment to delivery confirmation.
//
// Order maintains these invariants:
//   - Must have a valid order number, restaurant reference, address, and total
//   - Status transitions follow the state machine defined by Status
//   - A driver is referenced if and only if status is OutForDelivery or Delivered
//   - A delivery timestamp is recorded if and only if status is Delivered
//   - The delivery timestamp never precedes the placement timestamp
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. Orders are never deleted, only
// transitioned; Cancelled and Delivered are terminal.
type Order struct {
	// number is the opaque unique identity of the order
	number kernel.OrderNumber

	// restaurantID references the restaurant preparing the order
	restaurantID kernel.UUID

	// placedAt is the placement timestamp assigned by order intake
	placedAt time.Time

	// estimatedDeliveryAt is the promised delivery time shown to the customer
	estimatedDeliveryAt time.Time

	// address is the delivery destination and contact
	address kernel.Address

	// total is the order's monetary total
	total kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// driverID is the assigned driver (nil until dispatched)
	driverID *kernel.UUID

	// deliveredAt is the confirmed delivery timestamp (nil until delivered)
	deliveredAt *time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status. This is the entry point used
// by order intake; all attribute validation happens here so an Order can never
// exist in an invalid shape.
//
// Parameters:
//   - number: Unique opaque order number
//   - restaurantID: Restaurant preparing the order
//   - placedAt: Placement timestamp (must be non-zero)
//   - estimatedDeliveryAt: Promised delivery time (must not precede placedAt)
//   - address: Delivery destination and contact
//   - total: Monetary total
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	number kernel.OrderNumber,
	restaurantID kernel.UUID,
	placedAt time.Time,
	estimatedDeliveryAt time.Time,
	address kernel.Address,
	total kernel.Money,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setRestaurantID(restaurantID),
		o.setPlacedAt(placedAt),
		o.setEstimatedDeliveryAt(estimatedDeliveryAt),
		o.setAddress(address),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, the status, driver reference, and delivery timestamp are
// restored as persisted. Cross-field consistency between status, driver, and
// delivery timestamp is verified so a corrupted row cannot materialize as a
// live aggregate.
func RestoreOrder(
	number kernel.OrderNumber,
	restaurantID kernel.UUID,
	placedAt time.Time,
	estimatedDeliveryAt time.Time,
	address kernel.Address,
	total kernel.Money,
	status Status,
	driverID *kernel.UUID,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setRestaurantID(restaurantID),
		o.setPlacedAt(placedAt),
		o.setEstimatedDeliveryAt(estimatedDeliveryAt),
		o.setAddress(address),
		o.setTotal(total),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
		status.ValidateCanHaveDeliveredAt(deliveredAt != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.driverID = driverID
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from external input to prevent
// bypassing validation by direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// Number returns the order's unique number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// RestaurantID returns the restaurant reference.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// PlacedAt returns the placement timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// EstimatedDeliveryAt returns the promised delivery time.
func (o *Order) EstimatedDeliveryAt() time.Time {
	return o.estimatedDeliveryAt
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID, or nil if no driver is assigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DeliveredAt returns the confirmed delivery timestamp, or nil if not delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Claim moves the order from Pending to Confirmed on behalf of a staff member.
// Ownership is implicit in the status; the core keeps no per-staff order list.
//
// Returns a StateConflictError if the order is not currently Pending, either
// because a concurrent claimer already owns it or the order has moved further
// along.
// Never touches driver state.
func (o *Order) Claim() error {
	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver moves the order from Confirmed to OutForDelivery and records
// the driver reference. The caller is responsible for marking the driver busy
// in the same transaction; the aggregate only guards its own side of the
// invariant.
//
// Returns a StateConflictError if the order is not currently Confirmed, or a
// validation error if the driver ID is invalid.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Complete moves the order from OutForDelivery to Delivered and records the
// confirmed delivery timestamp.
//
// The order must have a driver assigned. deliveredAt must not precede the
// placement timestamp; a violation returns a
// ValueIsInvalidError with no state change.
func (o *Order) Complete(deliveredAt time.Time) error {
	if deliveredAt.IsZero() {
		return errs.NewValueIsRequiredError("deliveredAt")
	}
	if deliveredAt.Before(o.placedAt) {
		return errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("%s precedes placement time %s",
				deliveredAt.Format(time.RFC3339), o.placedAt.Format(time.RFC3339)))
	}
	if o.driverID == nil {
		return errs.NewStateConflictErrorWithCause("order", o.status.String(),
			errors.New("no driver assigned"))
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &deliveredAt
	return nil
}

// Cancel moves the order to Cancelled from any non-terminal status.
// A driver reference is cleared so the driver invariant (busy if and only if
// referenced by a non-terminal order) keeps holding; the caller must release
// the driver in the same transaction.
//
// Returns a StateConflictError if the order is already terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setEstimatedDeliveryAt(estimatedDeliveryAt time.Time) error {
	if estimatedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}
	if estimatedDeliveryAt.Before(o.placedAt) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDeliveryAt",
			errors.New("precedes placement time"))
	}
	o.estimatedDeliveryAt = estimatedDeliveryAt
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}
