package driver

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to hire a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
	// ErrDriverIsBusy is returned when attempting to remove a driver with a delivery in flight.
	ErrDriverIsBusy = errs.NewStateConflictError("driver", Busy.String())
)

// Driver represents a delivery driver on the marketplace roster.
// It is an aggregate root managing driver identity and availability.
//
// Business rules:
//   - Drivers are hired Available with a valid UUID and non-empty name
//   - MarkBusy is legal only from Available; MarkAvailable only from Busy
//   - A Busy driver cannot leave shift or be removed from the roster
//
// Availability is the driver's half of the dispatch invariant: the dispatch
// engine marks a driver Busy in the same transaction that moves the order to
// OutForDelivery, and the completion engine releases the driver in the same
// transaction that records the delivery.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the human-readable name of the driver
	name string
	// status is the current roster state
	status Status
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver hires a new driver. The driver starts Available.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//
// Returns the created driver, or a validation error if any parameter is invalid.
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage with
// its persisted status.
func RestoreDriver(id kernel.UUID, name string, status Status) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = status
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || d.guard.Validate(ErrDriverIsNotConstructed) != nil {
		return ErrDriverIsNotConstructed
	}

	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the current roster state.
func (d *Driver) Status() Status {
	return d.status
}

// MarkBusy marks the driver as delivering.
// Returns a StateConflictError unless the driver is currently Available.
func (d *Driver) MarkBusy() error {
	newStatus, err := d.status.MarkBusy()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// MarkAvailable releases the driver after a completed or cancelled delivery.
// Returns a StateConflictError unless the driver is currently Busy.
func (d *Driver) MarkAvailable() error {
	newStatus, err := d.status.MarkAvailable()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// GoOffline takes the driver off shift.
// Returns a StateConflictError unless the driver is currently Available.
func (d *Driver) GoOffline() error {
	newStatus, err := d.status.GoOffline()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// GoOnline brings an Offline driver back on shift.
func (d *Driver) GoOnline() error {
	newStatus, err := d.status.GoOnline()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// EnsureRemovable verifies the driver can be removed from the roster.
// Removing a Busy driver would orphan an in-flight delivery, so it returns
// ErrDriverIsBusy.
func (d *Driver) EnsureRemovable() error {
	if d.status == Busy {
		return ErrDriverIsBusy
	}
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
