package services

import (
	"errors"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no driver in the candidate set can take
// the order. This occurs when no drivers are provided or none of them are
// currently Available.
var ErrDriverNotFound = errors.New("driver not found")

// OrderDispatcher is a domain service that pairs a confirmed order with an
// available driver. It applies both halves of the dispatch transition on the
// in-memory aggregates: the order moves to OutForDelivery with the driver
// recorded, and the driver is marked Busy.
//
// The dispatcher only mutates aggregates; making the pairing effective against
// concurrent dispatchers is the caller's job, which persists both aggregates
// with status-guarded updates inside one transaction.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	assigned, err := dispatcher.Dispatch(confirmedOrder, availableDrivers)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // nothing to do right now, retry on the next tick
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects a driver for the order and executes the assignment workflow.
//
// Selection is first-come-first-served over the candidate slice: the first
// driver in Available status wins. Candidates in other statuses are skipped.
//
// Returns the driver assigned to the order, ErrDriverNotFound when no
// candidate is available, or a state error when the order cannot be
// dispatched from its current status.
func (d OrderDispatcher) Dispatch(o *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	selected, err := d.findAvailableDriver(drivers)
	if err != nil {
		return nil, err
	}

	if err = o.AssignDriver(selected.ID()); err != nil {
		return nil, err
	}

	if err = selected.MarkBusy(); err != nil {
		return nil, err
	}

	return selected, nil
}

// findAvailableDriver returns the first Available candidate.
func (d OrderDispatcher) findAvailableDriver(drivers []*driver.Driver) (*driver.Driver, error) {
	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if candidate.Status() == driver.Available {
			return candidate, nil
		}
	}

	return nil, ErrDriverNotFound
}
