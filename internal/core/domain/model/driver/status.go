package driver

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the roster state of a driver.
//
// State transitions:
//
//	Available ──> Busy ──> Available
//	    │
//	    └──> Offline ──> Available
//
// Only the dispatch engine moves a driver to Busy and only the delivery
// completion engine (or an order cancellation releasing the driver) moves a
// Busy driver back to Available. Offline drivers are ignored by dispatch.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Available means the driver can be assigned a delivery.
	Available

	// Busy means exactly one non-terminal order references this driver.
	Busy

	// Offline means the driver is off shift and invisible to dispatch.
	Offline
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Available:     "Available",
		Busy:          "Busy",
		Offline:       "Offline",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Busy:      "Busy",
		Offline:   "Offline",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkBusy transitions the status to Busy.
//
// Valid transitions:
//   - Available -> Busy
//
// Any other current status returns a StateConflictError, letting a dispatch
// attempt racing another staff member report the driver as already taken.
func (s Status) MarkBusy() (Status, error) {
	if s != Available {
		return 0, errs.NewStateConflictError("driver", s.String())
	}

	return Busy, nil
}

// MarkAvailable transitions the status back to Available.
//
// Valid transitions:
//   - Busy -> Available
//
// Any other current status returns a StateConflictError.
func (s Status) MarkAvailable() (Status, error) {
	if s != Busy {
		return 0, errs.NewStateConflictError("driver", s.String())
	}

	return Available, nil
}

// GoOffline transitions the status to Offline.
//
// Valid transitions:
//   - Available -> Offline
//
// A Busy driver cannot go off shift with a delivery in flight.
func (s Status) GoOffline() (Status, error) {
	if s != Available {
		return 0, errs.NewStateConflictError("driver", s.String())
	}

	return Offline, nil
}

// GoOnline transitions the status from Offline back to Available.
func (s Status) GoOnline() (Status, error) {
	if s != Offline {
		return 0, errs.NewStateConflictError("driver", s.String())
	}

	return Available, nil
}
