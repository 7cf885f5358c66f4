package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct staff workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> OutForDelivery ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Pending orders sit in the shared queue waiting for a staff claim.
	Pending

	// Confirmed indicates a staff member has claimed the order.
	// Confirmed orders are awaiting driver assignment.
	Confirmed

	// OutForDelivery indicates a driver has been assigned and is delivering.
	OutForDelivery

	// Delivered indicates the delivery was confirmed. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values outside the lifecycle are invalid.
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

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Claim transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other current status returns a StateConflictError carrying the observed
// status, so a caller racing another staff member can distinguish "someone
// beat you to it" from "never existed".
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("order", s.String())
	}

	return Confirmed, nil
}

// Dispatch transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Confirmed -> OutForDelivery
//
// Any other current status returns a StateConflictError.
func (s Status) Dispatch() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewStateConflictError("order", s.String())
	}

	return OutForDelivery, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
//
// Any other current status returns a StateConflictError.
func (s Status) Complete() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewStateConflictError("order", s.String())
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. A terminal current status returns a
// StateConflictError.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewStateConflictError("order", s.String())
	}

	return Cancelled, nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment. A driver must be referenced exactly when the order is
// OutForDelivery or Delivered.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != OutForDelivery && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && (s == OutForDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// ValidateCanHaveDeliveredAt validates the consistency between order status
// and the recorded delivery timestamp. The timestamp must be present exactly
// when the order is Delivered.
func (s Status) ValidateCanHaveDeliveredAt(hasDeliveredAt bool) error {
	if hasDeliveredAt && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a delivery timestamp", s.String()),
		)
	}

	if !hasDeliveredAt && s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery timestamp", s.String()),
		)
	}

	return nil
}
