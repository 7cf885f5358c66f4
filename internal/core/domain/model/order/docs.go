// Package order contains the Order aggregate and its lifecycle state machine.
//
// Orders enter the system in Pending status and advance through the lifecycle
// Pending -> Confirmed -> OutForDelivery -> Delivered, with Cancelled reachable
// from any non-terminal status. The Status type defines transition legality;
// the aggregate adds the entity side effects (driver assignment, delivery
// timestamp) and enforces cross-field invariants:
//
//   - a driver is referenced if and only if the order is OutForDelivery or Delivered
//   - a delivery timestamp is recorded if and only if the order is Delivered
//
// The package is persistence-agnostic. Making a transition effective against
// concurrent actors is the job of the application layer, which persists
// aggregates through conditional status-guarded updates.
package order
