// Package driver provides the Driver aggregate for the marketplace delivery roster.
//
// The package includes:
//   - Driver: The aggregate root managing driver identity and availability
//   - Status: The roster state enum (Available, Busy, Offline)
//
// Key business rules:
//   - Drivers are hired Available and must have a valid identifier and name
//   - A driver is Busy exactly while one non-terminal order references them
//   - Availability changes only through dispatch (Busy) and delivery
//     confirmation or order cancellation (Available)
//   - A Busy driver cannot be removed from the roster
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver
