// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderDispatcher: A domain service pairing a confirmed order with an
//     available driver and applying both sides of the dispatch transition
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
