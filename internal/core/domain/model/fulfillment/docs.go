// Package fulfillment provides the domain model for order fulfillment
// tracking: the lifecycle of one order line from placement to delivery.
//
// The package includes:
//   - Unit: The aggregate root for a tracked shipment, mutated only through
//     its transition methods
//   - Status: A state machine that enforces the legal status edge set
//   - HistoryEntry: One immutable record in the unit's append-only ledger
//   - TrackingCode: The public identifier used for unauthenticated lookups
//
// Key business rules:
//   - Every unit starts in pending with one seeded history entry
//   - Status changes follow the directed edge set; delivered, failed, and
//     returned are terminal
//   - Every accepted transition appends exactly one history entry, and the
//     trailing entry's status always equals the current status
//   - The tracking code is immutable once assigned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package fulfillment
