// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the fulfillment system. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryEstimator: Computes delivery date estimates from the shipping
//     method and localities, and refines them once a carrier is assigned
//   - GroupAssembler: Partitions a marketplace order's lines by seller so
//     each seller's shipment is tracked independently
//   - TrackingCodeGenerator: Mints unique public tracking codes
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
