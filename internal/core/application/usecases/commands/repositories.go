// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FulfillmentRepoFactory provides access to the fulfillment repository
	// within a transaction.
	FulfillmentRepoFactory interface {
		FulfillmentRepository() ports.FulfillmentRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CarrierRepoFactory provides access to the carrier catalog within a
	// transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// FulfillmentUoW manages transactions for unit-only operations.
	FulfillmentUoW interface {
		TxManager
		FulfillmentRepoFactory
		OrderRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// UoW manages transactions across units, orders, and the carrier
	// catalog. Used for commands that read reference data while mutating
	// units.
	UoW interface {
		TxManager
		FulfillmentRepoFactory
		OrderRepoFactory
		CarrierRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
