// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"backoffice/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SnapshotRepoFactory provides access to the order snapshot repository
	// within a transaction.
	SnapshotRepoFactory interface {
		OrderSnapshots() ports.OrderSnapshotRepository
	}

	// OrderUoW manages transactions over the local order snapshot store.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderSnapshots()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		SnapshotRepoFactory
	}

	// OrderUoWFactory creates new unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
