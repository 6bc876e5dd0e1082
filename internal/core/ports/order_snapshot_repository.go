package ports

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// OrderSnapshotRepository persists the locally cached, normalized view of
// upstream orders. The snapshot backs the merged order list, the top-selling
// ranking, and lets the transition path avoid refetching an order it just
// mutated.
type OrderSnapshotRepository interface {
	// UpsertBatch writes a batch of normalized orders, replacing existing
	// snapshots with the same (id, source) identity.
	UpsertBatch(ctx context.Context, orders []*order.Order) error

	// Update persists status/driver changes of an already-snapshotted order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves one order snapshot by its composite identity. Missing
	// snapshots surface as errs.ErrObjectNotFound.
	Get(ctx context.Context, ref kernel.OrderRef) (*order.Order, error)

	// GetAll retrieves every snapshotted order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
