package queries

import (
	"context"

	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// GetOrderLocationQueryHandler resolves delivery coordinates for a
// snapshotted order through the geo fallback chain.
type GetOrderLocationQueryHandler struct {
	snapshots ports.OrderSnapshotRepository
	resolver  *services.GeoResolver
}

// NewGetOrderLocationQueryHandler creates a handler for order location
// queries.
func NewGetOrderLocationQueryHandler(
	snapshots ports.OrderSnapshotRepository,
	resolver *services.GeoResolver,
) GetOrderLocationQueryHandler {
	return GetOrderLocationQueryHandler{snapshots: snapshots, resolver: resolver}
}

// Handle executes the location query. Missing orders surface as
// errs.ErrObjectNotFound from the snapshot store.
func (h GetOrderLocationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLocationQuery,
) (GetOrderLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	o, err := h.snapshots.Get(ctx, query.Ref())
	if err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	point := h.resolver.Resolve(ctx, o)
	return GetOrderLocationQueryResponse{
		Lat:       point.Lat(),
		Lng:       point.Lng(),
		IsDefault: point.IsDefault(),
	}, nil
}
