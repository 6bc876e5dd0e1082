package queries

import (
	"context"

	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// GetTopSellingQueryHandler ranks products over the local order snapshot.
type GetTopSellingQueryHandler struct {
	snapshots ports.OrderSnapshotRepository
	ranker    services.Ranker
}

// NewGetTopSellingQueryHandler creates a handler for top-selling product
// queries.
func NewGetTopSellingQueryHandler(
	snapshots ports.OrderSnapshotRepository,
) GetTopSellingQueryHandler {
	return GetTopSellingQueryHandler{
		snapshots: snapshots,
		ranker:    services.NewRanker(),
	}
}

// Handle executes the ranking query. When no order carries line items a
// single "No data" row comes back, so the response is never empty.
func (h GetTopSellingQueryHandler) Handle(
	ctx context.Context,
	query GetTopSellingQuery,
) ([]GetTopSellingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.snapshots.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ranks := h.ranker.TopSelling(orders, query.Limit())

	responses := make([]GetTopSellingQueryResponse, 0, len(ranks))
	for _, rank := range ranks {
		responses = append(responses, GetTopSellingQueryResponse{
			ProductID:     rank.ProductID,
			Name:          rank.Name,
			TotalQuantity: rank.TotalQuantity,
			OrdersCount:   rank.OrdersCount,
			Revenue:       rank.Revenue,
			Percentage:    rank.Percentage,
		})
	}

	return responses, nil
}
