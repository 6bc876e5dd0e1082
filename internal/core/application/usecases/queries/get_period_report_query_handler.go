package queries

import (
	"context"

	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// GetPeriodReportQueryHandler fetches financial records for the requested
// period window and sums them into one bucket.
type GetPeriodReportQueryHandler struct {
	finance    ports.FinanceClient
	aggregator services.Aggregator
}

// NewGetPeriodReportQueryHandler creates a handler for period report
// queries.
func NewGetPeriodReportQueryHandler(finance ports.FinanceClient) GetPeriodReportQueryHandler {
	return GetPeriodReportQueryHandler{
		finance:    finance,
		aggregator: services.NewAggregator(),
	}
}

// Handle executes the period report query.
func (h GetPeriodReportQueryHandler) Handle(
	ctx context.Context,
	query GetPeriodReportQuery,
) (GetPeriodReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPeriodReportQueryResponse{}, err
	}

	from, to := services.Window(query.Period(), query.Anchor())

	records, err := h.finance.RecordsInRange(ctx, from, to)
	if err != nil {
		return GetPeriodReportQueryResponse{}, err
	}

	buckets, err := h.aggregator.Aggregate(records, query.Period(), query.Anchor())
	if err != nil {
		return GetPeriodReportQueryResponse{}, err
	}

	bucket := buckets[0]
	return GetPeriodReportQueryResponse{
		Period:       bucket.Key,
		From:         from,
		To:           to,
		TotalRevenue: bucket.TotalRevenue,
		TotalExpense: bucket.TotalExpense,
		TotalProfit:  bucket.TotalProfit,
		ProfitMargin: h.aggregator.ProfitMargin(bucket),
		Records:      bucket.Count,
	}, nil
}
