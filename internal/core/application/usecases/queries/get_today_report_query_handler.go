package queries

import (
	"context"

	"backoffice/internal/core/domain/model/finance"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// GetTodayReportQueryHandler fetches the current day's financial records and
// sums them into the today summary.
type GetTodayReportQueryHandler struct {
	finance    ports.FinanceClient
	aggregator services.Aggregator
}

// NewGetTodayReportQueryHandler creates a handler for today summary queries.
func NewGetTodayReportQueryHandler(client ports.FinanceClient) GetTodayReportQueryHandler {
	return GetTodayReportQueryHandler{
		finance:    client,
		aggregator: services.NewAggregator(),
	}
}

// Handle executes the today summary query.
func (h GetTodayReportQueryHandler) Handle(
	ctx context.Context,
	query GetTodayReportQuery,
) (GetTodayReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTodayReportQueryResponse{}, err
	}

	today := finance.Day(query.Now())

	records, err := h.finance.RecordsInRange(ctx, today, today)
	if err != nil {
		return GetTodayReportQueryResponse{}, err
	}

	bucket := h.aggregator.TodayTotals(records, query.Now())
	return GetTodayReportQueryResponse{
		Date:         today,
		TotalRevenue: bucket.TotalRevenue,
		TotalExpense: bucket.TotalExpense,
		TotalProfit:  bucket.TotalProfit,
		ProfitMargin: h.aggregator.ProfitMargin(bucket),
		Records:      bucket.Count,
	}, nil
}
