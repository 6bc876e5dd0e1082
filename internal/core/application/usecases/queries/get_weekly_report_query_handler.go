package queries

import (
	"context"

	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// GetWeeklyReportQueryHandler fetches financial records for the weekly
// window and buckets them per weekday.
type GetWeeklyReportQueryHandler struct {
	finance    ports.FinanceClient
	aggregator services.Aggregator
}

// NewGetWeeklyReportQueryHandler creates a handler for weekly report
// queries.
func NewGetWeeklyReportQueryHandler(finance ports.FinanceClient) GetWeeklyReportQueryHandler {
	return GetWeeklyReportQueryHandler{
		finance:    finance,
		aggregator: services.NewAggregator(),
	}
}

// Handle executes the weekly report query. Always returns exactly seven
// rows; days without records report zero totals.
func (h GetWeeklyReportQueryHandler) Handle(
	ctx context.Context,
	query GetWeeklyReportQuery,
) ([]GetWeeklyReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	from, to := services.Window(services.PeriodWeek, query.Anchor())

	records, err := h.finance.RecordsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	buckets, err := h.aggregator.Aggregate(records, services.PeriodWeek, query.Anchor())
	if err != nil {
		return nil, err
	}

	rows := make([]GetWeeklyReportQueryResponse, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, GetWeeklyReportQueryResponse{
			Day:          b.Key,
			TotalRevenue: b.TotalRevenue,
			TotalExpense: b.TotalExpense,
			TotalProfit:  b.TotalProfit,
			ProfitMargin: h.aggregator.ProfitMargin(b),
			Records:      b.Count,
		})
	}

	return rows, nil
}
