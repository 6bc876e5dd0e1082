package queries

import (
	"errors"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWeeklyReportQueryIsNotConstructed = errors.New(
	"GetWeeklyReportQuery must be created via NewGetWeeklyReportQuery constructor",
)

// GetWeeklyReportQuery produces the per-weekday financial report for the
// seven days ending at the anchor, one row per weekday in chronological
// order.
type GetWeeklyReportQuery struct {
	anchor time.Time
	guard  guard.ConstructorGuard
}

// NewGetWeeklyReportQuery creates a weekly report query anchored at the
// given day.
func NewGetWeeklyReportQuery(anchor time.Time) (GetWeeklyReportQuery, error) {
	if anchor.IsZero() {
		return GetWeeklyReportQuery{}, errs.NewValueIsRequiredError("anchor")
	}

	return GetWeeklyReportQuery{
		anchor: anchor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Anchor returns the last day covered by the report.
func (q GetWeeklyReportQuery) Anchor() time.Time {
	return q.anchor
}

// Validate ensures the query was created through the constructor.
func (q GetWeeklyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetWeeklyReportQueryIsNotConstructed)
}

// GetWeeklyReportQueryResponse is one weekday row of the report.
type GetWeeklyReportQueryResponse struct {
	Day          string
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	TotalProfit  decimal.Decimal
	ProfitMargin decimal.Decimal
	Records      int
}
