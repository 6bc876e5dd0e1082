package queries

import (
	"errors"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTodayReportQueryIsNotConstructed = errors.New(
	"GetTodayReportQuery must be created via NewGetTodayReportQuery constructor",
)

// GetTodayReportQuery sums every financial record dated the current day into
// one summary. Kept separate from the weekly report so the dashboard's
// today tile never double-counts a weekday bucket.
type GetTodayReportQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

// NewGetTodayReportQuery creates a today summary query for the given clock
// reading.
func NewGetTodayReportQuery(now time.Time) (GetTodayReportQuery, error) {
	if now.IsZero() {
		return GetTodayReportQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetTodayReportQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Now returns the clock reading defining "today".
func (q GetTodayReportQuery) Now() time.Time {
	return q.now
}

// Validate ensures the query was created through the constructor.
func (q GetTodayReportQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayReportQueryIsNotConstructed)
}

// GetTodayReportQueryResponse is the today summary read model.
type GetTodayReportQueryResponse struct {
	Date         time.Time
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	TotalProfit  decimal.Decimal
	ProfitMargin decimal.Decimal
	Records      int
}
