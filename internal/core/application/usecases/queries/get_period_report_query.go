package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetPeriodReportQueryIsNotConstructed = errors.New(
	"GetPeriodReportQuery must be created via NewGetPeriodReportQuery constructor",
)

// GetPeriodReportQuery produces the single-bucket financial summary for a
// calendar period (day, month or year) ending at the anchor.
type GetPeriodReportQuery struct {
	period services.Period
	anchor time.Time
	guard  guard.ConstructorGuard
}

// NewGetPeriodReportQuery creates a period report query from the raw period
// name. Unknown period names are rejected; "week" belongs to the dedicated
// weekly report and is rejected here as well.
func NewGetPeriodReportQuery(rawPeriod string, anchor time.Time) (GetPeriodReportQuery, error) {
	if anchor.IsZero() {
		return GetPeriodReportQuery{}, errs.NewValueIsRequiredError("anchor")
	}

	period, err := services.ParsePeriod(rawPeriod)
	if err != nil {
		return GetPeriodReportQuery{}, err
	}
	if period == services.PeriodWeek {
		return GetPeriodReportQuery{}, errs.NewValueIsInvalidError("period")
	}

	return GetPeriodReportQuery{
		period: period,
		anchor: anchor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Period returns the requested calendar period.
func (q GetPeriodReportQuery) Period() services.Period {
	return q.period
}

// Anchor returns the last day covered by the report.
func (q GetPeriodReportQuery) Anchor() time.Time {
	return q.anchor
}

// Validate ensures the query was created through the constructor.
func (q GetPeriodReportQuery) Validate() error {
	return q.guard.Validate(ErrGetPeriodReportQueryIsNotConstructed)
}

// GetPeriodReportQueryResponse is the period summary read model.
type GetPeriodReportQueryResponse struct {
	Period       string
	From         time.Time
	To           time.Time
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	TotalProfit  decimal.Decimal
	ProfitMargin decimal.Decimal
	Records      int
}
