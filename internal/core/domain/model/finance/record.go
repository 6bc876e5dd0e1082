// Package finance provides the financial record entity consumed by the
// aggregation engine. Records are created upstream and read-only here.
package finance

import (
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrRecordIsNotConstructed is returned when using an improperly initialized
// Record.
var ErrRecordIsNotConstructed = errs.NewValueIsRequiredError(
	"record must be created via NewRecord")

// Expenses holds the five expense components of a financial record. The
// total expense is always recomputed from these; the upstream "expense"
// field may be stale and is never trusted.
type Expenses struct {
	BuyProducts    decimal.Decimal
	Transportation decimal.Decimal
	Repairs        decimal.Decimal
	Technology     decimal.Decimal
	Account        decimal.Decimal
}

// Total returns the sum of all components.
func (e Expenses) Total() decimal.Decimal {
	return e.BuyProducts.
		Add(e.Transportation).
		Add(e.Repairs).
		Add(e.Technology).
		Add(e.Account)
}

// Add returns the component-wise sum of two expense sets.
func (e Expenses) Add(other Expenses) Expenses {
	return Expenses{
		BuyProducts:    e.BuyProducts.Add(other.BuyProducts),
		Transportation: e.Transportation.Add(other.Transportation),
		Repairs:        e.Repairs.Add(other.Repairs),
		Technology:     e.Technology.Add(other.Technology),
		Account:        e.Account.Add(other.Account),
	}
}

// Record is one financial entry for a calendar day. Several records may
// exist for the same day; aggregation sums them before bucketing.
type Record struct {
	date     time.Time
	revenue  decimal.Decimal
	expenses Expenses
	guard    guard.ConstructorGuard
}

// NewRecord creates a Record, normalizing the date to midnight UTC so that
// calendar-day comparisons are exact. A zero date is rejected; the caller
// excludes such records from aggregation instead of aborting it.
func NewRecord(date time.Time, revenue decimal.Decimal, expenses Expenses) (Record, error) {
	if date.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("date")
	}

	return Record{
		date:     Day(date),
		revenue:  revenue,
		expenses: expenses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Record was built through NewRecord.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// Date returns the record's calendar day (midnight UTC).
func (r Record) Date() time.Time {
	return r.date
}

// Revenue returns the record's revenue.
func (r Record) Revenue() decimal.Decimal {
	return r.revenue
}

// Expenses returns the record's expense components.
func (r Record) Expenses() Expenses {
	return r.expenses
}

// Expense returns the total expense, recomputed from the components.
func (r Record) Expense() decimal.Decimal {
	return r.expenses.Total()
}

// Profit returns revenue minus total expense.
func (r Record) Profit() decimal.Decimal {
	return r.revenue.Sub(r.Expense())
}

// Day strips the time-of-day portion of t, yielding midnight UTC of the same
// calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
