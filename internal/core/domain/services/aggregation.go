package services

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/finance"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Period selects the calendar window of an aggregation.
type Period string

const (
	// PeriodDay covers the trailing seven calendar days up to the anchor.
	PeriodDay Period = "day"
	// PeriodWeek produces one bucket per weekday over the seven days ending
	// at the anchor.
	PeriodWeek Period = "week"
	// PeriodMonth covers the anchor's month up to the anchor.
	PeriodMonth Period = "month"
	// PeriodYear covers the anchor's year up to the anchor.
	PeriodYear Period = "year"
)

// ParsePeriod converts a raw period name into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("%q is not a known aggregation period", s))
	}
}

// Bucket is one aggregation output row. Buckets are ephemeral: constructed
// fresh per call, a pure function of the input snapshot and the period
// parameters.
type Bucket struct {
	// Key names the bucket: a weekday name for weekly buckets, the period
	// name otherwise.
	Key string
	// TotalRevenue is the summed revenue of the bucket's records.
	TotalRevenue decimal.Decimal
	// Expenses holds the independently summed expense components.
	Expenses finance.Expenses
	// TotalExpense is recomputed from the components; the upstream expense
	// field is never trusted inside the aggregator.
	TotalExpense decimal.Decimal
	// TotalProfit is TotalRevenue minus TotalExpense.
	TotalProfit decimal.Decimal
	// Count is the number of records summed into the bucket.
	Count int
}

func newBucket(key string) Bucket {
	return Bucket{
		Key:          key,
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
}

func (b *Bucket) add(r finance.Record) {
	b.TotalRevenue = b.TotalRevenue.Add(r.Revenue())
	b.Expenses = b.Expenses.Add(r.Expenses())
	b.Count++
}

func (b *Bucket) finalize() {
	b.TotalExpense = b.Expenses.Total()
	b.TotalProfit = b.TotalRevenue.Sub(b.TotalExpense)
}

// Aggregator buckets financial records by calendar period. It is a pure
// read-side computation over an immutable snapshot and may run concurrently
// with anything.
type Aggregator struct{}

// NewAggregator creates an Aggregator.
func NewAggregator() Aggregator {
	return Aggregator{}
}

// Aggregate buckets records for the given period anchored at anchor.
//
// PeriodWeek yields exactly seven buckets keyed by weekday name, in
// chronological order over the window [anchor-6d, anchor]; records outside
// the window are dropped from this view. The other periods yield a single
// bucket over [start, anchor] where start is anchor-7d (day), the first of
// the anchor's month, or the first of the anchor's year. Records that were
// not properly constructed are excluded rather than aborting the run.
func (a Aggregator) Aggregate(
	records []finance.Record, period Period, anchor time.Time,
) ([]Bucket, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	if period == PeriodWeek {
		return a.aggregateWeek(records, anchor), nil
	}
	return a.aggregateRange(records, period, anchor), nil
}

// TodayTotals sums every record dated the current day (there may be more
// than one) into a single bucket. This view is independent of the weekly
// buckets and never double-counts against them.
func (a Aggregator) TodayTotals(records []finance.Record, now time.Time) Bucket {
	today := finance.Day(now)

	bucket := newBucket("today")
	for _, r := range records {
		if r.Validate() != nil {
			continue
		}
		if r.Date().Equal(today) {
			bucket.add(r)
		}
	}
	bucket.finalize()
	return bucket
}

// ProfitMargin returns the bucket's profit as a percentage of revenue,
// or zero when revenue is zero. Division by zero is a policy here, not an
// error.
func (a Aggregator) ProfitMargin(b Bucket) decimal.Decimal {
	if b.TotalRevenue.IsZero() {
		return decimal.Zero
	}
	return b.TotalProfit.Div(b.TotalRevenue).Mul(decimal.NewFromInt(100))
}

// Window returns the inclusive [from, to] calendar-day range the period
// covers around the anchor. Callers use it to bound upstream record fetches
// to what the aggregation will actually consume.
func Window(period Period, anchor time.Time) (from, to time.Time) {
	to = finance.Day(anchor)

	switch period {
	case PeriodWeek:
		from = to.AddDate(0, 0, -6)
	case PeriodDay:
		from = to.AddDate(0, 0, -7)
	case PeriodMonth:
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	default: // PeriodYear
		from = time.Date(to.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return from, to
}

func (a Aggregator) aggregateWeek(records []finance.Record, anchor time.Time) []Bucket {
	start, end := Window(PeriodWeek, anchor)

	buckets := make([]Bucket, 7)
	for i := range buckets {
		buckets[i] = newBucket(start.AddDate(0, 0, i).Weekday().String())
	}

	for _, r := range records {
		if r.Validate() != nil {
			continue
		}
		day := r.Date()
		if day.Before(start) || day.After(end) {
			continue
		}
		idx := int(day.Sub(start).Hours() / 24)
		buckets[idx].add(r)
	}

	for i := range buckets {
		buckets[i].finalize()
	}
	return buckets
}

func (a Aggregator) aggregateRange(
	records []finance.Record, period Period, anchor time.Time,
) []Bucket {
	start, end := Window(period, anchor)

	bucket := newBucket(string(period))
	for _, r := range records {
		if r.Validate() != nil {
			continue
		}
		day := r.Date()
		if day.Before(start) || day.After(end) {
			continue
		}
		bucket.add(r)
	}
	bucket.finalize()
	return []Bucket{bucket}
}

func validatePeriod(period Period) error {
	_, err := ParsePeriod(string(period))
	return err
}
