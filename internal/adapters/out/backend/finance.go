package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"backoffice/internal/core/domain/model/finance"
	"backoffice/internal/pkg/session"

	"github.com/shopspring/decimal"
)

// financeRecordDTO mirrors the upstream financial record payload. The
// upstream "expense" field is intentionally not mapped: totals are always
// recomputed from the components.
type financeRecordDTO struct {
	Date           string  `json:"date"`
	Revenue        float64 `json:"revenue"`
	BuyProducts    float64 `json:"buyProducts"`
	Transportation float64 `json:"transportation"`
	Repairs        float64 `json:"repairs"`
	Technology     float64 `json:"technology"`
	Account        float64 `json:"account"`
}

// FinanceHTTPClient talks to the upstream financial record store.
type FinanceHTTPClient struct {
	rest restClient
}

// NewFinanceHTTPClient creates a client for the financial record store.
func NewFinanceHTTPClient(baseURL string, sess *session.Store) *FinanceHTTPClient {
	return &FinanceHTTPClient{rest: newRESTClient(baseURL, sess)}
}

// RecordsInRange fetches all records whose calendar day lies in [from, to]
// inclusive. Records with unparseable dates are dropped rather than failing
// the query; the range is re-checked locally since the upstream filter
// compares raw strings.
func (c *FinanceHTTPClient) RecordsInRange(ctx context.Context, from, to time.Time) ([]finance.Record, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.DateOnly))
	query.Set("to", to.Format(time.DateOnly))

	var dtos []financeRecordDTO
	err := c.rest.do(ctx, http.MethodGet, "/api/finances?"+query.Encode(), nil, &dtos)
	if err != nil {
		return nil, err
	}

	fromDay := finance.Day(from)
	toDay := finance.Day(to)

	records := make([]finance.Record, 0, len(dtos))
	for _, dto := range dtos {
		date := parseUpstreamTime(dto.Date)
		if date == nil {
			continue
		}

		day := finance.Day(*date)
		if day.Before(fromDay) || day.After(toDay) {
			continue
		}

		record, recordErr := finance.NewRecord(day, decimal.NewFromFloat(dto.Revenue), finance.Expenses{
			BuyProducts:    decimal.NewFromFloat(dto.BuyProducts),
			Transportation: decimal.NewFromFloat(dto.Transportation),
			Repairs:        decimal.NewFromFloat(dto.Repairs),
			Technology:     decimal.NewFromFloat(dto.Technology),
			Account:        decimal.NewFromFloat(dto.Account),
		})
		if recordErr != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
