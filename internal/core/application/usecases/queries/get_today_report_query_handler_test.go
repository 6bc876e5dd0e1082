package queries_test

import (
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/finance"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTodayReportQuery(t *testing.T) {
	t.Run("should_reject_zero_clock", func(t *testing.T) {
		_, err := queries.NewGetTodayReportQuery(time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGetTodayReportQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should_sum_all_of_todays_records", func(t *testing.T) {
		client := new(MockFinanceClient)
		client.On("RecordsInRange", ctx, today, today).
			Return([]finance.Record{
				testRecord(t, now, 70, 10),
				testRecord(t, now, 30, 0),
			}, nil).Once()

		query, err := queries.NewGetTodayReportQuery(now)
		require.NoError(t, err)

		response, err := queries.NewGetTodayReportQueryHandler(client).Handle(ctx, query)
		require.NoError(t, err)

		assert.Equal(t, today, response.Date)
		assert.Equal(t, "100", response.TotalRevenue.String())
		assert.Equal(t, "10", response.TotalExpense.String())
		assert.Equal(t, "90", response.TotalProfit.String())
		assert.Equal(t, "90", response.ProfitMargin.String())
		assert.Equal(t, 2, response.Records)
		client.AssertExpectations(t)
	})

	t.Run("should_return_zero_summary_without_records", func(t *testing.T) {
		client := new(MockFinanceClient)
		client.On("RecordsInRange", ctx, today, today).
			Return([]finance.Record{}, nil).Once()

		query, err := queries.NewGetTodayReportQuery(now)
		require.NoError(t, err)

		response, err := queries.NewGetTodayReportQueryHandler(client).Handle(ctx, query)
		require.NoError(t, err)
		assert.True(t, response.TotalRevenue.IsZero())
		assert.True(t, response.ProfitMargin.IsZero())
	})

	t.Run("should_reject_unconstructed_query", func(t *testing.T) {
		handler := queries.NewGetTodayReportQueryHandler(new(MockFinanceClient))
		_, err := handler.Handle(ctx, queries.GetTodayReportQuery{})
		require.ErrorIs(t, err, queries.ErrGetTodayReportQueryIsNotConstructed)
	})
}
