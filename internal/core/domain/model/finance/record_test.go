package finance_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/finance"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("normalizes_date_to_midnight_utc", func(t *testing.T) {
		rec, err := finance.NewRecord(
			time.Date(2024, 1, 1, 18, 45, 12, 0, time.FixedZone("EET", 2*3600)),
			decimal.NewFromInt(100),
			finance.Expenses{},
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rec.Date())
	})

	t.Run("zero_date_is_rejected", func(t *testing.T) {
		_, err := finance.NewRecord(time.Time{}, decimal.Zero, finance.Expenses{})
		require.Error(t, err)
	})
}

func TestRecord_ExpenseIsRecomputedFromComponents(t *testing.T) {
	rec, err := finance.NewRecord(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(100),
		finance.Expenses{
			BuyProducts:    decimal.NewFromInt(40),
			Transportation: decimal.NewFromInt(5),
			Repairs:        decimal.NewFromInt(3),
			Technology:     decimal.NewFromInt(2),
			Account:        decimal.NewFromInt(10),
		},
	)
	require.NoError(t, err)

	assert.True(t, rec.Expense().Equal(decimal.NewFromInt(60)))
	assert.True(t, rec.Profit().Equal(decimal.NewFromInt(40)))
}

func TestExpenses_Add(t *testing.T) {
	a := finance.Expenses{BuyProducts: decimal.NewFromInt(40)}
	b := finance.Expenses{BuyProducts: decimal.NewFromInt(10), Repairs: decimal.NewFromInt(5)}

	sum := a.Add(b)

	assert.True(t, sum.BuyProducts.Equal(decimal.NewFromInt(50)))
	assert.True(t, sum.Repairs.Equal(decimal.NewFromInt(5)))
	assert.True(t, sum.Total().Equal(decimal.NewFromInt(55)))
}

func TestDay(t *testing.T) {
	d := finance.Day(time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d)
}
