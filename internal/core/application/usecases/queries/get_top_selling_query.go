package queries

import (
	"errors"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTopSellingQueryIsNotConstructed = errors.New(
	"GetTopSellingQuery must be created via NewGetTopSellingQuery constructor",
)

const (
	minTopSellingLimit = 1
	maxTopSellingLimit = 100
)

// GetTopSellingQuery ranks products by total ordered quantity across the
// merged order snapshot and returns the top entries.
type GetTopSellingQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewGetTopSellingQuery creates a ranking query returning at most limit
// products.
func NewGetTopSellingQuery(limit int) (GetTopSellingQuery, error) {
	if limit < minTopSellingLimit || limit > maxTopSellingLimit {
		return GetTopSellingQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, minTopSellingLimit, maxTopSellingLimit)
	}

	return GetTopSellingQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Limit returns the maximum number of products to return.
func (q GetTopSellingQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q GetTopSellingQuery) Validate() error {
	return q.guard.Validate(ErrGetTopSellingQueryIsNotConstructed)
}

// GetTopSellingQueryResponse is one product row of the ranking. The
// percentage is the product's quantity share within the returned set.
type GetTopSellingQueryResponse struct {
	ProductID     string
	Name          string
	TotalQuantity int
	OrdersCount   int
	Revenue       decimal.Decimal
	Percentage    decimal.Decimal
}
