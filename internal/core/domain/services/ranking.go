package services

import (
	"sort"

	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// noDataProductName labels the sentinel entry returned when no order carries
// line items, so presentation always has one row to render.
const noDataProductName = "No data"

// ProductRank is one row of the top-selling ranking.
type ProductRank struct {
	ProductID string
	Name      string
	// TotalQuantity is the summed ordered quantity across all line items.
	TotalQuantity int
	// OrdersCount counts line-item occurrences, not distinct orders.
	OrdersCount int
	// Revenue is the summed line totals.
	Revenue decimal.Decimal
	// Percentage is the product's share of the truncated top-N set's total
	// quantity, not of the full catalog.
	Percentage decimal.Decimal
}

// Ranker computes best-selling products over merged orders. Pure read-side
// computation; safe to run concurrently with anything.
type Ranker struct{}

// NewRanker creates a Ranker.
func NewRanker() Ranker {
	return Ranker{}
}

// TopSelling flattens all line items across the orders, groups them by
// product, and returns the top n products by total quantity.
//
// The sort is stable and descending by quantity; equal quantities keep their
// encounter order. Percentages are computed against the truncated result
// set. When no order carries line items, a single "No data" sentinel entry
// is returned instead of an empty list.
func (r Ranker) TopSelling(orders []*order.Order, n int) []ProductRank {
	index := make(map[string]int)
	ranks := make([]ProductRank, 0)

	for _, o := range orders {
		for _, item := range o.Items() {
			i, ok := index[item.ProductID()]
			if !ok {
				i = len(ranks)
				index[item.ProductID()] = i
				ranks = append(ranks, ProductRank{
					ProductID: item.ProductID(),
					Name:      item.Name(),
					Revenue:   decimal.Zero,
				})
			}

			ranks[i].TotalQuantity += item.Quantity()
			ranks[i].OrdersCount++
			ranks[i].Revenue = ranks[i].Revenue.Add(item.TotalPrice())
		}
	}

	if len(ranks) == 0 {
		return []ProductRank{{
			Name:       noDataProductName,
			Revenue:    decimal.Zero,
			Percentage: decimal.Zero,
		}}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].TotalQuantity > ranks[j].TotalQuantity
	})

	if n > 0 && len(ranks) > n {
		ranks = ranks[:n]
	}

	total := 0
	for _, rank := range ranks {
		total += rank.TotalQuantity
	}
	if total > 0 {
		totalDec := decimal.NewFromInt(int64(total))
		hundred := decimal.NewFromInt(100)
		for i := range ranks {
			ranks[i].Percentage = decimal.NewFromInt(int64(ranks[i].TotalQuantity)).
				Div(totalDec).Mul(hundred)
		}
	}

	return ranks
}
