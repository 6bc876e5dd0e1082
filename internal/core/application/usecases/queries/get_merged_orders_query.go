package queries

import (
	"errors"
	"time"

	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMergedOrdersQueryIsNotConstructed = errors.New(
	"GetMergedOrdersQuery must be created via NewGetMergedOrdersQuery constructor",
)

// GetMergedOrdersQuery retrieves the merged order list across both intake
// channels, as last synced into the local snapshot. Orders keep their
// source-scoped ids; the (id, source) pair is the identity.
type GetMergedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMergedOrdersQuery creates a query to retrieve the merged order list.
func NewGetMergedOrdersQuery() GetMergedOrdersQuery {
	return GetMergedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMergedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMergedOrdersQueryIsNotConstructed)
}

// MergedOrderItem is one line item in the merged order read model.
type MergedOrderItem struct {
	ProductID  string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// GetMergedOrdersQueryResponse represents one order in the merged read
// model.
type GetMergedOrdersQueryResponse struct {
	ID              string
	Source          string
	CreatedAt       time.Time
	CustomerName    string
	CustomerAddress string
	Status          string
	TotalPrice      decimal.Decimal
	Quantity        int
	PaymentMethod   string
	DriverID        *string
	DeliveryFee     decimal.Decimal
	GrandTotal      decimal.Decimal
	Items           []MergedOrderItem
}
