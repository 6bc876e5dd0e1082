// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves the delivery driver roster from the upstream
// registry, including availability so dispatchers can tell who may take the
// next delivery.
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query to retrieve all drivers.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// GetDriversQueryResponse represents one driver in the read model.
type GetDriversQueryResponse struct {
	ID           string
	Name         string
	Phone        string
	Salary       decimal.Decimal
	State        string
	IsActive     bool
	IsAssignable bool
}
