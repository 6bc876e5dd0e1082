package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderLocationQueryIsNotConstructed = errors.New(
	"GetOrderLocationQuery must be created via NewGetOrderLocationQuery constructor",
)

// GetOrderLocationQuery resolves the delivery coordinates for one order.
// Resolution never fails; orders without any usable location data map to
// the default city center.
type GetOrderLocationQuery struct {
	ref   kernel.OrderRef
	guard guard.ConstructorGuard
}

// NewGetOrderLocationQuery creates a location query for the given order.
func NewGetOrderLocationQuery(ref kernel.OrderRef) (GetOrderLocationQuery, error) {
	if err := ref.Validate(); err != nil {
		return GetOrderLocationQuery{}, err
	}

	return GetOrderLocationQuery{
		ref:   ref,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Ref returns the composite identity of the order.
func (q GetOrderLocationQuery) Ref() kernel.OrderRef {
	return q.ref
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLocationQueryIsNotConstructed)
}

// GetOrderLocationQueryResponse carries the resolved coordinates.
// IsDefault reports whether resolution fell through to the city center.
type GetOrderLocationQueryResponse struct {
	Lat       float64
	Lng       float64
	IsDefault bool
}
