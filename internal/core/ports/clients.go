package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/driver"
	"backoffice/internal/core/domain/model/finance"
	"backoffice/internal/core/domain/model/kernel"
)

// DriverClient exposes the upstream delivery driver registry. It is consumed
// to validate assignment eligibility and to list drivers for dispatching.
type DriverClient interface {
	// List fetches all delivery drivers.
	List(ctx context.Context) ([]*driver.Driver, error)

	// Get fetches a single driver by id. Missing drivers surface as
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, id string) (*driver.Driver, error)

	// Delete removes a driver from the registry.
	Delete(ctx context.Context, id string) error
}

// FinanceClient exposes the upstream financial record store.
type FinanceClient interface {
	// RecordsInRange fetches all records whose calendar day lies in
	// [from, to] inclusive. Records with unparseable dates are dropped by
	// the adapter rather than failing the query.
	RecordsInRange(ctx context.Context, from, to time.Time) ([]finance.Record, error)
}

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
