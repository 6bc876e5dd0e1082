package ports

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// RawOrderItem is a line item as received from an upstream source, before
// normalization. Pointer fields distinguish "absent" from zero.
type RawOrderItem struct {
	ProductID  string
	Name       string
	Quantity   *int
	Price      *float64
	TotalPrice *float64
}

// RawOrder is an order record as received from an upstream source. The two
// channels ship differently-shaped payloads; each source adapter decodes its
// own wire format into this common raw form, and the normalizer turns it
// into the canonical order.Order.
type RawOrder struct {
	ID              string
	CreatedAt       *time.Time
	CustomerID      string
	CustomerName    string
	CustomerAddress string
	// CustomerLat/CustomerLng are the structured customer coordinates.
	CustomerLat *float64
	CustomerLng *float64
	// Lat/Lng are the generic coordinate fields some records carry instead.
	Lat *float64
	Lng *float64
	// StatusCode carries the call-center integer encoding.
	StatusCode *int
	// StatusLabel carries the mobile string encoding.
	StatusLabel   string
	TotalPrice    *float64
	Quantity      *int
	PaymentMethod string
	DriverID      *string
	Items         []RawOrderItem
}

// OrderSource is one upstream intake channel. Each implementation knows its
// channel's wire shapes: the status-update endpoint accepts a bare target
// state, while the OnTheWay transition uses a separate driver-payload shape
// (AssignDriver), giving four request shapes across the two sources.
type OrderSource interface {
	// Source identifies the channel this client talks to.
	Source() kernel.Source

	// ListOrders fetches all order records of the channel.
	ListOrders(ctx context.Context) ([]RawOrder, error)

	// GetOrder fetches a single order record by its source-scoped id.
	GetOrder(ctx context.Context, id string) (RawOrder, error)

	// UpdateStatus submits a bare status change for the order.
	UpdateStatus(ctx context.Context, id string, target order.Status) error

	// AssignDriver submits the driver-payload status change that moves the
	// order to OnTheWay.
	AssignDriver(ctx context.Context, id string, driverID string) error
}
