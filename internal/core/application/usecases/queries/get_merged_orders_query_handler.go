package queries

import (
	"context"

	"backoffice/internal/core/domain/model/driver"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetMergedOrdersQueryHandler reads the merged order list from the local
// snapshot store and prices the delivery leg of orders that carry a driver
// assignment.
type GetMergedOrdersQueryHandler struct {
	snapshots ports.OrderSnapshotRepository
	drivers   ports.DriverClient
	fees      services.DeliveryFeeResolver
}

// NewGetMergedOrdersQueryHandler creates a handler for merged order list
// queries.
func NewGetMergedOrdersQueryHandler(
	snapshots ports.OrderSnapshotRepository,
	drivers ports.DriverClient,
	fees services.DeliveryFeeResolver,
) GetMergedOrdersQueryHandler {
	return GetMergedOrdersQueryHandler{snapshots: snapshots, drivers: drivers, fees: fees}
}

// Handle executes the query, returning orders newest first. A failing
// driver listing degrades the fee columns to zero fee and grand total equal
// to the order total; the order list itself never depends on the driver
// service being up.
func (h GetMergedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMergedOrdersQuery,
) ([]GetMergedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.snapshots.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	driversByID := h.assignedDrivers(ctx, orders)

	responses := make([]GetMergedOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, h.toMergedOrderResponse(o, driversByID))
	}

	return responses, nil
}

// assignedDrivers fetches the driver roster only when at least one order in
// the snapshot carries an assignment.
func (h GetMergedOrdersQueryHandler) assignedDrivers(
	ctx context.Context, orders []*order.Order,
) map[string]*driver.Driver {
	assigned := false
	for _, o := range orders {
		if o.DriverID() != nil {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil
	}

	roster, err := h.drivers.List(ctx)
	if err != nil {
		return nil
	}

	byID := make(map[string]*driver.Driver, len(roster))
	for _, d := range roster {
		byID[d.ID()] = d
	}
	return byID
}

func (h GetMergedOrdersQueryHandler) toMergedOrderResponse(
	o *order.Order, driversByID map[string]*driver.Driver,
) GetMergedOrdersQueryResponse {
	items := make([]MergedOrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, MergedOrderItem{
			ProductID:  item.ProductID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	fee := decimal.Zero
	grandTotal := o.TotalPrice()
	if id := o.DriverID(); id != nil {
		if d, ok := driversByID[*id]; ok {
			fee = h.fees.DeliveryCost(o, d)
			grandTotal = h.fees.OrderTotal(o, d)
		}
	}

	return GetMergedOrdersQueryResponse{
		ID:              o.Ref().ID(),
		Source:          string(o.Ref().Source()),
		CreatedAt:       o.CreatedAt(),
		CustomerName:    o.Customer().Name,
		CustomerAddress: o.Customer().Address,
		Status:          o.Status().String(),
		TotalPrice:      o.TotalPrice(),
		Quantity:        o.Quantity(),
		PaymentMethod:   o.PaymentMethod().String(),
		DriverID:        o.DriverID(),
		DeliveryFee:     fee,
		GrandTotal:      grandTotal,
		Items:           items,
	}
}
