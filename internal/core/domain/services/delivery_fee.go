package services

import (
	"backoffice/internal/core/domain/model/driver"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// DeliveryFeeResolver computes the delivery fee bound to a driver
// assignment.
//
// Orders above the free-delivery threshold ship free; below it the fee
// equals the assigned driver's salary field. The salary-as-fee overload is
// inherited from the upstream data model and isolated here so a dedicated
// fee field can replace it in one place.
type DeliveryFeeResolver struct {
	freeDeliveryThreshold decimal.Decimal
}

// NewDeliveryFeeResolver creates a resolver with the given free-delivery
// threshold.
func NewDeliveryFeeResolver(freeDeliveryThreshold decimal.Decimal) DeliveryFeeResolver {
	return DeliveryFeeResolver{freeDeliveryThreshold: freeDeliveryThreshold}
}

// DeliveryCost returns the delivery fee for the order when carried by the
// given driver: zero when the order total exceeds the threshold, the
// driver's salary otherwise.
func (r DeliveryFeeResolver) DeliveryCost(o *order.Order, d *driver.Driver) decimal.Decimal {
	if o.TotalPrice().GreaterThan(r.freeDeliveryThreshold) {
		return decimal.Zero
	}
	return d.Salary()
}

// OrderTotal returns the order total including the delivery fee.
func (r DeliveryFeeResolver) OrderTotal(o *order.Order, d *driver.Driver) decimal.Decimal {
	return o.TotalPrice().Add(r.DeliveryCost(o, d))
}
