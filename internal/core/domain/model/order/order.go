package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder")

// Customer carries the customer-facing attributes of an order as received
// from upstream. Coordinates are optional; pointers distinguish "absent"
// from a literal zero.
type Customer struct {
	ID      string
	Name    string
	Address string
	// Lat and Lng are the structured customer coordinates when upstream
	// provides them.
	Lat *float64
	Lng *float64
	// RawLat and RawLng are the generic coordinate fields some records carry
	// instead; consulted after the customer pair during location resolution.
	RawLat *float64
	RawLng *float64
}

// Order is the canonical representation of an order from either intake
// channel. It is the aggregate root for the delivery lifecycle: every field
// except status and driver assignment is immutable after normalization, and
// those two change only through TransitionTo and StartDelivery.
type Order struct {
	ref           kernel.OrderRef
	createdAt     time.Time
	customer      Customer
	items         []Item
	totalPrice    decimal.Decimal
	quantity      int
	paymentMethod PaymentMethod
	status        Status
	driverID      *string
	guard         guard.ConstructorGuard
}

// RestoreOrder reconstructs an Order from already-normalized data (upstream
// records or the local snapshot store). It validates identity and the
// status/driver consistency rule: a driver may only be attached in OnTheWay
// or Delivered.
//
// Unknown status is accepted so unmapped upstream vocabulary still reaches
// reporting; such orders refuse all lifecycle transitions.
func RestoreOrder(
	ref kernel.OrderRef,
	createdAt time.Time,
	customer Customer,
	items []Item,
	totalPrice decimal.Decimal,
	quantity int,
	paymentMethod PaymentMethod,
	status Status,
	driverID *string,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setRef(ref),
		o.setCreatedAt(createdAt),
		o.setItems(items),
		o.setAssignment(status, driverID),
	); err != nil {
		return nil, err
	}

	o.customer = customer
	o.totalPrice = totalPrice
	o.quantity = quantity
	o.paymentMethod = paymentMethod
	return o, nil
}

// Validate ensures the Order was built through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Ref returns the composite identity (id + source) of the order.
func (o *Order) Ref() kernel.OrderRef {
	return o.ref
}

// CreatedAt returns the upstream creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Customer returns the customer attributes of the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the order total (items plus any upstream adjustments,
// excluding the delivery fee).
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Quantity returns the display quantity of the order.
func (o *Order) Quantity() int {
	return o.quantity
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DriverID returns the assigned delivery driver's id, or nil when the order
// has not entered delivery.
func (o *Order) DriverID() *string {
	return o.driverID
}

// IsEqual compares two orders by their composite identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.ref.IsEqual(other.ref)
}

// TransitionTo advances the order to target. It rejects terminal orders and
// non-successor targets with ErrInvalidTransition, and refuses OnTheWay with
// ErrMissingDeliveryAssignment since StartDelivery is the only path there.
// The order is left untouched on any failure.
func (o *Order) TransitionTo(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if target == OnTheWay {
		return ErrMissingDeliveryAssignment
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// StartDelivery moves the order to OnTheWay and binds the delivery driver.
// The driver id must be non-empty; eligibility of the driver itself (exists,
// active, not busy) is checked by the application layer before calling.
func (o *Order) StartDelivery(driverID string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if driverID == "" {
		return ErrMissingDeliveryAssignment
	}

	next, err := o.status.TransitionTo(OnTheWay)
	if err != nil {
		return err
	}

	o.status = next
	o.driverID = &driverID
	return nil
}

func (o *Order) setRef(ref kernel.OrderRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	o.ref = ref
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setAssignment(status Status, driverID *string) error {
	if status != Unknown {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateDriverAssignment(driverID != nil); err != nil {
		return err
	}

	o.status = status
	o.driverID = driverID
	return nil
}
