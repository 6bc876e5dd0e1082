// Package driver provides the delivery driver entity consumed when validating
// delivery assignments and computing delivery fees.
package driver

import (
	"errors"
	"strings"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// State is a driver's availability.
type State string

const (
	// StateFree means the driver can take a new delivery.
	StateFree State = "free"
	// StateBusy means the driver is on an active delivery.
	StateBusy State = "busy"
)

// ParseState maps the upstream availability vocabulary onto the State enum.
// The upstream API uses both "busy" and "in_progress" for occupied drivers.
func ParseState(raw string) State {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "busy", "in_progress":
		return StateBusy
	default:
		return StateFree
	}
}

// ErrDriverIsNotConstructed is returned when using an improperly initialized
// Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver")

// Driver represents a delivery driver.
//
// The salary field doubles as the per-order delivery fee charged below the
// free-delivery threshold; that upstream overload is consumed exclusively by
// services.DeliveryFeeResolver.
type Driver struct {
	id       string
	name     string
	phone    string
	salary   decimal.Decimal
	state    State
	isActive bool
	guard    guard.ConstructorGuard
}

// NewDriver creates a Driver. The id is required; everything else is taken
// as-is from upstream.
func NewDriver(id, name, phone string, salary decimal.Decimal, state State, isActive bool) (*Driver, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	return &Driver{
		id:       id,
		name:     name,
		phone:    phone,
		salary:   salary,
		state:    state,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Driver was built through NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's identifier.
func (d *Driver) ID() string {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() string {
	return d.phone
}

// Salary returns the driver's pay, reused as the conditional delivery fee.
func (d *Driver) Salary() decimal.Decimal {
	return d.salary
}

// State returns the driver's availability.
func (d *Driver) State() State {
	return d.state
}

// IsActive reports whether the driver is currently employed.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// IsAssignable reports whether the driver may be bound to a new delivery:
// active and not already on one.
func (d *Driver) IsAssignable() bool {
	return d != nil && d.isActive && d.state == StateFree
}
