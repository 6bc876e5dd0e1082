package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand requests a lifecycle transition for one order.
// The target must be reachable from the order's current status under the
// strict successor rule; moving to OnTheWay additionally binds a delivery
// driver, which is why the driver id travels with the command.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(ref, order.Preparing, "", "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type TransitionOrderCommand struct {
	ref            kernel.OrderRef
	target         order.Status
	driverID       string
	idempotencyKey string
	guard          guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition command. driverID is
// required when target is OnTheWay (its absence is rejected with
// order.ErrMissingDeliveryAssignment) and rejected otherwise. An empty
// idempotencyKey gets a generated one; callers retrying a submission must
// pass the original key to have the retry collapse into the first outcome.
func NewTransitionOrderCommand(
	ref kernel.OrderRef, target order.Status, driverID, idempotencyKey string,
) (TransitionOrderCommand, error) {
	if err := ref.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}

	if target == order.OnTheWay && driverID == "" {
		return TransitionOrderCommand{}, order.ErrMissingDeliveryAssignment
	}
	if target != order.OnTheWay && driverID != "" {
		return TransitionOrderCommand{}, errs.NewValueIsInvalidError("driverId")
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	return TransitionOrderCommand{
		ref:            ref,
		target:         target,
		driverID:       driverID,
		idempotencyKey: idempotencyKey,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Ref returns the composite identity of the order to transition.
func (c *TransitionOrderCommand) Ref() kernel.OrderRef {
	return c.ref
}

// Target returns the requested status.
func (c *TransitionOrderCommand) Target() order.Status {
	return c.target
}

// DriverID returns the driver to bind; empty unless Target is OnTheWay.
func (c *TransitionOrderCommand) DriverID() string {
	return c.driverID
}

// IdempotencyKey returns the submission's deduplication key.
func (c *TransitionOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

// Validate ensures the command was created through the constructor.
func (c *TransitionOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrTransitionOrderCommandIsNotConstructed,
	)
}
