package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"github.com/google/uuid"
)

var (
	// ErrTransitionInFlight is returned when a transition for the same order
	// is already being processed; the client retries after the first
	// submission settles.
	ErrTransitionInFlight = errors.New("a transition for this order is already in flight")

	// ErrUnknownOrderSource is returned when no upstream client is registered
	// for the order's source.
	ErrUnknownOrderSource = errors.New("no client registered for order source")

	// ErrDriverNotAvailable is returned when the requested driver exists but
	// cannot take a delivery (inactive or busy). Every OnTheWay rejection
	// caused by an unusable driver carries order.ErrMissingDeliveryAssignment.
	ErrDriverNotAvailable = fmt.Errorf(
		"%w: driver is not available for delivery", order.ErrMissingDeliveryAssignment)
)

// TransitionOrderCommandHandler orchestrates order lifecycle transitions.
//
// The domain rules run on the local snapshot first; only a transition the
// aggregate accepts is pushed upstream, in the request shape the order's
// source expects. The snapshot is updated in the same transaction, so the
// local view never gets ahead of the upstream on failure. Every attempt,
// applied or rejected, is surfaced to the auditor.
//
// Concurrent submissions for the same order are serialized by an in-flight
// guard: the second caller gets ErrTransitionInFlight instead of racing the
// first. Completed idempotency keys collapse retries into a success.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	sources    map[kernel.Source]ports.OrderSource
	drivers    ports.DriverClient
	auditor    ports.TransitionAuditor

	mu       sync.Mutex
	inFlight map[string]struct{}
	// completed holds one entry per applied idempotency key for the process
	// lifetime. Keys only need to survive a client's retry window; the
	// accepted cost is a few dozen bytes per transition until restart.
	completed map[string]struct{}
}

// NewTransitionOrderCommandHandler creates a handler over the given upstream
// source clients.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	sources []ports.OrderSource,
	drivers ports.DriverClient,
	auditor ports.TransitionAuditor,
) *TransitionOrderCommandHandler {
	bySource := make(map[kernel.Source]ports.OrderSource, len(sources))
	for _, s := range sources {
		bySource[s.Source()] = s
	}

	return &TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		sources:    bySource,
		drivers:    drivers,
		auditor:    auditor,
		inFlight:   make(map[string]struct{}),
		completed:  make(map[string]struct{}),
	}
}

// Handle processes the transition command.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if h.alreadyCompleted(command.IdempotencyKey()) {
		return nil
	}

	if !h.acquire(command.Ref().String()) {
		return ErrTransitionInFlight
	}
	defer h.release(command.Ref().String())

	source, ok := h.sources[command.Ref().Source()]
	if !ok {
		return ErrUnknownOrderSource
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderSnapshots()

	aggregate, err := repo.Get(ctx, command.Ref())
	if err != nil {
		return err
	}
	from := aggregate.Status()

	if err = h.applyDomainRules(ctx, aggregate, command); err != nil {
		h.audit(ctx, command, from, err)
		return err
	}

	if err = h.pushUpstream(ctx, source, command); err != nil {
		h.audit(ctx, command, from, err)
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.markCompleted(command.IdempotencyKey())
	h.audit(ctx, command, from, nil)
	return nil
}

func (h *TransitionOrderCommandHandler) applyDomainRules(
	ctx context.Context, aggregate *order.Order, command TransitionOrderCommand,
) error {
	if command.Target() != order.OnTheWay {
		return aggregate.TransitionTo(command.Target())
	}

	d, err := h.drivers.Get(ctx, command.DriverID())
	if err != nil {
		return fmt.Errorf("%w: %w", order.ErrMissingDeliveryAssignment, err)
	}
	if !d.IsAssignable() {
		return ErrDriverNotAvailable
	}

	return aggregate.StartDelivery(command.DriverID())
}

func (h *TransitionOrderCommandHandler) pushUpstream(
	ctx context.Context, source ports.OrderSource, command TransitionOrderCommand,
) error {
	if command.Target() == order.OnTheWay {
		return source.AssignDriver(ctx, command.Ref().ID(), command.DriverID())
	}
	return source.UpdateStatus(ctx, command.Ref().ID(), command.Target())
}

func (h *TransitionOrderCommandHandler) audit(
	ctx context.Context, command TransitionOrderCommand, from order.Status, cause error,
) {
	event := order.TransitionEvent{
		EventID:    uuid.NewString(),
		Ref:        command.Ref(),
		From:       from,
		To:         command.Target(),
		Succeeded:  cause == nil,
		OccurredAt: time.Now().UTC(),
	}
	if command.DriverID() != "" {
		driverID := command.DriverID()
		event.DriverID = &driverID
	}
	if cause != nil {
		event.Reason = cause.Error()
	}

	h.auditor.ObserveTransition(ctx, event)
}

func (h *TransitionOrderCommandHandler) acquire(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, busy := h.inFlight[key]; busy {
		return false
	}
	h.inFlight[key] = struct{}{}
	return true
}

func (h *TransitionOrderCommandHandler) release(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.inFlight, key)
}

func (h *TransitionOrderCommandHandler) alreadyCompleted(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, done := h.completed[key]
	return done
}

func (h *TransitionOrderCommandHandler) markCompleted(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed[key] = struct{}{}
}
