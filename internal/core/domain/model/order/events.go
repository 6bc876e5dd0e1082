package order

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// TransitionEvent records one lifecycle transition attempt, successful or
// not. Every attempt is surfaced for auditing regardless of outcome.
type TransitionEvent struct {
	// EventID uniquely identifies the attempt.
	EventID string
	// Ref is the order the transition was attempted on.
	Ref kernel.OrderRef
	// From and To are the current and requested statuses.
	From Status
	To   Status
	// DriverID is the driver bound by the attempt, when To is OnTheWay.
	DriverID *string
	// Succeeded reports whether the transition was applied upstream.
	Succeeded bool
	// Reason holds the failure description for rejected attempts.
	Reason string
	// OccurredAt is when the attempt was processed.
	OccurredAt time.Time
}
