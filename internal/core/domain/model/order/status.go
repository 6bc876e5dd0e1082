package order

import (
	"errors"
	"fmt"
	"strings"
)

// Status represents the delivery lifecycle state of an order.
//
// State transitions:
//
//	Waiting ──> Preparing ──> OnTheWay ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The numeric values match the
// call-center channel's wire encoding and must not be reordered.
type Status int

const (
	// Waiting is the initial status of a freshly placed order.
	Waiting Status = iota
	// Preparing means the kitchen has accepted the order.
	Preparing
	// OnTheWay means a delivery driver has picked the order up. Entering
	// this status requires a driver assignment.
	OnTheWay
	// Delivered is the terminal success status.
	Delivered
	// Cancelled is the terminal abort status, reachable from any
	// non-terminal state.
	Cancelled
)

// Unknown is the sentinel for upstream status values this version does not
// recognize. Orders with Unknown status are kept for reporting but refuse all
// transitions.
const Unknown Status = -1

var (
	// ErrInvalidTransition is returned when a requested status change is not
	// an edge of the lifecycle graph.
	ErrInvalidTransition = errors.New("invalid order status transition")
	// ErrMissingDeliveryAssignment is returned when a transition to OnTheWay
	// is attempted without a valid delivery driver.
	ErrMissingDeliveryAssignment = errors.New("transition to OnTheWay requires a delivery driver")
)

// mobileStatusLabels is the total lookup table for the mobile channel's
// string encoding. Unmapped labels resolve to Unknown rather than failing,
// so reporting stays resilient to upstream vocabulary drift.
var mobileStatusLabels = map[string]Status{
	"waiting":    Waiting,
	"pending":    Waiting,
	"accepted":   Preparing,
	"preparing":  Preparing,
	"processing": OnTheWay,
	"on_the_way": OnTheWay,
	"ontheway":   OnTheWay,
	"delivering": OnTheWay,
	"completed":  Delivered,
	"delivered":  Delivered,
	"cancelled":  Cancelled,
	"canceled":   Cancelled,
}

// outboundMobileLabels maps canonical statuses back to the vocabulary the
// mobile channel's status-update endpoint expects.
var outboundMobileLabels = map[Status]string{
	Waiting:   "waiting",
	Preparing: "accepted",
	OnTheWay:  "processing",
	Delivered: "completed",
	Cancelled: "cancelled",
}

// StatusFromCode converts the call-center channel's integer encoding into a
// Status. Codes outside the known range resolve to Unknown.
func StatusFromCode(code int) Status {
	s := Status(code)
	if s < Waiting || s > Cancelled {
		return Unknown
	}
	return s
}

// StatusFromLabel converts the mobile channel's string encoding into a
// Status. The lookup is total: unmapped labels resolve to Unknown.
func StatusFromLabel(label string) Status {
	if s, ok := mobileStatusLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return s
	}
	return Unknown
}

// Code returns the call-center wire encoding of the status.
func (s Status) Code() int {
	return int(s)
}

// MobileLabel returns the mobile channel wire encoding of the status.
// Unknown has no outbound representation and returns an empty string.
func (s Status) MobileLabel() string {
	return outboundMobileLabels[s]
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case Preparing:
		return "Preparing"
	case OnTheWay:
		return "OnTheWay"
	case Delivered:
		return "Delivered"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Validate reports whether the status is one of the canonical lifecycle
// states. Unknown fails validation.
func (s Status) Validate() error {
	if s < Waiting || s > Cancelled {
		return fmt.Errorf("%w: %d is not a lifecycle status", ErrInvalidTransition, int(s))
	}
	return nil
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether target is a legal successor of s in the
// lifecycle graph.
func (s Status) CanTransitionTo(target Status) bool {
	if s.Validate() != nil || target.Validate() != nil || s.IsTerminal() {
		return false
	}
	if target == Cancelled {
		return true
	}
	return target == s+1
}

// TransitionTo validates the move to target and returns the new status.
// Terminal states and non-successor targets yield ErrInvalidTransition.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}

// ValidateDriverAssignment checks consistency between the status and the
// presence of a driver. A driver may only be attached in OnTheWay or
// Delivered. The reverse direction (OnTheWay without a driver) is tolerated
// on restore because historical upstream records predate driver tracking;
// the mutation path enforces it through StartDelivery.
func (s Status) ValidateDriverAssignment(hasDriver bool) error {
	if hasDriver && s != OnTheWay && s != Delivered {
		return fmt.Errorf("%w: %s cannot carry a driver assignment", ErrInvalidTransition, s)
	}
	return nil
}
