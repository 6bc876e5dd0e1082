// Package order provides the canonical order aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Order: the aggregate root unifying records from both intake channels
//   - Status: the delivery lifecycle state machine
//     (Waiting -> Preparing -> OnTheWay -> Delivered, Cancelled from any
//     non-terminal state; Delivered and Cancelled are terminal)
//   - Item: an order line item with upstream-trusted line totals
//   - TransitionEvent: the observable record of a transition attempt
//
// Key business rules:
//   - A driver may only be attached to an order in OnTheWay or Delivered
//     status, and reaching OnTheWay requires one (StartDelivery is the only
//     path there)
//   - Status never decreases; the only sideways move is to Cancelled
//   - Orders are immutable after normalization except for status and driver
//     assignment, which change exclusively through aggregate methods
package order
