// Package audit contains the structured-log implementation of the
// transition auditor.
package audit

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/order"
)

// SlogAuditor writes every transition attempt to a structured logger.
// Observing never fails the transition itself.
type SlogAuditor struct {
	logger *slog.Logger
}

// NewSlogAuditor creates an auditor writing to the given logger.
func NewSlogAuditor(logger *slog.Logger) *SlogAuditor {
	return &SlogAuditor{logger: logger.With("component", "transition_audit")}
}

// ObserveTransition logs one transition attempt. Successful attempts log at
// info, rejected ones at warn with the rejection reason.
func (a *SlogAuditor) ObserveTransition(ctx context.Context, event order.TransitionEvent) {
	attrs := []any{
		"event_id", event.EventID,
		"order", event.Ref.String(),
		"from", event.From.String(),
		"to", event.To.String(),
		"occurred_at", event.OccurredAt,
	}
	if event.DriverID != nil {
		attrs = append(attrs, "driver_id", *event.DriverID)
	}

	if event.Succeeded {
		a.logger.InfoContext(ctx, "order transition applied", attrs...)
		return
	}

	attrs = append(attrs, "reason", event.Reason)
	a.logger.WarnContext(ctx, "order transition rejected", attrs...)
}
