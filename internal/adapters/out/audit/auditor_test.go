package audit

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(t *testing.T, succeeded bool, reason string) order.TransitionEvent {
	t.Helper()

	ref, err := kernel.NewOrderRef("101", kernel.SourceCallCenter)
	require.NoError(t, err)

	return order.TransitionEvent{
		EventID:    "evt-1",
		Ref:        ref,
		From:       order.Waiting,
		To:         order.Preparing,
		Succeeded:  succeeded,
		Reason:     reason,
		OccurredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSlogAuditor_ObserveTransition(t *testing.T) {
	ctx := t.Context()

	t.Run("should_log_success_at_info", func(t *testing.T) {
		var buf bytes.Buffer
		auditor := NewSlogAuditor(slog.New(slog.NewTextHandler(&buf, nil)))

		auditor.ObserveTransition(ctx, testEvent(t, true, ""))

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "order transition applied")
		assert.Contains(t, out, "from=Waiting")
		assert.Contains(t, out, "to=Preparing")
		assert.NotContains(t, out, "reason")
	})

	t.Run("should_log_rejection_at_warn_with_reason", func(t *testing.T) {
		var buf bytes.Buffer
		auditor := NewSlogAuditor(slog.New(slog.NewTextHandler(&buf, nil)))

		auditor.ObserveTransition(ctx, testEvent(t, false, "invalid order status transition"))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "order transition rejected")
		assert.Contains(t, out, "invalid order status transition")
	})

	t.Run("should_include_driver_when_bound", func(t *testing.T) {
		var buf bytes.Buffer
		auditor := NewSlogAuditor(slog.New(slog.NewTextHandler(&buf, nil)))

		event := testEvent(t, true, "")
		driverID := "drv-3"
		event.To = order.OnTheWay
		event.DriverID = &driverID

		auditor.ObserveTransition(ctx, event)

		assert.Contains(t, buf.String(), "driver_id=drv-3")
	})
}
