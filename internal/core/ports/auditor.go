package ports

import (
	"context"

	"backoffice/internal/core/domain/model/order"
)

// TransitionAuditor receives every lifecycle transition attempt, successful
// or rejected. Implementations must not fail the transition itself.
type TransitionAuditor interface {
	ObserveTransition(ctx context.Context, event order.TransitionEvent)
}
