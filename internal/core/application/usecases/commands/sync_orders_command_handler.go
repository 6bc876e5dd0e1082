package commands

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// SyncOrdersCommandHandler refreshes the local order snapshot from the
// upstream sources.
//
// A source that fails to list degrades to an empty contribution instead of
// failing the whole sync; the other source's orders still land. Malformed
// records are dropped and logged by id. All fetched orders are written in a
// single transaction so readers never observe a half-synced snapshot.
type SyncOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	sources    []ports.OrderSource
	normalizer services.Normalizer
	logger     *slog.Logger
}

// NewSyncOrdersCommandHandler creates a handler over the given upstream
// source clients.
func NewSyncOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	sources []ports.OrderSource,
	logger *slog.Logger,
) SyncOrdersCommandHandler {
	return SyncOrdersCommandHandler{
		uowFactory: uowFactory,
		sources:    sources,
		normalizer: services.NewNormalizer(),
		logger:     logger.With("component", "sync_orders"),
	}
}

// Handle processes the sync command.
func (h SyncOrdersCommandHandler) Handle(ctx context.Context, command SyncOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var merged []*order.Order
	for _, source := range h.sources {
		raws, err := source.ListOrders(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "source listing failed, contributing no orders",
				"source", source.Source(), "error", err)
			continue
		}

		orders, dropped := h.normalizer.NormalizeBatch(raws, source.Source())
		if len(dropped) > 0 {
			h.logger.WarnContext(ctx, "dropped malformed order records",
				"source", source.Source(), "ids", dropped)
		}
		merged = append(merged, orders...)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderSnapshots().UpsertBatch(ctx, merged); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order snapshot refreshed", "orders", len(merged))
	return nil
}
