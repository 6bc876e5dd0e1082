package queries_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationHandler(repo *MockSnapshotRepo, geocoder *MockGeocoder) queries.GetOrderLocationQueryHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return queries.NewGetOrderLocationQueryHandler(
		repo, services.NewGeoResolver(geocoder, logger))
}

func TestNewGetOrderLocationQuery(t *testing.T) {
	t.Run("should_reject_unconstructed_ref", func(t *testing.T) {
		_, err := queries.NewGetOrderLocationQuery(kernel.OrderRef{})
		require.Error(t, err)
	})
}

func TestGetOrderLocationQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ref, err := kernel.NewOrderRef("ord-1", kernel.SourceMobile)
	require.NoError(t, err)

	t.Run("should_resolve_customer_coordinates", func(t *testing.T) {
		lat, lng := 29.97, 31.13
		o, restoreErr := order.RestoreOrder(ref,
			time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			order.Customer{Lat: &lat, Lng: &lng}, nil, decimal.Zero, 1,
			order.PaymentOnDelivery, order.Waiting, nil)
		require.NoError(t, restoreErr)

		repo := new(MockSnapshotRepo)
		repo.On("Get", ctx, ref).Return(o, nil).Once()

		query, queryErr := queries.NewGetOrderLocationQuery(ref)
		require.NoError(t, queryErr)

		response, handleErr := newLocationHandler(repo, new(MockGeocoder)).Handle(ctx, query)
		require.NoError(t, handleErr)
		assert.InDelta(t, 29.97, response.Lat, 1e-9)
		assert.InDelta(t, 31.13, response.Lng, 1e-9)
		assert.False(t, response.IsDefault)
	})

	t.Run("should_fall_back_to_default_center", func(t *testing.T) {
		o, restoreErr := order.RestoreOrder(ref,
			time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			order.Customer{}, nil, decimal.Zero, 1,
			order.PaymentOnDelivery, order.Waiting, nil)
		require.NoError(t, restoreErr)

		repo := new(MockSnapshotRepo)
		repo.On("Get", ctx, ref).Return(o, nil).Once()

		query, queryErr := queries.NewGetOrderLocationQuery(ref)
		require.NoError(t, queryErr)

		response, handleErr := newLocationHandler(repo, new(MockGeocoder)).Handle(ctx, query)
		require.NoError(t, handleErr)
		assert.True(t, response.IsDefault)
	})

	t.Run("should_surface_missing_snapshot", func(t *testing.T) {
		repo := new(MockSnapshotRepo)
		repo.On("Get", ctx, ref).Return(nil, errs.ErrObjectNotFound).Once()

		query, queryErr := queries.NewGetOrderLocationQuery(ref)
		require.NoError(t, queryErr)

		_, handleErr := newLocationHandler(repo, new(MockGeocoder)).Handle(ctx, query)
		require.ErrorIs(t, handleErr, errs.ErrObjectNotFound)
	})

	t.Run("should_reject_unconstructed_query", func(t *testing.T) {
		handler := newLocationHandler(new(MockSnapshotRepo), new(MockGeocoder))
		_, handleErr := handler.Handle(ctx, queries.GetOrderLocationQuery{})
		require.ErrorIs(t, handleErr, queries.ErrGetOrderLocationQueryIsNotConstructed)
	})
}
