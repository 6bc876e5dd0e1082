package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/driver"
	"backoffice/internal/core/domain/model/finance"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSnapshotRepo struct{ mock.Mock }

func (m *MockSnapshotRepo) UpsertBatch(ctx context.Context, orders []*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

func (m *MockSnapshotRepo) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSnapshotRepo) Get(ctx context.Context, ref kernel.OrderRef) (*order.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockSnapshotRepo) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockFinanceClient struct{ mock.Mock }

func (m *MockFinanceClient) RecordsInRange(
	ctx context.Context, from, to time.Time,
) ([]finance.Record, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Record), args.Error(1)
}

type MockDriverClient struct{ mock.Mock }

func (m *MockDriverClient) List(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverClient) Get(ctx context.Context, id string) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverClient) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

func testItem(t *testing.T, productID, name string, quantity int, unitPrice int64) order.Item {
	t.Helper()

	i, err := order.NewItem(productID, name, quantity, decimal.NewFromInt(unitPrice))
	require.NoError(t, err)
	return i
}

func testOrder(
	t *testing.T, id string, source kernel.Source, status order.Status, items ...order.Item,
) *order.Order {
	t.Helper()

	ref, err := kernel.NewOrderRef(id, source)
	require.NoError(t, err)

	total := decimal.Zero
	for _, i := range items {
		total = total.Add(i.TotalPrice())
	}

	o, err := order.RestoreOrder(ref, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		order.Customer{Name: "Adel", Address: "12 Tahrir Square"}, items, total,
		len(items), order.PaymentOnDelivery, status, nil)
	require.NoError(t, err)
	return o
}

func TestGetMergedOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	fees := services.NewDeliveryFeeResolver(decimal.NewFromInt(300))

	t.Run("should_map_snapshot_orders_to_read_models", func(t *testing.T) {
		orders := []*order.Order{
			testOrder(t, "cc-1", kernel.SourceCallCenter, order.Preparing,
				testItem(t, "p-1", "Koshary", 2, 25)),
			testOrder(t, "mob-1", kernel.SourceMobile, order.Waiting),
		}

		repo := new(MockSnapshotRepo)
		repo.On("GetAll", ctx).Return(orders, nil).Once()
		drivers := new(MockDriverClient)

		handler := queries.NewGetMergedOrdersQueryHandler(repo, drivers, fees)
		responses, err := handler.Handle(ctx, queries.NewGetMergedOrdersQuery())

		require.NoError(t, err)
		require.Len(t, responses, 2)

		assert.Equal(t, "cc-1", responses[0].ID)
		assert.Equal(t, "callcenter", responses[0].Source)
		assert.Equal(t, "Adel", responses[0].CustomerName)
		assert.Equal(t, "Preparing", responses[0].Status)
		assert.Equal(t, "50", responses[0].TotalPrice.String())
		assert.Equal(t, "0", responses[0].DeliveryFee.String())
		assert.Equal(t, "50", responses[0].GrandTotal.String())
		require.Len(t, responses[0].Items, 1)
		assert.Equal(t, "Koshary", responses[0].Items[0].Name)

		assert.Equal(t, "mobile", responses[1].Source)
		assert.Empty(t, responses[1].Items)

		// No order carries a driver, so the roster is never fetched.
		drivers.AssertNotCalled(t, "List", mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("should_price_delivery_leg_for_assigned_orders", func(t *testing.T) {
		assigned := testOrder(t, "cc-2", kernel.SourceCallCenter, order.Preparing,
			testItem(t, "p-1", "Koshary", 4, 25))
		require.NoError(t, assigned.StartDelivery("drv-1"))

		repo := new(MockSnapshotRepo)
		drivers := new(MockDriverClient)

		d, err := driver.NewDriver("drv-1", "Mostafa", "+201000000000",
			decimal.NewFromInt(20), driver.StateBusy, true)
		require.NoError(t, err)

		repo.On("GetAll", ctx).Return([]*order.Order{assigned}, nil).Once()
		drivers.On("List", ctx).Return([]*driver.Driver{d}, nil).Once()

		handler := queries.NewGetMergedOrdersQueryHandler(repo, drivers, fees)
		responses, err := handler.Handle(ctx, queries.NewGetMergedOrdersQuery())

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "20", responses[0].DeliveryFee.String())
		assert.Equal(t, "120", responses[0].GrandTotal.String())
		drivers.AssertExpectations(t)
	})

	t.Run("should_degrade_fees_when_driver_listing_fails", func(t *testing.T) {
		assigned := testOrder(t, "cc-2", kernel.SourceCallCenter, order.Preparing,
			testItem(t, "p-1", "Koshary", 4, 25))
		require.NoError(t, assigned.StartDelivery("drv-1"))

		repo := new(MockSnapshotRepo)
		drivers := new(MockDriverClient)

		repo.On("GetAll", ctx).Return([]*order.Order{assigned}, nil).Once()
		drivers.On("List", ctx).Return(nil, errors.New("driver service down")).Once()

		handler := queries.NewGetMergedOrdersQueryHandler(repo, drivers, fees)
		responses, err := handler.Handle(ctx, queries.NewGetMergedOrdersQuery())

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "0", responses[0].DeliveryFee.String())
		assert.Equal(t, "100", responses[0].GrandTotal.String())
	})

	t.Run("should_propagate_repository_error", func(t *testing.T) {
		repo := new(MockSnapshotRepo)
		repo.On("GetAll", ctx).Return(nil, errors.New("read error")).Once()

		handler := queries.NewGetMergedOrdersQueryHandler(repo, new(MockDriverClient), fees)
		_, err := handler.Handle(ctx, queries.NewGetMergedOrdersQuery())

		require.EqualError(t, err, "read error")
	})

	t.Run("should_reject_unconstructed_query", func(t *testing.T) {
		handler := queries.NewGetMergedOrdersQueryHandler(
			new(MockSnapshotRepo), new(MockDriverClient), fees)
		_, err := handler.Handle(ctx, queries.GetMergedOrdersQuery{})

		require.ErrorIs(t, err, queries.ErrGetMergedOrdersQueryIsNotConstructed)
	})
}
