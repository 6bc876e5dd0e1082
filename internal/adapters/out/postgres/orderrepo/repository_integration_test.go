package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(ref kernel.OrderRef, aggregate any) {
	m.Called(ref, aggregate)
}

// OrderSnapshotRepositoryIntegrationTestSuite provides integration tests for
// the snapshot repository using a PostgreSQL container to verify persistence
// behavior, including the composite (id, source) identity.
type OrderSnapshotRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderSnapshotRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_snapshots").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderSnapshotRepository(suite.db, suite.tracker)
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestUpsertBatch_NewOrders_Persists() {
	ctx := context.Background()

	first := suite.createTestOrder("101", kernel.SourceCallCenter, order.Waiting, nil)
	second := suite.createTestOrder("app-7", kernel.SourceMobile, order.Preparing, nil)

	suite.tracker.On("TrackAggregate", first.Ref(), first).Once()
	suite.tracker.On("TrackAggregate", second.Ref(), second).Once()

	err := suite.repository.UpsertBatch(ctx, []*order.Order{first, second})
	suite.Require().NoError(err)

	suite.assertSnapshotCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestUpsertBatch_SameRef_ReplacesRow() {
	ctx := context.Background()

	original := suite.createTestOrder("101", kernel.SourceCallCenter, order.Waiting, nil)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderRef"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.UpsertBatch(ctx, []*order.Order{original}))

	refreshed := suite.createTestOrder("101", kernel.SourceCallCenter, order.Preparing, nil)
	suite.Require().NoError(suite.repository.UpsertBatch(ctx, []*order.Order{refreshed}))

	suite.assertSnapshotCount(1)

	retrieved, err := suite.repository.Get(ctx, original.Ref())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestUpsertBatch_SameIDDifferentSource_KeepsBothRows() {
	ctx := context.Background()

	callcenter := suite.createTestOrder("42", kernel.SourceCallCenter, order.Waiting, nil)
	mobile := suite.createTestOrder("42", kernel.SourceMobile, order.Delivered, driverID("drv-9"))

	suite.tracker.On("TrackAggregate", callcenter.Ref(), callcenter).Once()
	suite.tracker.On("TrackAggregate", mobile.Ref(), mobile).Once()

	err := suite.repository.UpsertBatch(ctx, []*order.Order{callcenter, mobile})
	suite.Require().NoError(err)

	suite.assertSnapshotCount(2)

	fromCallcenter, err := suite.repository.Get(ctx, callcenter.Ref())
	suite.Require().NoError(err)
	suite.Equal(order.Waiting, fromCallcenter.Status())

	fromMobile, err := suite.repository.Get(ctx, mobile.Ref())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, fromMobile.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestUpsertBatch_EmptyBatch_NoOp() {
	err := suite.repository.UpsertBatch(context.Background(), nil)
	suite.Require().NoError(err)

	suite.assertSnapshotCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestOrder("101", kernel.SourceCallCenter, order.OnTheWay, driverID("drv-3"))
	suite.tracker.On("TrackAggregate", original.Ref(), original).Once()
	suite.Require().NoError(suite.repository.UpsertBatch(ctx, []*order.Order{original}))

	retrieved, err := suite.repository.Get(ctx, original.Ref())
	suite.Require().NoError(err)

	suite.Equal(original.Ref(), retrieved.Ref())
	suite.True(original.CreatedAt().Equal(retrieved.CreatedAt()))
	suite.Equal("Adel", retrieved.Customer().Name)
	suite.Equal("12 Tahrir Square", retrieved.Customer().Address)
	suite.Require().NotNil(retrieved.Customer().Lat)
	suite.InDelta(30.05, *retrieved.Customer().Lat, 0.0001)
	suite.Equal("75", retrieved.TotalPrice().String())
	suite.Equal(3, retrieved.Quantity())
	suite.Equal(order.PaymentOnDelivery, retrieved.PaymentMethod())
	suite.Equal(order.OnTheWay, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal("drv-3", *retrieved.DriverID())

	suite.Require().Len(retrieved.Items(), 1)
	item := retrieved.Items()[0]
	suite.Equal("p-1", item.ProductID())
	suite.Equal("Koshary", item.Name())
	suite.Equal(3, item.Quantity())
	suite.Equal("25", item.UnitPrice().String())
	suite.Equal("75", item.TotalPrice().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestGet_UnknownStatus_RoundTrips() {
	ctx := context.Background()

	original := suite.createTestOrder("999", kernel.SourceMobile, order.Unknown, nil)
	suite.tracker.On("TrackAggregate", original.Ref(), original).Once()
	suite.Require().NoError(suite.repository.UpsertBatch(ctx, []*order.Order{original}))

	retrieved, err := suite.repository.Get(ctx, original.Ref())
	suite.Require().NoError(err)
	suite.Equal(order.Unknown, retrieved.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ref, err := kernel.NewOrderRef("missing", kernel.SourceCallCenter)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(context.Background(), ref)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestUpdate_ExistingOrder_PersistsTransition() {
	ctx := context.Background()

	original := suite.createTestOrder("101", kernel.SourceCallCenter, order.Preparing, nil)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderRef"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.UpsertBatch(ctx, []*order.Order{original}))

	suite.Require().NoError(original.StartDelivery("drv-5"))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.Ref())
	suite.Require().NoError(err)
	suite.Equal(order.OnTheWay, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal("drv-5", *retrieved.DriverID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestOrder("missing", kernel.SourceMobile, order.Waiting, nil)

	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()

	older := suite.createTestOrderAt("1", kernel.SourceCallCenter,
		time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	newer := suite.createTestOrderAt("2", kernel.SourceCallCenter,
		time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.OrderRef"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.UpsertBatch(ctx, []*order.Order{older, newer}))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("2", all[0].Ref().ID())
	suite.Equal("1", all[1].Ref().ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) TestGetAll_EmptyStore_ReturnsEmptySlice() {
	all, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.Empty(all)
}

// createTestOrder builds a restored order with one Koshary line item and a
// Cairo address.
func (suite *OrderSnapshotRepositoryIntegrationTestSuite) createTestOrder(
	id string, source kernel.Source, status order.Status, driver *string,
) *order.Order {
	ref, err := kernel.NewOrderRef(id, source)
	suite.Require().NoError(err)

	item, err := order.NewItem("p-1", "Koshary", 3, decimal.NewFromInt(25))
	suite.Require().NoError(err)

	lat := 30.05
	lng := 31.24
	testOrder, err := order.RestoreOrder(
		ref,
		time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		order.Customer{
			ID:      "cust-1",
			Name:    "Adel",
			Address: "12 Tahrir Square",
			Lat:     &lat,
			Lng:     &lng,
		},
		[]order.Item{item},
		decimal.NewFromInt(75),
		3,
		order.PaymentOnDelivery,
		status,
		driver,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) createTestOrderAt(
	id string, source kernel.Source, createdAt time.Time,
) *order.Order {
	ref, err := kernel.NewOrderRef(id, source)
	suite.Require().NoError(err)

	item, err := order.NewItem("p-1", "Koshary", 1, decimal.NewFromInt(25))
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		ref,
		createdAt,
		order.Customer{ID: "cust-1", Name: "Adel", Address: "12 Tahrir Square"},
		[]order.Item{item},
		decimal.NewFromInt(25),
		1,
		order.PaymentCreditCard,
		order.Waiting,
		nil,
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderSnapshotRepositoryIntegrationTestSuite) assertSnapshotCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func driverID(id string) *string {
	return &id
}

func TestOrderSnapshotRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderSnapshotRepositoryIntegrationTestSuite))
}
