package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "backoffice/internal/adapters/out/postgres"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_snapshots").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_Create_ReturnsIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderSnapshots())
	suite.NotNil(uow2.OrderSnapshots())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Repeated Begin must not open a nested transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsSnapshots() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createSnapshotOrder("101", kernel.SourceCallCenter)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderSnapshots().UpsertBatch(ctx, []*order.Order{testOrder})
	suite.Require().NoError(err)

	// Visible inside the transaction before commit.
	retrieved, err := uow.OrderSnapshots().Get(ctx, testOrder.Ref())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Ref(), retrieved.Ref())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderSnapshots().Get(ctx, testOrder.Ref())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Ref(), retrieved.Ref())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsSnapshots() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createSnapshotOrder("102", kernel.SourceMobile)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderSnapshots().UpsertBatch(ctx, []*order.Order{testOrder})
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderSnapshots().Get(ctx, testOrder.Ref())
	suite.Require().Error(err, "Snapshot should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransitionWorkflow() {
	ctx := context.Background()

	// Seed the snapshot outside a transaction.
	seeded := createSnapshotOrder("103", kernel.SourceCallCenter)
	seedUow := suite.factory.Create()
	err := seedUow.OrderSnapshots().UpsertBatch(ctx, []*order.Order{seeded})
	suite.Require().NoError(err)

	// Transition it inside a transaction the way the command handler does.
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	current, err := uow.OrderSnapshots().Get(ctx, seeded.Ref())
	suite.Require().NoError(err)

	err = current.TransitionTo(order.Preparing)
	suite.Require().NoError(err)

	err = uow.OrderSnapshots().Update(ctx, current)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderSnapshots().Get(ctx, seeded.Ref())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrieved.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createSnapshotOrder("201", kernel.SourceCallCenter)
	order2 := createSnapshotOrder("202", kernel.SourceCallCenter)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderSnapshots().UpsertBatch(ctx, []*order.Order{order1}))
	suite.Require().NoError(uow2.OrderSnapshots().UpsertBatch(ctx, []*order.Order{order2}))

	_, err := uow1.OrderSnapshots().Get(ctx, order1.Ref())
	suite.Require().NoError(err, "UOW1 should see its own snapshot")

	_, err = uow1.OrderSnapshots().Get(ctx, order2.Ref())
	suite.Require().Error(err, "UOW1 should not see UOW2's uncommitted snapshot")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderSnapshots().Get(ctx, order1.Ref())
	suite.Require().NoError(err, "Committed snapshot should persist")

	_, err = newUow.OrderSnapshots().Get(ctx, order2.Ref())
	suite.Require().Error(err, "Rolled back snapshot should not persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createSnapshotOrder("301", kernel.SourceMobile)

	// Without Begin the repository writes against the main connection.
	err := uow.OrderSnapshots().UpsertBatch(ctx, []*order.Order{testOrder})
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderSnapshots().Get(ctx, testOrder.Ref())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Ref(), retrieved.Ref())
}

// createSnapshotOrder creates a valid waiting order for testing purposes.
func createSnapshotOrder(id string, source kernel.Source) *order.Order {
	ref, _ := kernel.NewOrderRef(id, source)
	item, _ := order.NewItem("p-1", "Koshary", 2, decimal.NewFromInt(25))
	testOrder, _ := order.RestoreOrder(
		ref,
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		order.Customer{ID: "cust-1", Name: "Adel", Address: "12 Tahrir Square"},
		[]order.Item{item},
		decimal.NewFromInt(50),
		2,
		order.PaymentOnDelivery,
		order.Waiting,
		nil,
	)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
