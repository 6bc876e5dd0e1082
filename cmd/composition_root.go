package cmd

import (
	"log/slog"
	"os"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/audit"
	"backoffice/internal/adapters/out/backend"
	"backoffice/internal/adapters/out/geo"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
	"backoffice/internal/jobs"
	"backoffice/internal/pkg/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	sessionStore  *session.Store
	sources       []ports.OrderSource
	driverClient  ports.DriverClient
	financeClient ports.FinanceClient
	feeResolver   services.DeliveryFeeResolver
	geoResolver   *services.GeoResolver

	// The transition handler serializes in-flight work per order, so a
	// single instance serves all requests.
	transitionOrderHandler *commands.TransitionOrderCommandHandler
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	threshold, err := decimal.NewFromString(configs.FreeDeliveryThreshold)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	sessionStore := session.NewStore()
	sessionStore.Login(configs.BackendToken, configs.BackendRole)

	sources := []ports.OrderSource{
		backend.NewCallCenterOrderClient(configs.BackendBaseURL, sessionStore),
		backend.NewMobileOrderClient(configs.BackendBaseURL, sessionStore),
	}
	driverClient := backend.NewDriverHTTPClient(configs.BackendBaseURL, sessionStore)
	financeClient := backend.NewFinanceHTTPClient(configs.BackendBaseURL, sessionStore)
	geocoder := geo.NewHTTPGeocoder(configs.GeocoderBaseURL)

	root := &CompositionRoot{
		configs:       configs,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:        logger,
		sessionStore:  sessionStore,
		sources:       sources,
		driverClient:  driverClient,
		financeClient: financeClient,
		feeResolver:   services.NewDeliveryFeeResolver(threshold),
		geoResolver:   services.NewGeoResolver(geocoder, logger),
	}

	root.transitionOrderHandler = commands.NewTransitionOrderCommandHandler(
		root.orderUoWFactory(),
		sources,
		driverClient,
		audit.NewSlogAuditor(logger),
	)

	return root, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateSyncOrdersCommandHandler() commands.SyncOrdersCommandHandler {
	return commands.NewSyncOrdersCommandHandler(c.orderUoWFactory(), c.sources, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() *commands.TransitionOrderCommandHandler {
	return c.transitionOrderHandler
}

func (c *CompositionRoot) CreateGetMergedOrdersQueryHandler() queries.GetMergedOrdersQueryHandler {
	return queries.NewGetMergedOrdersQueryHandler(c.snapshotReader(), c.driverClient, c.feeResolver)
}

func (c *CompositionRoot) CreateGetOrderLocationQueryHandler() queries.GetOrderLocationQueryHandler {
	return queries.NewGetOrderLocationQueryHandler(c.snapshotReader(), c.geoResolver)
}

func (c *CompositionRoot) CreateGetWeeklyReportQueryHandler() queries.GetWeeklyReportQueryHandler {
	return queries.NewGetWeeklyReportQueryHandler(c.financeClient)
}

func (c *CompositionRoot) CreateGetPeriodReportQueryHandler() queries.GetPeriodReportQueryHandler {
	return queries.NewGetPeriodReportQueryHandler(c.financeClient)
}

func (c *CompositionRoot) CreateGetTodayReportQueryHandler() queries.GetTodayReportQueryHandler {
	return queries.NewGetTodayReportQueryHandler(c.financeClient)
}

func (c *CompositionRoot) CreateGetTopSellingQueryHandler() queries.GetTopSellingQueryHandler {
	return queries.NewGetTopSellingQueryHandler(c.snapshotReader())
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.driverClient)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateTransitionOrderCommandHandler(),
		c.CreateGetMergedOrdersQueryHandler(),
		c.CreateGetOrderLocationQueryHandler(),
		c.CreateGetWeeklyReportQueryHandler(),
		c.CreateGetPeriodReportQueryHandler(),
		c.CreateGetTodayReportQueryHandler(),
		c.CreateGetTopSellingQueryHandler(),
		c.CreateGetDriversQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSyncOrdersCommandHandler(), c.configs.OrderSyncSchedule, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// snapshotReader yields a repository bound to the main connection for
// read-only queries that need no transaction.
func (c *CompositionRoot) snapshotReader() ports.OrderSnapshotRepository {
	return c.uowFactory.Create().OrderSnapshots()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
