package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"backoffice/cmd"
	_ "backoffice/docs"
	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title			Restaurant Back Office API
// @version		1.0
// @description	Merged order management, delivery transitions and financial reports over two upstream order sources.
// @BasePath		/api/v1
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	runStartupSync(app)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		BackendBaseURL:        goDotEnvVariable("BACKEND_BASE_URL"),
		BackendToken:          goDotEnvVariable("BACKEND_TOKEN"),
		BackendRole:           goDotEnvVariable("BACKEND_ROLE"),
		GeocoderBaseURL:       goDotEnvVariable("GEOCODER_BASE_URL"),
		FreeDeliveryThreshold: goDotEnvVariable("FREE_DELIVERY_THRESHOLD"),
		OrderSyncSchedule:     goDotEnvVariable("ORDER_SYNC_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// runStartupSync fills the snapshot store before the first request; a
// failure is not fatal, the cron job retries on its schedule.
func runStartupSync(app *cmd.CompositionRoot) {
	ctx := context.Background()
	handler := app.CreateSyncOrdersCommandHandler()

	if err := handler.Handle(ctx, commands.NewSyncOrdersCommand()); err != nil {
		app.Logger().WarnContext(ctx, "startup order sync failed", "error", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = httpin.NewCustomValidator()

	servers.RegisterHandlers(e, app.CreateServer())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
