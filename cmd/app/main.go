package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	_ "fulfillment/docs"
	http_adapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/carrierrepo"
	"fulfillment/internal/adapters/out/postgres/fulfillmentrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// defaultCarriers is the catalog seeded on startup. Names must match what
// sellers submit on carrier assignment.
var defaultCarriers = map[string]int{
	"Aras Kargo":    2,
	"Yurtici Kargo": 3,
	"MNG Kargo":     3,
	"PTT Kargo":     4,
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migrateDatabase(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	if err := seedCarriers(context.Background(), app.CreateUnitOfWorkFactory()); err != nil {
		log.Fatalf("Failed to seed carrier catalog: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateNotifyOverdueDeliveriesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
		RedisHost:               goDotEnvVariable("REDIS_HOST"),
		RedisPassword:           goDotEnvVariable("REDIS_PASSWORD"),
		TrackingCodePrefix:      goDotEnvVariable("TRACKING_CODE_PREFIX"),
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
}

func migrateDatabase(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&fulfillmentrepo.UnitDTO{},
		&fulfillmentrepo.HistoryEntryDTO{},
		&carrierrepo.CarrierDTO{},
	)
}

// seedCarriers registers the default carrier catalog, skipping names that
// already exist.
func seedCarriers(ctx context.Context, factory ports.UnitOfWorkFactory) error {
	repo := factory.Create().CarrierRepository()

	for name, days := range defaultCarriers {
		_, err := repo.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		entry, err := carrier.NewCarrier(kernel.NewUUID(), name, days)
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := http_adapter.NewServer(
		app.CreateCreateFulfillmentsCommandHandler(),
		app.CreateAssignCarrierCommandHandler(),
		app.CreateUpdateStatusCommandHandler(),
		app.CreateTrackByCodeQueryHandler(),
		app.CreateGetBuyerFulfillmentsQueryHandler(),
		app.CreateGetSellerFulfillmentsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
