package main

import (
	"context"
	"database/sql"
	"fmt"
	"fulfillment/cmd"
	"fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/progressrepo"
	"fulfillment/internal/adapters/out/postgres/statusrepo"
	"fulfillment/internal/adapters/out/postgres/steprepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/generated/servers"
	"log/slog"
	nethttp "net/http"
	"os"

	_ "fulfillment/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := setupDatabase(configs)
	if err != nil {
		logger.Error("Database setup failed", "error", err)
		os.Exit(1)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)

	if configs.StrictStatusCatalog {
		if err = app.ValidateStatusCatalog(ctx); err != nil {
			logger.Error("Status catalog validation failed", "error", err)
			os.Exit(1)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Job startup failed", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		StrictStatusCatalog: goDotEnvVariable("STRICT_STATUS_CATALOG") == "true",
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

func setupDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&statusrepo.StatusDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&steprepo.StepDefinitionDTO{},
		&progressrepo.ProgressRecordDTO{},
	)
	if err != nil {
		return nil, err
	}

	if err = steprepo.Seed(context.Background(), gormDB); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateApplyWorkflowTransitionCommandHandler(),
		app.CreateStepsForRoleQueryHandler(),
		app.CreateProgressForUserQueryHandler(),
		app.CreateProgressForOrderQueryHandler(),
		app.CreateTimelineForOrderQueryHandler(),
		app.CreateIncompleteUsersQueryHandler(),
		app.CreateRoleStatsQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	doc, err := http.LoadOpenAPISpec(ctx)
	if err != nil {
		logger.Error("OpenAPI contract failed validation", "error", err)
		os.Exit(1)
	}
	http.RegisterOpenAPIRoute(e, doc)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
