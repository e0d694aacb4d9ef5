package main

import (
	"database/sql"
	"fmt"

	"ordertrack/cmd"
	_ "ordertrack/docs"
	httpadapter "ordertrack/internal/adapters/in/http"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/generated/servers"
	"ordertrack/internal/pkg/health"
	"ordertrack/internal/pkg/logger"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()

	if err := logger.Initialize(config.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	var gormDB *gorm.DB
	if config.StorageMode == cmd.StorageModePostgres {
		gormDB = mustConnectPostgres(config)
	}

	app := cmd.NewCompositionRoot(config, gormDB)
	startWebServer(&app, config.HTTPPort)
}

func getConfig() cmd.Config {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := env.Parse(&config); err != nil {
		log.Fatalf("Error parsing configuration: %v", err)
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Error in configuration: %v", err)
	}

	return config
}

// mustConnectPostgres opens the database, applies pending migrations over a
// plain database/sql connection, then hands GORM the same DSN.
func mustConnectPostgres(config cmd.Config) *gorm.DB {
	migrationDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = postgres.RunMigrations(migrationDB); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}
	if err = migrationDB.Close(); err != nil {
		log.Fatalf("Error closing migration connection: %v", err)
	}

	gormDB, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	probe := health.NewProbe()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		probe,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(httpadapter.RequestLogger())

	servers.RegisterHandlers(e, server)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	probe.Ready()
	zap.L().Info("starting http server", zap.String("port", port))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
