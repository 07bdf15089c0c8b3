package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/drosales/campusq/internal/app/controllers"
	appMigrations "github.com/drosales/campusq/internal/app/migrations"
	appRepos "github.com/drosales/campusq/internal/app/repositories"
	mongoStore "github.com/drosales/campusq/internal/app/repositories/mongo"
	postgresStore "github.com/drosales/campusq/internal/app/repositories/postgres"
	appRoutes "github.com/drosales/campusq/internal/app/routes"
	appServices "github.com/drosales/campusq/internal/app/services"
	"github.com/drosales/campusq/internal/config"
	"github.com/drosales/campusq/internal/db"
	appMiddleware "github.com/drosales/campusq/internal/middleware"
	"github.com/drosales/campusq/internal/pkg/logger"
	"github.com/drosales/campusq/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store              appRepos.Store
	QueryService       *appServices.QueryService
	CatalogService     *appServices.CatalogService
	QueryController    *appControllers.QueryController
	AcademicController *appControllers.AcademicController
	CatalogController  *appControllers.CatalogController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore connects the configured backing store and returns it along
// with the function that releases the connection.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		return setupPostgres(cfg, lgr)
	case config.DriverMongo:
		return setupMongo(cfg, lgr)
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %q", cfg.Database.Driver)
	}
}

func setupPostgres(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, func(), error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}
	dbPool := database.Pool

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
			// Seeding failure is not fatal
			lgr.Error().Err(err).Msg("Failed to seed sample data, proceeding anyway...")
		}
	}

	return postgresStore.NewStore(dbPool), database.Close, nil
}

func setupMongo(cfg *config.Config, lgr zerolog.Logger) (appRepos.Store, func(), error) {
	lgr.Info().Msg("Establishing MongoDB connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, nil, err
	}

	return mongoStore.NewStore(database.Database), database.Close, nil
}

// BuildDependencies initializes services and controllers on top of the store.
func BuildDependencies(store appRepos.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Store:  store,
		Logger: lgr,
	}

	deps.QueryService = appServices.NewQueryService(store)
	deps.CatalogService = appServices.NewCatalogService(store)

	deps.QueryController = appControllers.NewQueryController(deps.QueryService)
	deps.AcademicController = appControllers.NewAcademicController(deps.QueryService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.AllowedOrigins()))

	appRoutes.SetupRouter(router,
		deps.QueryController,
		deps.AcademicController,
		deps.CatalogController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
