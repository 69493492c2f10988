package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/volunteerhub/volunteerhub/internal/app/controllers"
	appMigrations "github.com/volunteerhub/volunteerhub/internal/app/migrations"
	appRepos "github.com/volunteerhub/volunteerhub/internal/app/repositories"
	appRoutes "github.com/volunteerhub/volunteerhub/internal/app/routes"
	appServices "github.com/volunteerhub/volunteerhub/internal/app/services"
	"github.com/volunteerhub/volunteerhub/internal/config"
	"github.com/volunteerhub/volunteerhub/internal/db"
	appMiddleware "github.com/volunteerhub/volunteerhub/internal/middleware"
	pkgAuth "github.com/volunteerhub/volunteerhub/internal/pkg/auth"
	"github.com/volunteerhub/volunteerhub/internal/pkg/helpers"
	"github.com/volunteerhub/volunteerhub/internal/pkg/logger"
	"github.com/volunteerhub/volunteerhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	Services               *appServices.Services
	Dispatcher             *appServices.OutboxDispatcher
	AuthController         *appControllers.AuthController
	EventController        *appControllers.EventController
	WorkflowController     *appControllers.WorkflowController
	VolunteerController    *appControllers.VolunteerController
	NotificationController *appControllers.NotificationController
	AdminController        *appControllers.AdminController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(),
		database.Pool, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, lgr); err != nil {
		// The API still serves volunteers without the admin account
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, database, deps.JWTService, lgr)

	deps.Dispatcher = appServices.NewOutboxDispatcher(
		deps.Repos.OutboxRepository,
		deps.Repos.NotificationRepository,
		cfg.DispatcherInterval(),
		cfg.Dispatcher.BatchSize,
		lgr.With().Str("service", "dispatcher").Logger(),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.EventController = appControllers.NewEventController(deps.Services.EventService, deps.Services.MatchingService)
	deps.WorkflowController = appControllers.NewWorkflowController(deps.Services.WorkflowService, deps.Services.ReviewService)
	deps.VolunteerController = appControllers.NewVolunteerController(deps.Services.VolunteerService)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.NotificationService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService)

	return deps, nil
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
	router.Use(appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.WorkflowController,
		deps.VolunteerController,
		deps.NotificationController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
