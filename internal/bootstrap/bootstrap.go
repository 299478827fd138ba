package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/researchdesk/internal/app/controllers"
	appMigrations "github.com/yigit/researchdesk/internal/app/migrations"
	appRepos "github.com/yigit/researchdesk/internal/app/repositories"
	appRoutes "github.com/yigit/researchdesk/internal/app/routes"
	appServices "github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/config"
	"github.com/yigit/researchdesk/internal/db"
	appMiddleware "github.com/yigit/researchdesk/internal/middleware"
	"github.com/yigit/researchdesk/internal/pkg/logger"
	"github.com/yigit/researchdesk/internal/seed"
	schema "github.com/yigit/researchdesk/migrations"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.Path()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection pool.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database.Pool, nil
}

// MigrateSchema applies the embedded schema files that have not run yet.
func MigrateSchema(ctx context.Context, dbPool *pgxpool.Pool) error {
	if err := appMigrations.NewMigrator(dbPool).MigrateFS(ctx, schema.FS); err != nil {
		return fmt.Errorf("database migrations failed: %w", err)
	}
	return nil
}

// SeedLookups creates the default departments, journals and research areas.
func SeedLookups(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	return seed.CreateDefaultData(ctx, appRepos.NewRepositories(dbPool), lgr)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos)
	deps.Controllers = NewControllers(deps.Services)

	return deps
}

// NewControllers builds every controller over its service
func NewControllers(s *appServices.Services) appRoutes.Controllers {
	return appRoutes.Controllers{
		Professor:    appControllers.NewProfessorController(s.ProfessorService),
		Student:      appControllers.NewStudentController(s.StudentService),
		Project:      appControllers.NewProjectController(s.ProjectService),
		Publication:  appControllers.NewPublicationController(s.PublicationService),
		Department:   appControllers.NewDepartmentController(s.DepartmentService),
		Journal:      appControllers.NewJournalController(s.JournalService),
		ResearchArea: appControllers.NewResearchAreaController(s.ResearchAreaService),
		Association:  appControllers.NewAssociationController(s.AssociationService),
		Analytics:    appControllers.NewAnalyticsController(s.AnalyticsService),
	}
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
	router.Use(appMiddleware.RequestLogger(), appMiddleware.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
