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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/pleeno/pleeno/docs" // Import generated swagger docs
	appControllers "github.com/pleeno/pleeno/internal/app/controllers"
	appMigrations "github.com/pleeno/pleeno/internal/app/migrations"
	appRepos "github.com/pleeno/pleeno/internal/app/repositories"
	appRoutes "github.com/pleeno/pleeno/internal/app/routes"
	appServices "github.com/pleeno/pleeno/internal/app/services"
	"github.com/pleeno/pleeno/internal/config"
	"github.com/pleeno/pleeno/internal/db"
	appMiddleware "github.com/pleeno/pleeno/internal/middleware"
	pkgAuth "github.com/pleeno/pleeno/internal/pkg/auth"
	"github.com/pleeno/pleeno/internal/pkg/email"
	"github.com/pleeno/pleeno/internal/pkg/helpers"
	"github.com/pleeno/pleeno/internal/pkg/logger"
	"github.com/pleeno/pleeno/internal/pkg/metrics"
	"github.com/pleeno/pleeno/internal/pkg/objectstorage"
	"github.com/pleeno/pleeno/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	Services              *appServices.Services
	JWTService            *pkgAuth.JWTService
	Storage               objectstorage.Storage
	EmailService          email.EmailService
	Metrics               *metrics.Metrics
	AuthMiddleware        *appMiddleware.AuthMiddleware
	AuthController        *appControllers.AuthController
	BranchController      *appControllers.BranchController
	CollegeController     *appControllers.CollegeController
	StudentController     *appControllers.StudentController
	EnrollmentController  *appControllers.EnrollmentController
	PaymentPlanController *appControllers.PaymentPlanController
	NoteController        *appControllers.NoteController
	DocumentController    *appControllers.DocumentController
	ReportController      *appControllers.ReportController
	Logger                zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDemoData(ctx, dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	storage, err := objectstorage.NewMinioStorage(ctx, objectstorage.ConnectionInfo{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Region:    cfg.Storage.Region,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize object storage")
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	deps.Storage = storage

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.Metrics = metrics.New(prometheus.DefaultRegisterer)

	deps.Services = appServices.NewServices(deps.Repos, appServices.Dependencies{
		DB:           dbPool,
		JWTService:   deps.JWTService,
		Storage:      deps.Storage,
		EmailService: deps.EmailService,
		Metrics:      deps.Metrics,
		Logger:       lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService, lgr)
	deps.BranchController = appControllers.NewBranchController(deps.Services.BranchService)
	deps.CollegeController = appControllers.NewCollegeController(deps.Services.CollegeService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.Services.EnrollmentService)
	deps.PaymentPlanController = appControllers.NewPaymentPlanController(deps.Services.PaymentPlanService)
	deps.NoteController = appControllers.NewNoteController(deps.Services.NoteService)
	deps.DocumentController = appControllers.NewDocumentController(deps.Services.DocumentService)
	deps.ReportController = appControllers.NewReportController(deps.Services.ReportService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())
	router.Use(deps.Metrics.Middleware())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	router.GET("/metrics", metrics.Handler())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.BranchController,
		deps.CollegeController,
		deps.StudentController,
		deps.EnrollmentController,
		deps.PaymentPlanController,
		deps.NoteController,
		deps.DocumentController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
