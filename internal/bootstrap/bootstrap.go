package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-events-api/api/swagger"
	"github.com/noah-isme/campus-events-api/internal/handler"
	"github.com/noah-isme/campus-events-api/internal/middleware"
	"github.com/noah-isme/campus-events-api/internal/repository"
	"github.com/noah-isme/campus-events-api/internal/service"
	"github.com/noah-isme/campus-events-api/pkg/config"
	"github.com/noah-isme/campus-events-api/pkg/database"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
	"github.com/noah-isme/campus-events-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-events-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-events-api/pkg/middleware/requestid"
	"github.com/noah-isme/campus-events-api/pkg/response"
)

// SetupDatabase opens the configured store and creates the schema when enabled.
// A missing SQLite file is reported so operators know to run the seed command.
func SetupDatabase(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*sqlx.DB, error) {
	if cfg.Database.Driver == config.DriverSQLite && !database.StoreExists(cfg.Database) {
		logr.Warn("database file not found, starting with an empty store; run cmd/seed to load sample data",
			zap.String("path", cfg.Database.Path))
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.CreateSchema(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	logr.Info("database ready", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *sqlx.DB, logr *zap.Logger) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}
	validate := validator.New()

	registrationRepo := repository.NewRegistrationRepository(db)

	collegeSvc := service.NewCollegeService(repository.NewCollegeRepository(db), validate, logr)
	studentSvc := service.NewStudentService(repository.NewStudentRepository(db), validate, logr)
	eventSvc := service.NewEventService(repository.NewEventRepository(db), validate, logr)
	registrationSvc := service.NewRegistrationService(registrationRepo, validate, metrics, logr)
	attendanceSvc := service.NewAttendanceService(repository.NewAttendanceRepository(db), registrationRepo, validate, metrics, logr)
	feedbackSvc := service.NewFeedbackService(repository.NewFeedbackRepository(db), validate, metrics, logr)
	reportSvc := service.NewReportService(repository.NewReportRepository(db), metrics, logr)
	exportSvc := service.NewExportService(reportSvc, nil, nil, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "not found"))
	})

	handler.RegisterRoutes(r, handler.Handlers{
		Colleges:      handler.NewCollegeHandler(collegeSvc),
		Students:      handler.NewStudentHandler(studentSvc),
		Events:        handler.NewEventHandler(eventSvc),
		Participation: handler.NewParticipationHandler(registrationSvc, attendanceSvc, feedbackSvc),
		Reports:       handler.NewReportHandler(reportSvc, exportSvc),
		Metrics:       handler.NewMetricsHandler(metrics, db),
	}, metrics != nil)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
