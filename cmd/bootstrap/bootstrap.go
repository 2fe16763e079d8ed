package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-tracker/config"
	deliveryHttp "health-tracker/internal/delivery/http"
	"health-tracker/internal/delivery/http/handler"
	"health-tracker/internal/delivery/http/middleware"
	"health-tracker/internal/infrastructure/cache"
	"health-tracker/internal/infrastructure/database"
	"health-tracker/internal/repository"
	"health-tracker/internal/service"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/jwt"
	"health-tracker/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// NewLogger configures a JSON logrus logger; unknown levels fall back to info
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	healthRecordRepo := repository.NewHealthRecordRepository()
	foodRepo := repository.NewFoodRepository()
	dietRecordRepo := repository.NewDietRecordRepository()
	exerciseTypeRepo := repository.NewExerciseTypeRepository()
	exerciseRecordRepo := repository.NewExerciseRecordRepository()
	medicationTypeRepo := repository.NewMedicationTypeRepository()
	waterIntakeRepo := repository.NewWaterIntakeRepository()
	healthGoalRepo := repository.NewHealthGoalRepository()
	healthReportRepo := repository.NewHealthReportRepository()
	reminderRepo := repository.NewReminderRepository()
	shareRepo := repository.NewShareRepository()
	likeRepo := repository.NewLikeRepository()
	commentRepo := repository.NewCommentRepository()
	contentRepo := repository.NewContentRepository()

	// Services
	auditService := service.NewAuditService(log, auditLogRepo)
	tokenStore := service.NewRedisTokenStore(redisClient, log)
	contentResolver := service.NewContentResolver(log, contentRepo, cfg.Feature.ShareValidationBypass)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService)
	healthRecordUsecase := usecase.NewHealthRecordUsecase(db, log, healthRecordRepo, exerciseTypeRepo, medicationTypeRepo, auditService)
	dietUsecase := usecase.NewDietUsecase(db, log, foodRepo, dietRecordRepo, auditService)
	exerciseUsecase := usecase.NewExerciseUsecase(db, log, exerciseTypeRepo, exerciseRecordRepo, auditService)
	medicationTypeUsecase := usecase.NewMedicationTypeUsecase(db, log, medicationTypeRepo)
	waterIntakeUsecase := usecase.NewWaterIntakeUsecase(db, log, waterIntakeRepo, auditService)
	healthGoalUsecase := usecase.NewHealthGoalUsecase(db, log, healthGoalRepo, auditService)
	analysisUsecase := usecase.NewAnalysisUsecase(db, log, userRepo, healthRecordRepo, dietRecordRepo, foodRepo, exerciseRecordRepo, exerciseTypeRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, healthRecordRepo, cfg.Feature.ReportSampleData)
	healthReportUsecase := usecase.NewHealthReportUsecase(db, log, healthReportRepo, healthRecordRepo, dietRecordRepo, auditService, cfg.Feature.ReportSampleData)
	reminderUsecase := usecase.NewReminderUsecase(db, log, reminderRepo, healthRecordRepo, auditService)
	socialUsecase := usecase.NewSocialUsecase(db, log, shareRepo, likeRepo, commentRepo, contentResolver, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	handlers := deliveryHttp.Handlers{
		Auth:           handler.NewAuthHandler(authUsecase, customValidator),
		HealthRecord:   handler.NewHealthRecordHandler(healthRecordUsecase, customValidator),
		Diet:           handler.NewDietHandler(dietUsecase, customValidator),
		Exercise:       handler.NewExerciseHandler(exerciseUsecase, customValidator),
		MedicationType: handler.NewMedicationTypeHandler(medicationTypeUsecase, customValidator),
		WaterIntake:    handler.NewWaterIntakeHandler(waterIntakeUsecase, customValidator),
		HealthGoal:     handler.NewHealthGoalHandler(healthGoalUsecase, customValidator),
		Analysis:       handler.NewAnalysisHandler(analysisUsecase),
		Dashboard:      handler.NewDashboardHandler(dashboardUsecase),
		HealthReport:   handler.NewHealthReportHandler(healthReportUsecase),
		Reminder:       handler.NewReminderHandler(reminderUsecase, customValidator),
		Social:         handler.NewSocialHandler(socialUsecase, customValidator),
		AuditLog:       handler.NewAuditLogHandler(auditLogUsecase),
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins...)

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	router := deliveryHttp.NewRouter(handlers, authMiddleware, corsMiddleware, metricsPath)

	log.WithFields(logrus.Fields{
		"share_validation_bypass": cfg.Feature.ShareValidationBypass,
		"report_sample_data":      cfg.Feature.ReportSampleData,
	}).Info("Feature flags")

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
