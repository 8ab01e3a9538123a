package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediagenda/config"
	deliveryHttp "mediagenda/internal/delivery/http"
	"mediagenda/internal/delivery/http/handler"
	"mediagenda/internal/delivery/http/middleware"
	"mediagenda/internal/gateway"
	"mediagenda/internal/infrastructure/cache"
	"mediagenda/internal/infrastructure/database"
	"mediagenda/internal/mediator"
	"mediagenda/internal/repository"
	"mediagenda/internal/service"
	"mediagenda/pkg/jwt"
	"mediagenda/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Mediator    *mediator.Mediator
	AuthService *service.AuthService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = app.initializeServer()

	return app, nil
}

func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func (app *App) initializeServer() *http.Server {
	cfg := app.Config
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Remote gateway: collection stores plus the credential auth API.
	store := gateway.Store{
		Patients:        repository.NewPatientRepository(app.DB),
		Doctors:         repository.NewDoctorRepository(app.DB),
		Appointments:    repository.NewAppointmentRepository(app.DB),
		SchedulingLists: repository.NewSchedulingListRepository(app.DB),
		ListMembers:     repository.NewListMemberRepository(app.DB),
		Profiles:        repository.NewProfileRepository(app.DB),
		Settings:        repository.NewAppSettingRepository(app.DB),
	}

	authService := service.NewAuthService(
		repository.NewCredentialRepository(app.DB),
		store.Profiles,
		jwtService,
		app.RedisClient,
		log,
		cfg.Mediator.SessionEventBuffer,
	)
	app.AuthService = authService

	// The mediator owns the in-memory mirrors; its event loop consumes the
	// gateway's session notifications.
	med := mediator.New(cfg.Mediator, log, store, authService)
	med.Start()
	app.Mediator = med

	authHandler := handler.NewAuthHandler(med, authService, customValidator)
	patientHandler := handler.NewPatientHandler(med, customValidator)
	doctorHandler := handler.NewDoctorHandler(med, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(med, customValidator)
	schedulingListHandler := handler.NewSchedulingListHandler(med, customValidator)
	userHandler := handler.NewUserHandler(med)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, app.RedisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		appointmentHandler,
		schedulingListHandler,
		userHandler,
		authMiddleware,
		corsMiddleware,
	)

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: router.Setup(),
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the mediator event loop and closes all connections.
func (app *App) Close() {
	if app.Mediator != nil {
		app.Mediator.Stop()
	}

	if app.AuthService != nil {
		app.AuthService.Close()
	}

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
