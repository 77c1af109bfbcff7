package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/infrastructure/database"
	"go-doctor-directory/internal/infrastructure/metrics"
	repo "go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	Store       *service.DoctorStore
	Server      *http.Server

	cancelLoad context.CancelFunc
}

// New wires every layer. Only the backends selected by configuration are
// connected; a selected backend that is unreachable fails startup.
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log = setupLogger(cfg.Log)
	app.Log.Info("Configuration loaded successfully")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	customValidator := validator.NewValidator()

	source, err := app.newDoctorSource(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	policy, err := service.NewAvailabilityPolicy(cfg.Source.AvailabilityPolicy, cfg.Source.AvailabilitySeed)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to configure availability: %w", err)
	}

	sessionRepo, err := app.newSessionRepository(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Store = service.NewDoctorStore(source, policy, customValidator, app.Log, appMetrics)

	directoryUsecase := usecase.NewDirectoryUsecase(app.Log, app.Store)
	sessionUsecase := usecase.NewBrowseSessionUsecase(app.Log, sessionRepo, app.Store, appMetrics)

	doctorHandler := handler.NewDoctorHandler(directoryUsecase)
	sessionHandler := handler.NewSessionHandler(sessionUsecase, customValidator)

	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(app.Log, appMetrics)

	router := deliveryHttp.NewRouter(
		doctorHandler,
		sessionHandler,
		corsMiddleware,
		loggingMiddleware,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func (app *App) newDoctorSource(cfg *config.Config) (repository.DoctorSource, error) {
	switch cfg.Source.Type {
	case "http":
		app.Log.WithField("url", cfg.Source.URL).Info("Using HTTP doctor source")
		return repo.NewDoctorHTTPSource(cfg.Source.URL, cfg.Source.Timeout), nil
	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		return repo.NewDoctorPostgresSource(db), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

func (app *App) newSessionRepository(cfg *config.Config) (repository.BrowseSessionRepository, error) {
	switch cfg.Session.Store {
	case "memory":
		return repo.NewBrowseSessionMemoryRepository(), nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := cache.NewRedisClient(ctx, cfg.Redis, app.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = client
		return repo.NewBrowseSessionRedisRepository(client, cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

// Run starts the directory load and the HTTP server, then blocks until a
// shutdown signal. Requests served before the load completes see the
// loading status.
func (app *App) Run() {
	loadCtx, cancel := context.WithTimeout(context.Background(), app.Config.Source.Timeout)
	app.cancelLoad = cancel
	go func() {
		defer cancel()
		if err := app.Store.Load(loadCtx); err != nil {
			app.Log.Warn("Doctor directory unavailable, serving empty listing")
		}
	}()

	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

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

// Close releases the load context and any backend connections.
func (app *App) Close() {
	if app.cancelLoad != nil {
		app.cancelLoad()
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
