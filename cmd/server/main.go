package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"fittracker/backend/internal/api"
	"fittracker/backend/internal/config"
	"fittracker/backend/internal/logging"
	"fittracker/backend/internal/planner"
	"fittracker/backend/internal/predictor"
	"fittracker/backend/internal/repository"
	"fittracker/backend/internal/repository/memory"
	"fittracker/backend/internal/repository/mongo"
	"fittracker/backend/internal/repository/proxy"
	"fittracker/backend/internal/service"
	"fittracker/backend/internal/storage"
	"fittracker/backend/internal/telemetry/metrics"
)

// @title FitTracker API
// @version 1.0
// @description Workouts, weekly workout plans and streak statistics.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.WithField("backend", cfg.Store.Backend).Info("starting fittracker server")

	gin.SetMode(cfg.Server.GinMode)

	// --- Metrics ---
	var metricsParams api.MetricsParams
	if cfg.Metrics.Enabled {
		registry := metrics.NewServerRegistry("fittracker", cfg.Store.Backend)
		metricsParams = api.MetricsParams{
			Manager:  metrics.NewManager("fittracker", "server", registry),
			Registry: registry,
			Path:     cfg.Metrics.Path,
		}
	}
	metricsManager := metricsParams.Manager

	// --- Backing store ---
	ctx := context.Background()
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("could not open %s store: %v", cfg.Store.Backend, err)
	}
	defer backend.close()

	// --- Object storage ---
	var objectStorage storage.ObjectStorage
	if cfg.S3.Enabled {
		objectStorage, err = storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Info("s3 disabled, workout exports are off")
	}

	// --- Services ---
	services := api.Services{
		Workouts: service.NewWorkoutService(backend.store, metricsManager),
		WorkoutPlans: service.NewWorkoutPlanService(
			backend.store,
			planner.NewClient(cfg.Planner.URL, cfg.Planner.Timeout, metricsManager),
			metricsManager,
		),
		UserStats: service.NewUserStatsService(backend.store),
		Exports:   service.NewExportService(backend.store, objectStorage, cfg.S3.URLExpiry, metricsManager),
		Auth:      service.NewAuthService(backend.users, cfg.JWT.Secret, cfg.JWT.Expiration),
		Predictor: predictor.NewClient(cfg.Predictor.URL, cfg.Predictor.Timeout, metricsManager),
	}

	router := api.NewRouter(services, metricsParams)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the requests it is currently handling
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}

type backend struct {
	store repository.Store
	users repository.UserRepository
	close func()
}

// openBackend builds the store selected by store.backend. Accounts live in
// mongo for the mongo backend and in memory otherwise.
func openBackend(ctx context.Context, cfg config.Config) (*backend, error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, err := mongo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		db := client.Database(cfg.Database.Name)

		indexCtx, cancel := context.WithTimeout(ctx, time.Minute)
		mongo.EnsureIndexes(indexCtx, db)
		cancel()

		log.WithField("database", cfg.Database.Name).Info("mongodb connection established")
		return &backend{
			store: mongo.NewStore(db),
			users: mongo.NewMongoUserRepository(db),
			close: func() {
				log.Info("disconnecting mongodb...")
				if err := mongo.DisconnectDB(client); err != nil {
					log.WithError(err).Error("failed to disconnect mongodb")
				}
			},
		}, nil

	case config.BackendProxy:
		log.WithField("upstream", cfg.Proxy.BaseURL).Info("forwarding store calls")
		return &backend{
			store: proxy.NewStore(cfg.Proxy.BaseURL, cfg.Proxy.Timeout),
			users: memory.NewUserRepository(),
			close: func() {},
		}, nil

	default:
		var opts []memory.Option
		if cfg.Store.Seed {
			opts = append(opts, memory.WithSeedData())
		}
		return &backend{
			store: memory.NewStore(opts...),
			users: memory.NewUserRepository(),
			close: func() {},
		}, nil
	}
}
