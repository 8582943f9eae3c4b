package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-habit-remind/internal/app"
	"github.com/KasumiMercury/primind-habit-remind/internal/config"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/notifier"
	"github.com/KasumiMercury/primind-habit-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-habit-remind/internal/observability/middleware"
)

// Version is set at build time with -ldflags.
var Version = "dev"

const shutdownTimeout = 30 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)

		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)

		return 1
	}

	ctx := context.Background()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)

		return 1
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to flush telemetry", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		slog.Error("failed to initialize database", "error", err)

		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)

		return 1
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize event publisher", "error", err)

		return 1
	}

	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	clock := app.NewClock(cfg.Notifier.Location)

	scheduler := notifier.NewCronScheduler(
		cfg.Notifier.Location,
		notifier.NewPublishingHandler(publisher, obs.NotificationMetrics),
	)
	scheduler.Start()

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		scheduler.Stop(stopCtx)
	}()

	reminderRepo := repository.NewReminderRepository(db)
	completionRepo := repository.NewCompletionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	channels := app.NewChannelRegistry()
	reconciler := app.NewNotificationReconciler(scheduler, channels, obs.NotificationMetrics)
	snoozer := app.NewSnoozeScheduler(scheduler, channels, clock, obs.NotificationMetrics)

	reminderUseCase := app.NewReminderUseCase(reminderRepo, reconciler, clock)
	completionUseCase := app.NewCompletionUseCase(reminderRepo, completionRepo, clock)
	notificationUseCase := app.NewNotificationUseCase(reminderRepo, completionRepo, snoozer, clock)
	statsUseCase := app.NewStatsUseCase(reminderRepo, completionRepo, categoryRepo, clock)
	categoryUseCase := app.NewCategoryUseCase(categoryRepo)

	rehydrateCtx := logging.WithModule(ctx, logging.ModuleNotification)
	if _, err := reminderUseCase.Rehydrate(rehydrateCtx); err != nil {
		slog.ErrorContext(rehydrateCtx, "failed to rehydrate notifications", "error", err)

		return 1
	}

	router := setupRouter(obs, routes{
		reminder:     handler.NewReminderHandler(reminderUseCase, completionUseCase, notificationUseCase),
		notification: handler.NewNotificationHandler(notificationUseCase, reminderUseCase),
		stats:        handler.NewStatsHandler(statsUseCase),
		category:     handler.NewCategoryHandler(categoryUseCase),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server",
			"address", cfg.Server.Address(),
			"version", Version,
			"timezone", cfg.Notifier.Location.String(),
		)

		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)

			return 1
		}

		slog.Info("server exited properly")

		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}

		slog.Error("server exited with error", "error", err)

		return 1
	}
}

func initDatabase(cfg config.DatabaseConfig, level slog.Level) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.SlowThreshold, level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

type routes struct {
	reminder     *handler.ReminderHandler
	notification *handler.NotificationHandler
	stats        *handler.StatsHandler
	category     *handler.CategoryHandler
}

func setupRouter(obs *observability.Resources, r routes) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Gin(middleware.GinConfig{
			SkipPaths:   []string{"/health"},
			TracerName:  observability.TracerName(),
			HTTPMetrics: obs.HTTPMetrics,
		}),
		middleware.PanicRecoveryGin(),
		gin.Recovery(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	r.reminder.RegisterRoutes(v1)
	r.notification.RegisterRoutes(v1)
	r.stats.RegisterRoutes(v1)
	r.category.RegisterRoutes(v1)

	return router
}
