package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zvitapp/zvit-status-engine/internal/config"
	"github.com/zvitapp/zvit-status-engine/internal/domain"
	"github.com/zvitapp/zvit-status-engine/internal/handler"
	"github.com/zvitapp/zvit-status-engine/internal/health"
	"github.com/zvitapp/zvit-status-engine/internal/infra/push"
	"github.com/zvitapp/zvit-status-engine/internal/infra/repository"
	"github.com/zvitapp/zvit-status-engine/internal/infra/statusrecorder"
	"github.com/zvitapp/zvit-status-engine/internal/observability/logging"
	"github.com/zvitapp/zvit-status-engine/internal/observability/metrics"
	"github.com/zvitapp/zvit-status-engine/internal/service/dashboard"
	groupservice "github.com/zvitapp/zvit-status-engine/internal/service/group"
	"github.com/zvitapp/zvit-status-engine/internal/service/reminder"
	"github.com/zvitapp/zvit-status-engine/internal/service/report"
	"github.com/zvitapp/zvit-status-engine/internal/service/urgent"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	logging.Setup(cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	engineMetrics, err := metrics.NewEngineMetrics()
	if err != nil {
		slog.Error("failed to initialize engine metrics", slog.String("error", err.Error()))
		return 1
	}

	recorderCfg := statusrecorder.LoadConfig()
	recorder, err := statusrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize status event recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close status event recorder", slog.String("error", err.Error()))
		}
	}()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected", slog.String("addr", cfg.Redis.Addr))

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("postgres connected")

	groupStore := repository.NewGroupStore(db)
	memberStore := repository.NewMemberStore(db)
	userStore := repository.NewUserStore(db)
	reportStore := repository.NewReportStore(db)
	responseStore := repository.NewUrgentResponseStore(db)
	dispatchGuard := repository.NewReminderGuard(redisClient)

	var gateway domain.NotificationGateway
	if cfg.Push.RelayURL == "" {
		slog.Warn("PUSH_RELAY_URL not set, push delivery disabled")
		gateway = push.NewNoopGateway()
	} else {
		gateway = push.NewClient(cfg.Push.RelayURL, cfg.Push.APIKey, cfg.Push.MaxRetries)
		slog.Info("push relay initialized", slog.String("url", cfg.Push.RelayURL))
	}

	clock := domain.SystemClock()

	urgentManager := urgent.NewManager(groupStore, memberStore, userStore, responseStore, gateway, recorder, engineMetrics)
	reportService := report.NewService(groupStore, memberStore, reportStore, urgentManager)
	groupService := groupservice.NewService(groupStore, memberStore)
	dashboardService := dashboard.NewService(groupStore, memberStore, reportStore, responseStore, urgentManager)

	ticker := reminder.NewTicker(groupStore, memberStore, gateway, dispatchGuard, recorder, engineMetrics, clock)
	go ticker.Start(ctx)

	sweeper := urgent.NewSweeper(urgentManager, cfg.Reminder.SweepInterval, clock)
	go sweeper.Start(ctx)

	statusHandler := handler.NewStatusHandler(dashboardService, clock)
	reportHandler := handler.NewReportHandler(reportService, clock)
	urgentHandler := handler.NewUrgentHandler(urgentManager, clock)
	scheduleHandler := handler.NewScheduleHandler(groupService)

	r := gin.New()
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(redisClient, db, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/groups/:groupId/statuses", statusHandler.HandleGroupStatuses)
		v1.PUT("/groups/:groupId/schedule", scheduleHandler.HandleUpdateSchedule)
		v1.POST("/groups/:groupId/urgent", urgentHandler.HandleCreate)
		v1.DELETE("/groups/:groupId/urgent", urgentHandler.HandleEnd)
		v1.POST("/reports", reportHandler.HandleSubmit)
		v1.GET("/groups/:groupId/reports", reportHandler.HandleGroupReports)
		v1.GET("/groups/:groupId/members/:userId/reports", reportHandler.HandleUserReports)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("sweep_interval", cfg.Reminder.SweepInterval),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
