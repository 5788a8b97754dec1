package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/rent-portal/internal/api"
	"github.com/Dan9191/rent-portal/internal/auth"
	"github.com/Dan9191/rent-portal/internal/config"
	"github.com/Dan9191/rent-portal/internal/handler"
	"github.com/Dan9191/rent-portal/internal/integrations/backend"
	"github.com/Dan9191/rent-portal/internal/report"
	"github.com/Dan9191/rent-portal/internal/repository"
	"github.com/Dan9191/rent-portal/internal/service"
	"github.com/Dan9191/rent-portal/internal/utils"
	"github.com/Dan9191/rent-portal/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const reminderSweepTimeout = 10 * time.Minute

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf("Server failed: %v", err)
		stop()
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

// run serves until ctx is cancelled. Every resource it opens is released before it returns.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	// Backend and reports
	backendClient := backend.NewClient(cfg, logger)
	b := api.New(backendClient)
	aggregator := report.NewAggregator(b.Leases, b.RentSchedules, logger,
		report.WithConcurrency(cfg.ReportConcurrency),
		report.WithCurrency(cfg.ReportCurrency),
	)

	// Token revocation
	var revocations auth.RevocationList = auth.NewMemoryRevocations()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}
		revocations = auth.NewRedisRevocations(rdb)
		logger.Infof("Using redis revocation list at %s", cfg.RedisAddr)
	}
	verifier := auth.NewVerifier(cfg.JWTSecret, revocations)

	// Reminder sweep
	if cfg.RemindersEnabled() {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}

		c, err := startReminders(cfg, db, aggregator, logger)
		if err != nil {
			return fmt.Errorf("failed to start reminder sweep: %w", err)
		}
		defer c.Stop()
	} else {
		logger.Info("Reminder sweep disabled")
	}

	// Setup router
	h := handler.NewHandler(handler.Deps{
		Auth:          b.Auth,
		Notifications: b.Notifications,
		Conversations: b.Conversations,
		Maintenance:   b.Maintenance,
		Reports:       aggregator,
		Verifier:      verifier,
		Log:           logger,
	})
	r := handler.NewRouter(h)

	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID", "X-Report-Failed-Leases", "X-Report-Leases-Unavailable"},
		AllowCredentials: true,
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      co.Handler(r),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func startReminders(cfg *config.Config, db *sql.DB, reports service.ReminderReports, logger *logrus.Logger) (*cron.Cron, error) {
	repo := repository.NewRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}
	sealer, err := utils.NewSealer(cfg.EncryptionKey)
	if err != nil {
		return nil, err
	}
	reminders := service.NewReminderService(reports, repo, email.NewSender(cfg, logger), sealer, logger, cfg)

	c := cron.New(cron.WithLocation(time.UTC))
	_, err = c.AddFunc(cfg.ReminderSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderSweepTimeout)
		defer cancel()
		logger.Info("Starting reminder sweep")
		if _, err := reminders.Sweep(ctx); err != nil {
			logger.WithError(err).Error("Reminder sweep failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_SCHEDULE %q: %w", cfg.ReminderSchedule, err)
	}
	c.Start()
	logger.Infof("Scheduled reminder sweep: %s", cfg.ReminderSchedule)
	return c, nil
}
