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

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-queue/internal/db"
	"github.com/BruksfildServices01/barber-queue/internal/logger"
	"github.com/BruksfildServices01/barber-queue/internal/notify"
	"github.com/BruksfildServices01/barber-queue/internal/queuelock"
	"github.com/BruksfildServices01/barber-queue/internal/routes"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "barber-queue",
	})
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	timezone.SetDefault(cfg.DefaultTimezone)

	if err := validators.Register(); err != nil {
		return err
	}

	db, err := dbpkg.NewDB(cfg.DBUrl, log)
	if err != nil {
		return err
	}

	// ======================================================
	// Queue lock
	// ======================================================
	var locker queuelock.Locker = queuelock.NewKeyedMutex()
	if cfg.RedisURL != "" {
		rdb, err := queuelock.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		locker = queuelock.NewRedisLocker(rdb, cfg.QueueLockTTL, log)
		log.Info("queue lock: redis")
	}

	// ======================================================
	// Notifications
	// ======================================================
	notifiers := notify.Multi{notify.NewLogNotifier(log)}

	if cfg.FCMCredentialsFile != "" {
		fcm, err := notify.NewFCMNotifier(ctx, cfg.FCMCredentialsFile)
		if err != nil {
			return err
		}
		notifiers = append(notifiers, fcm)
		log.Info("notifications: fcm enabled")
	}

	if cfg.RabbitURL != "" {
		mq, err := notify.NewAMQPNotifier(cfg.RabbitURL, cfg.NotifyExchange)
		if err != nil {
			return err
		}
		defer mq.Close()

		notifiers = append(notifiers, mq)
		log.Info("notifications: rabbitmq enabled", "exchange", cfg.NotifyExchange)
	}

	notifier := notify.NewDispatcher(notifiers, cfg.NotifyQueueSize, log)
	defer notifier.Close()

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Locker:   locker,
		Audit:    auditDispatcher,
		Notifier: notifier,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// deferred Close calls drain audit and notification queues after this
	return srv.Shutdown(shutdownCtx)
}
