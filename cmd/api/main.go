package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-collector/internal/adapters/auth/session"
	"cat-collector/internal/adapters/objectstore/s3store"
	pg "cat-collector/internal/adapters/storage/postgres"
	"cat-collector/internal/config"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/objectstore"
	"cat-collector/internal/router"
)

// @title Cat Collector
// @version 1.0
// @description Colección de gatos por usuario: juguetes, comidas y fotos.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	err := run(cfg, log)
	if err != nil {
		log.Error("server error", map[string]any{"error": err})
	}
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	if cfg.SessionSecret == "" {
		log.Warn("SESSION_SECRET not set, using a random secret: sessions won't survive a restart", nil)
	}
	sessions, err := session.NewManager(session.Config{
		Secret: cfg.SessionSecret,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	})
	if err != nil {
		return err
	}

	var store objectstore.Store
	if cfg.ObjectStoreConfigured() {
		s3, err := s3store.New(s3store.Config{
			Bucket:   cfg.S3Bucket,
			BaseURL:  cfg.S3BaseURL,
			Region:   cfg.AWSRegion,
			Endpoint: cfg.S3Endpoint,
		})
		if err != nil {
			return err
		}
		store = s3
	} else {
		log.Warn("S3_BUCKET / S3_BASE_URL not set, photo uploads will fail", nil)
	}

	// Sin DB_DSN => repos in-memory (modo dev)
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = pg.Migrate(ctx, db)
		cancel()
		if err != nil {
			return err
		}
		log.Info("postgres ready", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	h, err := router.NewRouter(router.Options{
		DB:                 db,
		Logger:             log,
		Sessions:           sessions,
		Store:              store,
		UploadTimeout:      cfg.S3UploadTimeout,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: h,
		// las subidas pueden tardar hasta el timeout de S3
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.S3UploadTimeout + 15*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
