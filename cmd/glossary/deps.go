package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"glossary/internal/config"
	"glossary/internal/db"
	"glossary/internal/logger"
)

type deps struct {
	cfg config.Config
	log *logger.Logger
}

func loadDeps() (*deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return &deps{cfg: cfg, log: log}, nil
}

func (d *deps) openDB() (*gorm.DB, error) {
	gdb, err := db.Connect(d.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", d.cfg.DB.Driver, err)
	}
	d.log.Info("database ready", "driver", d.cfg.DB.Driver)
	return gdb, nil
}

// serveHTTP runs srv until ctx is cancelled, then drains it within timeout.
func serveHTTP(ctx context.Context, srv *http.Server, timeout time.Duration, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
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

	log.Info("shutting down", "addr", srv.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}
