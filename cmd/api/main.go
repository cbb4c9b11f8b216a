package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"readinglog/internal/api"
	"readinglog/internal/catalog"
	"readinglog/internal/config"
	"readinglog/internal/httpx"
	"readinglog/internal/metrics"
	"readinglog/internal/prefs"
	"readinglog/internal/store"
	"readinglog/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logger.New(os.Getenv("LOG_LEVEL")).Fatalf("invalid configuration: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, ready, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	prefsStore, closePrefs, err := openPrefs(cfg, log)
	if err != nil {
		return err
	}
	defer closePrefs()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	client := catalog.NewClient(catalog.ClientConfig{
		BaseURL:    cfg.CatalogProxyURL,
		Timeout:    cfg.CatalogTimeout,
		RPS:        cfg.CatalogRPS,
		MaxRetries: cfg.CatalogMaxRetries,
		Metrics:    m,
	})

	entry := logrus.NewEntry(log)
	sessions := api.NewRegistry(gw, prefsStore, client, cfg.SessionTTL, entry, m)
	defer sessions.Close()

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		api:     api.NewHandler(sessions, entry),
		log:     entry,
		metrics: m,
		ready:   ready,
		limiter: limiter,
		cfg:     cfg,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.CatalogTimeout*time.Duration(cfg.CatalogMaxRetries+1) + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.Addr, "store": cfg.StoreDriver}).Info("starting server")
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openPrefs keeps preferences in memory alongside the memory store and in
// SQLite at PREFS_PATH otherwise.
func openPrefs(cfg *config.Config, log *logrus.Logger) (prefs.Store, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		return prefs.NewMemory(), func() {}, nil
	}
	p, err := prefs.OpenSQLite(cfg.PrefsPath)
	if err != nil {
		return nil, nil, err
	}
	return p, func() {
		if err := p.Close(); err != nil {
			log.WithError(err).Warn("failed to close prefs store")
		}
	}, nil
}

// openStore returns the gateway for the configured driver, a readiness
// check and a close function.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*store.Gateway, func(context.Context) error, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store, data is lost on restart")
		return store.NewMemoryGateway(store.NewMemory()), func(context.Context) error { return nil }, func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("cannot ping database (%s): %w", redactDSN(cfg.DatabaseDSN), err)
	}
	log.Info("database connection OK")
	return store.NewPostgres(pool, cfg.StoreTimeout), pool.Ping, pool.Close, nil
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
