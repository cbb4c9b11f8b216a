package main

import (
	"context"
	"net/http"
	"time"

	"readinglog/internal/api"
	"readinglog/internal/config"
	"readinglog/internal/httpx"
	"readinglog/internal/metrics"

	"github.com/sirupsen/logrus"
)

type routerDeps struct {
	api     *api.Handler
	log     *logrus.Entry
	metrics *metrics.Metrics
	ready   func(context.Context) error
	limiter *httpx.RateLimitMiddleware
	cfg     *config.Config
}

func newRouter(d routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := d.ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", d.metrics.Handler())

	d.api.Register(router, httpx.AuthMiddleware(d.cfg.JWTSecret))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.SecurityHeadersMiddleware(false),
		httpx.CORSMiddleware(d.cfg.CORSOrigins),
		d.limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(d.cfg.MaxBodyBytes),
		httpx.AccessLogMiddleware(d.log, d.metrics),
		httpx.RecoveryMiddleware(d.log),
	)
}
