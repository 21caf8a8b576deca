package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/chris/referral-ledger/pkg/api"
	"github.com/chris/referral-ledger/pkg/bootstrap"
	"github.com/chris/referral-ledger/pkg/config"
	"github.com/chris/referral-ledger/pkg/handlers"
	"github.com/chris/referral-ledger/pkg/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.App.SlogLevel()}))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, err := bootstrap.New(context.Background(), cfg, reg, bootstrap.DefaultAWSConfig)
	if err != nil {
		log.Fatalf("failed to build services: %v", err)
	}

	handler := handlers.NewApiHandler(app.Ledger, app.Directory)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	slog.Info("starting server", "port", cfg.HTTP.Port, "storage", cfg.Storage.Backend)

	if err := http.ListenAndServe(":"+cfg.HTTP.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
