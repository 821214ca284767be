// Package main is the entry point for the road-trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/roadtrip-planner/internal/auth"
	"github.com/pkordes/roadtrip-planner/internal/config"
	"github.com/pkordes/roadtrip-planner/internal/handler"
	"github.com/pkordes/roadtrip-planner/internal/middleware"
	"github.com/pkordes/roadtrip-planner/internal/planner"
	"github.com/pkordes/roadtrip-planner/internal/service"
	"github.com/pkordes/roadtrip-planner/internal/store"
)

// maxBodyBytes caps request bodies. Trip profiles are small; 1 MiB leaves
// generous headroom for a profile full of points of interest.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Dependencies -----------------------------------------------------
	// The store needs no connection setup: state lives in one JSON file that
	// is re-read on every mutating operation.
	trips := service.NewTripService(store.NewFileStore(cfg.DataFile))
	authn := auth.NewAuthenticator(cfg.Users, []byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLHours)*time.Hour)
	ai := planner.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)

	if ready, msg := ai.Ready(); !ready {
		slog.Warn("planner AI not configured", "message", msg)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body cap. The auth middleware wraps only the protected routes,
	// inside handler.Routes.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	srv := handler.NewServer(trips, authn, ai)
	r.Mount("/", srv.Routes(middleware.NewAuthHandler(authn.VerifyToken)))

	// --- HTTP Server ------------------------------------------------------
	// ReadTimeout guards against slow request senders. WriteTimeout stays
	// unset on purpose: the planning call blocks for as long as the model
	// takes, and a write deadline would cut the response off mid-itinerary.
	httpSrv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr, "data_file", cfg.DataFile)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
