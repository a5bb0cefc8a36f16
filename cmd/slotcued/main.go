package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/reelkit/slotcue/internal/catalog"
	"github.com/reelkit/slotcue/internal/config"
	logpkg "github.com/reelkit/slotcue/internal/logger"
	"github.com/reelkit/slotcue/internal/metrics"
	chiTransport "github.com/reelkit/slotcue/internal/transport/chi"
	assistuc "github.com/reelkit/slotcue/internal/usecase/assist"
	"github.com/reelkit/slotcue/internal/version"
)

func main() {
	_ = godotenv.Load()

	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting slotcue API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
	)

	// Build the catalog based on driver
	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog ready", zap.Int("movies", cat.Len()))

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterAssistMetrics()

	// Assemble the pipeline — composition root
	assistSvc := assistuc.New(cat).
		WithTopK(cfg.Assist.TopK).
		WithCache(cfg.Assist.CacheSize)

	server := chiTransport.NewServer(assistSvc, cat, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadCatalog builds the immutable catalog from the configured source.
// The redis source is read once at startup and closed; the process keeps
// only the in-memory snapshot.
func loadCatalog(cfg config.Config, logger *zap.Logger) (catalog.Catalog, error) {
	switch cfg.Catalog.Driver {
	case "static":
		return catalog.Default(), nil
	case "redis":
		source, err := catalog.NewRedisSource(catalog.RedisConfig{
			Addrs:     cfg.Catalog.Addrs,
			Password:  cfg.Catalog.Password,
			KeyPrefix: cfg.Catalog.KeyPrefix,
		})
		if err != nil {
			return catalog.Catalog{}, fmt.Errorf("create redis catalog source: %w", err)
		}
		defer source.Close()

		ctx := context.Background()
		timeout := time.Duration(cfg.Catalog.ReadinessTimeout) * time.Second
		if err := source.WaitForReady(ctx, timeout); err != nil {
			return catalog.Catalog{}, fmt.Errorf("wait for catalog store: %w", err)
		}
		logger.Info("Connected to catalog store", zap.Strings("addrs", cfg.Catalog.Addrs))

		cat, err := source.Load(ctx)
		if err != nil {
			return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
		}
		return cat, nil
	default:
		return catalog.Catalog{}, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
