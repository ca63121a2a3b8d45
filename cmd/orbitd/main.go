package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/anordal/celestia/internal/api"
	"github.com/anordal/celestia/internal/auth"
	"github.com/anordal/celestia/internal/catalog"
	"github.com/anordal/celestia/internal/propagation"
	"github.com/anordal/celestia/internal/stream"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("CELESTIA_LOG_LEVEL")),
	}))

	addr := os.Getenv("CELESTIA_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	authCfg, err := loadAuthConfig(logger)
	if err != nil {
		logger.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat := catalog.New(logger)
	if path := os.Getenv("CELESTIA_CATALOG_FILE"); path != "" {
		loadCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		n, err := catalog.LoadFile(loadCtx, path, cat, logger)
		cancel()
		if err != nil {
			logger.Error("failed to load catalog file", "path", path, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded catalog file", "path", path, "bodies", n)
	}
	logger.Info("catalog ready", "bodies", cat.Len())

	propCfg := loadPropConfig(logger)
	prop := propagation.NewPropagator(cat, propCfg, logger)

	streamCfg := loadStreamConfig(logger, propCfg)
	streamHandler := stream.NewHandler(cat, streamCfg, logger)

	srv := api.NewServer(api.Config{
		Addr:        addr,
		Auth:        authCfg,
		TrustProxy:  streamCfg.TrustProxy,
		PathSamples: loadPathSamples(logger),
	}, logger, prop, streamHandler)

	go func() {
		logger.Info("starting server", "addr", addr, "auth_enabled", authCfg.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func loadAuthConfig(logger *slog.Logger) (auth.Config, error) {
	cfg := auth.Config{}

	enabledStr := os.Getenv("CELESTIA_AUTH_ENABLED")
	if enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return cfg, errors.New("CELESTIA_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}

	if cfg.Enabled {
		cfg.Tokens = auth.ParseTokens(os.Getenv("CELESTIA_AUTH_TOKEN"))
		if len(cfg.Tokens) == 0 {
			return cfg, errors.New("CELESTIA_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled", "tokens", len(cfg.Tokens))
	}

	return cfg, nil
}

func loadPropConfig(logger *slog.Logger) propagation.Config {
	cfg := propagation.Config{
		Workers: runtime.NumCPU(),
	}

	if v := os.Getenv("CELESTIA_PROP_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid CELESTIA_PROP_WORKERS value, using default", "value", v, "default", cfg.Workers)
		} else {
			cfg.Workers = n
		}
	}

	if v := os.Getenv("CELESTIA_CACHE_TOLERANCE_DAYS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			logger.Warn("invalid CELESTIA_CACHE_TOLERANCE_DAYS value, using exact matching", "value", v)
		} else {
			cfg.CacheTolerance = f
		}
	}

	logger.Info("propagation config",
		"workers", cfg.Workers,
		"cache_tolerance_days", cfg.CacheTolerance,
	)

	return cfg
}

func loadPathSamples(logger *slog.Logger) int {
	samples := 100
	if v := os.Getenv("CELESTIA_PATH_SAMPLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 || n > 1000 {
			logger.Warn("invalid CELESTIA_PATH_SAMPLES value, using default", "value", v, "default", samples)
		} else {
			samples = n
		}
	}
	return samples
}

func loadStreamConfig(logger *slog.Logger, propCfg propagation.Config) stream.Config {
	cfg := stream.Config{
		MaxConcurrentPerIP: 10,
		MaxConcurrent:      1000,
		KeepaliveInterval:  30 * time.Second,
		CacheTolerance:     propCfg.CacheTolerance,
	}

	if v := os.Getenv("CELESTIA_STREAM_MAX_CONCURRENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid CELESTIA_STREAM_MAX_CONCURRENT value, using default", "value", v, "default", 10)
		} else {
			cfg.MaxConcurrentPerIP = n
		}
	}

	if v := os.Getenv("CELESTIA_STREAM_MAX_TOTAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid CELESTIA_STREAM_MAX_TOTAL value, using default", "value", v, "default", 1000)
		} else {
			cfg.MaxConcurrent = n
		}
	}

	if v := os.Getenv("CELESTIA_STREAM_KEEPALIVE_INTERVAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid CELESTIA_STREAM_KEEPALIVE_INTERVAL value, using default", "value", v, "default", 30)
		} else {
			cfg.KeepaliveInterval = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("CELESTIA_STREAM_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid CELESTIA_STREAM_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			cfg.TrustProxy = trust
		}
	}

	logger.Info("stream config",
		"max_concurrent_per_ip", cfg.MaxConcurrentPerIP,
		"max_concurrent", cfg.MaxConcurrent,
		"keepalive_interval_seconds", cfg.KeepaliveInterval.Seconds(),
		"trust_proxy", cfg.TrustProxy,
	)

	return cfg
}
