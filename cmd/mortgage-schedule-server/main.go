package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canamort/mortgage-schedule/internal/config"
	"github.com/canamort/mortgage-schedule/internal/profiles"
	"github.com/canamort/mortgage-schedule/internal/server"
	"github.com/canamort/mortgage-schedule/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	listen := flag.String("listen", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := cfg.Address
	if *listen != "" {
		address = *listen
	}

	var store profiles.Store
	if cfg.RedisAddress != "" {
		store = profiles.NewRedisStore(cfg.RedisAddress)
		logger.Info("using redis profile store",
			zap.String("op", "main"),
			zap.String("address", cfg.RedisAddress),
		)
	} else {
		store = profiles.NewMemoryStore()
		logger.Info("using in-memory profile store; profiles will not survive restarts",
			zap.String("op", "main"),
		)
	}

	srv := &http.Server{
		Addr:    address,
		Handler: server.NewHandler(logger, store, cfg.BodySizeBytes(), version),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to shut down cleanly",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	logger.Info("listening",
		zap.String("op", "main"),
		zap.String("address", address),
		zap.String("version", version),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	<-done
}
