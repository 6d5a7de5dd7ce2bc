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

	"github.com/the-cloud-architect/contractor-calculator/internal/config"
	"github.com/the-cloud-architect/contractor-calculator/internal/logging"
	"github.com/the-cloud-architect/contractor-calculator/internal/server"
	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to calculator configuration file")
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override")
	maxRequestSize := flag.String("max-request-size", "", "request body size limit override (e.g. 256K, 1M)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	serverConfig, err := server.LoadConfig(*serverConfigLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *serverConfigLocation, err)
		return
	}
	if *address != "" {
		serverConfig.Address = *address
	}
	if *maxRequestSize != "" {
		size, err := server.ParseSize(*maxRequestSize)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid max-request-size %s\", \"error\": \"%v\"}\n", *maxRequestSize, err)
			return
		}
		serverConfig.SetRequestSizeBytes(size)
	}

	logger, err := logging.NewLogger(serverConfig.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// The calculator config supplies the dashboard defaults; fall back to
	// the built-in deal when the file is absent.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if _, statErr := os.Stat(*configLocation); os.IsNotExist(statErr) {
			conf = config.DefaultConfiguration()
			logger.Info("no calculator configuration found, using defaults",
				zap.String("op", "main"),
				zap.String("path", *configLocation),
			)
		} else {
			logger.Fatal("failed to load calculator configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	handler := server.NewHandler(logger, conf, serverConfig.RequestSizeBytes(), version)

	srv := &http.Server{
		Addr:              serverConfig.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("serving dashboard",
			zap.String("op", "main"),
			zap.String("address", serverConfig.Address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error",
				zap.String("op", "main"),
				zap.Error(err),
			)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("server stopped", zap.String("op", "main"))
}
