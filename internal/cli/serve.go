package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Belphemur/GameHub/internal/catalog"
	"github.com/Belphemur/GameHub/internal/config"
	grpcserver "github.com/Belphemur/GameHub/internal/grpc"
	"github.com/Belphemur/GameHub/internal/metrics"
	"github.com/Belphemur/GameHub/internal/reporting"
	"github.com/Belphemur/GameHub/internal/web"
)

const shutdownTimeout = 15 * time.Second

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web site, plus the gRPC API and metrics when enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), version)
		},
	}
}

func runServe(parent context.Context, version string) error {
	cfg, err := loadedConfig()
	if err != nil {
		return err
	}
	logger := config.GetLogger()
	config.WatchLogLevel()

	flush, err := reporting.Init(cfg, version)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize error reporting")
	}
	defer flush()

	catalogClient, err := newCatalogClient(cfg)
	if err != nil {
		return fmt.Errorf("create catalog client: %w", err)
	}
	defer func() {
		if err := catalogClient.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close catalog client")
		}
	}()

	logger.Info().
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("server_address", cfg.Server.Address).
		Int("server_port", cfg.Server.Port).
		Bool("grpc_enabled", cfg.GRPC.Enabled).
		Bool("metrics_enabled", cfg.Metrics.Enabled).
		Str("cache_provider", cfg.Cache.Provider).
		Msg("Application started with configuration")

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 3)

	site := web.NewServer(catalog.NewService(catalogClient), cfg)
	httpServer := site.HTTPServer()
	go func() {
		logger.Info().Str("address", httpServer.Addr).Msg("Starting web server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serve web: %w", err)
		}
	}()

	var grpcServer *grpcserver.Server
	if cfg.GRPC.Enabled {
		address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.GRPC.Port)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			_ = httpServer.Close()
			return fmt.Errorf("listen grpc on %s: %w", address, err)
		}
		grpcServer = grpcserver.NewGRPCServer(catalogClient)
		go func() {
			logger.Info().Str("address", address).Msg("Starting gRPC server")
			if err := grpcServer.Serve(listener); err != nil {
				errCh <- fmt.Errorf("serve grpc: %w", err)
			}
		}()
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("serve metrics: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	case serveErr = <-errCh:
		logger.Error().Err(serveErr).Msg("Server failed, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown web server")
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}

	logger.Info().Msg("Server stopped gracefully")
	return serveErr
}
