package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/mortgage-compare/internal/logging"
	"github.com/iwvelando/mortgage-compare/internal/server"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(logLevel *string) *cobra.Command {
	var configPath string
	var address string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison over a JSON HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.SetAddress(address)

			logger, err := logging.New(cfg.Logging, *logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, logger, server.NewServer(logger, cfg, Version))
		},
	}

	c.Flags().StringVar(&configPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	c.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return c
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, logger *zap.Logger, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "cli.serve"),
			zap.String("address", srv.Addr),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.String("op", "cli.serve"))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
