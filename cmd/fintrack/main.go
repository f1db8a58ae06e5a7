package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/fintrack/internal/config"
	"github.com/deppfellow/fintrack/internal/database"
	"github.com/deppfellow/fintrack/internal/handler"
	"github.com/deppfellow/fintrack/internal/logger"
	"github.com/deppfellow/fintrack/internal/repository"
	"github.com/deppfellow/fintrack/internal/router"
	"github.com/deppfellow/fintrack/internal/server"
	"github.com/deppfellow/fintrack/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	migrationTimeout = 30 * time.Second
	shutdownTimeout  = 30 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. Running fintrack without a subcommand
// serves the API.
func newRootCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), serveAPI)
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), func(context.Context, *config.Config, *logger.LoggerService, *zerolog.Logger) error {
				return nil
			})
		},
	}

	root := &cobra.Command{
		Use:          "fintrack",
		Short:        "Personal finance tracking API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.AddCommand(serve, migrate)

	return root
}

// run loads configuration, sets up logging and migrates the schema
// before handing over to next.
func run(ctx context.Context, next func(context.Context, *config.Config, *logger.LoggerService, *zerolog.Logger) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	migrateCtx, cancelMigrate := context.WithTimeout(ctx, migrationTimeout)
	err = database.Migrate(migrateCtx, &log, cfg)
	cancelMigrate()
	if err != nil {
		log.Error().Err(err).Msg("failed to migrate database")
		return err
	}

	return next(ctx, cfg, loggerService, &log)
}

func serveAPI(ctx context.Context, cfg *config.Config, loggerService *logger.LoggerService, log *zerolog.Logger) error {
	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("could not create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
