// Command flauta-server is an example API server built on the flauta
// routing library. It declares its route table as a single tree, resolves
// it against a controller registry, and registers the valid routes with a
// chi router.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/localshred/flauta/internal/config"
	"github.com/localshred/flauta/pkg/cli"
	"github.com/localshred/flauta/pkg/database"
	"github.com/localshred/flauta/pkg/logging"
	"github.com/localshred/flauta/pkg/middleware"
	"github.com/localshred/flauta/pkg/router"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "flauta-server",
		Short: "Example API server built on the flauta routing library",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to the configuration file")

	root.AddCommand(serveCommand())
	root.AddCommand(cli.RoutesCommand(loadResolved))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadResolved resolves the route table without touching the database, so
// the routes command works with no infrastructure running.
func loadResolved() (router.Resolved, error) {
	set := newControllers(nil, slog.Default())
	return router.Resolve(routePlan(), set.registry().Load), nil
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Finalize(); err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return err
	}
	defer db.Close()

	if err := runMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return err
	}

	set := newControllers(db, logger)
	resolved := router.Resolve(routePlan(), set.registry().Load)
	for _, rm := range resolved.Invalid {
		logger.Warn("invalid route",
			"path", rm.Route.Path,
			"controller", rm.Route.Controller,
			"handler", rm.Route.Handler,
			"error", rm.Err,
		)
	}

	mux := chi.NewRouter()
	router.Register(router.NewChiRegistrar(mux), resolved, logger)

	handler := middleware.RequestID()(
		middleware.Logger(logger)(
			middleware.MaxBytes(cfg.Limits.MaxBodySizeBytes())(
				middleware.TrimSlash()(mux),
			),
		),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "routes", len(resolved.Routes))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		return err
	}

	if err := <-shutdownError; err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
