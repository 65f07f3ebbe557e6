// Command server runs the portfolio site.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vitrine.dev/internal/config"
	"vitrine.dev/internal/handlers"
	"vitrine.dev/internal/logging"
	"vitrine.dev/internal/metrics"
	"vitrine.dev/internal/services"
	"vitrine.dev/internal/views"
)

const (
	appName = "vitrine"
	Version = "0.1.0"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Portfolio site server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), versionCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio pages, API and contact relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.ServerAddr = addr
			}
			if cmd.Flags().Changed("watch") {
				cfg.WatchData = watch
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides SERVER_ADDR)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload projects.json when it changes (overrides WATCH_DATA)")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}

func run(parent context.Context, cfg *config.Config) error {
	logger := logging.Setup(cfg.LogLevel)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	catalog := services.NewCatalog(cfg.ProjectsPath(), cfg.Projects).WithLogger(logger)
	if cfg.WatchData {
		go func() {
			if err := catalog.Watch(ctx); err != nil {
				logger.Error("catalog watcher stopped", "error", err)
			}
		}()
	}

	contact := services.NewContactService(cfg.ContactEndpoint, cfg.ContactTimeout).WithLogger(logger)
	if cfg.ContactEndpoint == "" {
		logger.Warn("CONTACT_ENDPOINT is not set; contact submissions will fail")
	}

	router := handlers.SetupRoutes(cfg, handlers.Deps{
		Catalog:  catalog,
		Contact:  contact,
		Metrics:  metrics.New(),
		Renderer: renderer,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.ServerAddr, "projects", len(catalog.Projects()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
