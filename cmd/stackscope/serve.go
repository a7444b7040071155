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

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stackscope/core/internal/config"
	"github.com/stackscope/core/internal/handlers"
	"github.com/stackscope/core/internal/metrics"
	"github.com/stackscope/core/internal/parser"
	"github.com/stackscope/core/internal/resolver"
)

var (
	serveAddr    string
	serveCatalog string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the compatibility resolution API over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "path to catalog file (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveCatalog != "" {
		cfg.CatalogPath = serveCatalog
	}
	if cfg.CatalogPath == "" {
		return fmt.Errorf("no catalog configured: set --catalog or catalogPath")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	catalog, err := parser.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(catalog.Technologies))
	for category, techs := range catalog.Technologies {
		counts[category] = len(techs)
	}
	metrics.SetCatalogSize(counts)

	res := resolver.New(catalog)
	router := handlers.NewRouter(res, logger, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("server starting",
		zap.String("addr", cfg.Addr),
		zap.String("catalog", cfg.CatalogPath),
		zap.Int("categories", len(catalog.Technologies)),
	)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
