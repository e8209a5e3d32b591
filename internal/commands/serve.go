package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fincontrol/backend/internal/config"
	"github.com/fincontrol/backend/pkg/auth"
	"github.com/fincontrol/backend/pkg/controllers"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/fincontrol/backend/pkg/router"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// shutdownTimeout is the time in-flight requests get to finish on shutdown.
const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotenv(); err != nil {
				return err
			}

			cfg := config.Load()
			setupLogging(cfg.LogFormat)

			if err := cfg.Validate(); err != nil {
				log.Error().Msg(err.Error())
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}
}

// runServe serves the API until the context is cancelled.
func runServe(ctx context.Context, cfg *config.Config) error {
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnv,
			Release:          "fincontrol@" + router.Version,
			AttachStacktrace: true,
		})
		if err != nil {
			return fmt.Errorf("initializing sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	server, db, err := newServer(cfg)
	if err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting server")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Server exited")
	return nil
}

// newServer connects to the database and builds the HTTP server with the API
// mounted at the path of the API URL.
func newServer(cfg *config.Config) (*http.Server, *gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := models.Connect(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	r, metrics, err := router.Config(cfg.APIURL, cfg)
	if err != nil {
		return nil, nil, err
	}

	co := controllers.New(db, auth.NewTokens(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL), cfg.Location)
	router.AttachRoutes(co, r.Group(cfg.APIURL.Path), metrics, cfg.EnablePprof)

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}, db, nil
}
