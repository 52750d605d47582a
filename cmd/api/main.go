package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-adoption/internal/adapters/auth/demo"
	"pet-adoption/internal/adapters/storage"
	"pet-adoption/internal/config"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/router"
)

// @title        Pet Adoption API
// @version      1.0
// @description  Catálogo de mascotas, solicitudes de adopción, favoritos y flujo de exploración.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, err := adoption.ParseSubmissionPolicy(cfg.Store.SubmissionPolicy)
	if err != nil {
		return err
	}

	backend, err := storage.Open(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn("close storage", map[string]any{"err": err})
		}
	}()

	rec := metrics.New()
	store := adoption.NewStore(adoption.Options{
		KV:      backend.Store,
		Logger:  log,
		Metrics: rec,
		Policy:  policy,
	})
	defer store.Teardown()

	if err := loadStore(ctx, store, cfg.Store.LoadTimeout); err != nil {
		return err
	}
	if err := store.Err(); err != nil {
		log.Warn("store loaded with defaults for some keys", map[string]any{"err": err})
	}

	opts := router.Options{Store: store, Metrics: rec, Logger: log}
	if cfg.Auth.Secret != "" {
		tokens := demo.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL)
		opts.Tokens = tokens
		opts.AuthVerifier = tokens
	} else {
		log.Warn("AUTH_SECRET not set, running in dev mode (X-Debug-User-ID)", nil)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": backend.Driver,
			"policy":  string(policy),
		})
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

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadStore(ctx context.Context, store *adoption.Store, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return store.Load(ctx)
}
