package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/agewell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agewell-backend/internal/config"
	"github.com/heartmarshall/agewell-backend/internal/metrics"
	"github.com/heartmarshall/agewell-backend/internal/transport/middleware"
	"github.com/heartmarshall/agewell-backend/internal/transport/rest"
	"github.com/heartmarshall/agewell-backend/migrations"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations when enabled, seeds the admin account and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.App.Timezone),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	m := metrics.New(logger)
	c := newContainer(cfg, logger, pool, m)

	if err := c.auth.EnsureAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(c.handlers(logger, pool), rest.RouterDeps{
		Logger:      logger,
		Tokens:      c.auth,
		Users:       c.users,
		Metrics:     m,
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		MetricsCfg:  cfg.Metrics,
		Swagger:     cfg.Swagger.Enabled,
		AuthPerMin:  cfg.RateLimit.AuthPerMinute,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most cfg.ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
