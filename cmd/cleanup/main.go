// Command cleanup removes emergency call logs older than the configured
// retention period. It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--retention  override emergency.retention (e.g. 720h)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/adapter/postgres"
	emergencyrepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/emergency"
	"github.com/heartmarshall/agewell-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/agewell-backend/internal/app"
	"github.com/heartmarshall/agewell-backend/internal/config"
	"github.com/heartmarshall/agewell-backend/internal/metrics"
	"github.com/heartmarshall/agewell-backend/internal/service/emergency"
)

func main() {
	retentionFlag := flag.Duration("retention", 0, "override emergency log retention")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	retention := cfg.Emergency.Retention
	if *retentionFlag > 0 {
		retention = *retentionFlag
	}

	svc := emergency.NewService(logger, emergencyrepo.New(pool), user.New(pool), metrics.New(logger), retention)

	deleted, err := svc.Purge(ctx)
	if err != nil {
		logger.Error("emergency log purge failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", retention),
		)
		os.Exit(1)
	}

	logger.Info("emergency log purge completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", retention),
	)
}
