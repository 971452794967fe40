// Command extend-schedules tops up the rolling medication schedule window
// for every medicine. Run it daily so entries always exist for the next
// schedule.window_days days.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/adapter/postgres"
	medicinerepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/medicine"
	schedulerepo "github.com/heartmarshall/agewell-backend/internal/adapter/postgres/schedule"
	"github.com/heartmarshall/agewell-backend/internal/app"
	"github.com/heartmarshall/agewell-backend/internal/config"
	"github.com/heartmarshall/agewell-backend/internal/metrics"
	"github.com/heartmarshall/agewell-backend/internal/service/medicine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := medicine.NewService(logger, medicinerepo.New(pool), schedulerepo.New(pool),
		postgres.NewTxManager(pool), metrics.New(logger), medicine.Config{
			WindowDays: cfg.Schedule.WindowDays,
			Location:   cfg.App.Location,
		})

	inserted, err := svc.ExtendAll(ctx)
	if err != nil {
		logger.Error("schedule extension failed",
			slog.String("error", err.Error()),
			slog.Int64("inserted", inserted),
		)
		os.Exit(1)
	}

	logger.Info("schedule extension completed",
		slog.Int64("inserted", inserted),
		slog.Int("window_days", cfg.Schedule.WindowDays),
	)
}
