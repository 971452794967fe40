package emergency

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Purge removes logs older than the configured retention.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	return s.PurgeOlderThan(ctx, s.retention)
}

// PurgeOlderThan deletes every log created strictly before now-retention and
// returns how many were removed. A log created exactly at the cutoff is kept.
func (s *Service) PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)

	n, err := s.logs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("emergency.PurgeOlderThan: %w", err)
	}

	if n > 0 {
		s.metrics.EmergencyLogsPurged(n)
		s.log.InfoContext(ctx, "emergency logs purged",
			slog.Int64("count", n),
			slog.Time("cutoff", cutoff),
		)
	}
	return n, nil
}

// PurgeQuietly runs Purge and logs a failure at WARN instead of returning it.
// Dashboards call it before loading so a failing janitor never blocks a page.
func (s *Service) PurgeQuietly(ctx context.Context) {
	if _, err := s.Purge(ctx); err != nil {
		s.log.WarnContext(ctx, "emergency log purge failed", slog.String("error", err.Error()))
	}
}
