package medicine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/metrics"
)

// extendPageSize is the number of medicines loaded per page by ExtendAll.
const extendPageSize = 200

// ExtendAll tops up the rolling schedule window of every medicine so that
// entries always exist for the next WindowDays days. Returns the number of
// newly inserted entries.
func (s *Service) ExtendAll(ctx context.Context) (int64, error) {
	start := s.now().In(s.cfg.Location)

	var (
		total   int64
		afterID = uuid.Nil
	)
	for {
		page, err := s.medicines.ListPage(ctx, afterID, extendPageSize)
		if err != nil {
			return total, fmt.Errorf("medicine.ExtendAll list: %w", err)
		}

		for _, m := range page {
			n, err := s.schedule.InsertBatch(ctx, Expand(m, s.cfg.WindowDays, start))
			if err != nil {
				return total, fmt.Errorf("medicine.ExtendAll medicine %s: %w", m.ID, err)
			}
			total += n
		}

		if len(page) < extendPageSize {
			break
		}
		afterID = page[len(page)-1].ID
	}

	s.metrics.ScheduleEntriesGenerated(metrics.SourceExtend, total)
	s.log.InfoContext(ctx, "schedules extended", slog.Int64("inserted", total))

	return total, nil
}
