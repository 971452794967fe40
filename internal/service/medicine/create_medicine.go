package medicine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/metrics"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// CreateMedicine stores a medicine and materialises its schedule for the
// configured window. Both writes happen in one transaction.
func (s *Service) CreateMedicine(ctx context.Context, input CreateMedicineInput) (*CreateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	m := &domain.Medicine{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Dosage:    strings.TrimSpace(input.Dosage),
		Frequency: strings.TrimSpace(input.Frequency),
		Times:     normalizeTimes(input.Times),
		Days:      normalizeDays(input.Days),
		Notes:     strings.TrimSpace(input.Notes),
		CreatedAt: now.UTC(),
	}

	var (
		created  *domain.Medicine
		inserted int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.medicines.Create(txCtx, m)
		if err != nil {
			return fmt.Errorf("create medicine: %w", err)
		}

		entries := Expand(*created, s.cfg.WindowDays, now.In(s.cfg.Location))
		inserted, err = s.schedule.InsertBatch(txCtx, entries)
		if err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("medicine.CreateMedicine: %w", err)
	}

	s.metrics.ScheduleEntriesGenerated(metrics.SourceCreate, inserted)

	s.log.InfoContext(ctx, "medicine created",
		slog.String("user_id", userID.String()),
		slog.String("medicine_id", created.ID.String()),
		slog.Int64("scheduled", inserted),
	)

	return &CreateResult{Medicine: created, ScheduledCount: int(inserted)}, nil
}
