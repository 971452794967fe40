package medicine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// DeleteMedicine removes the caller's medicine together with all of its
// schedule entries in one transaction.
func (s *Service) DeleteMedicine(ctx context.Context, input DeleteMedicineInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		removed, err = s.schedule.DeleteByMedicine(txCtx, userID, input.MedicineID)
		if err != nil {
			return fmt.Errorf("delete schedule: %w", err)
		}
		if err := s.medicines.Delete(txCtx, userID, input.MedicineID); err != nil {
			return fmt.Errorf("delete medicine: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("medicine.DeleteMedicine: %w", err)
	}

	s.log.InfoContext(ctx, "medicine deleted",
		slog.String("user_id", userID.String()),
		slog.String("medicine_id", input.MedicineID.String()),
		slog.Int64("entries_removed", removed),
	)

	return nil
}
