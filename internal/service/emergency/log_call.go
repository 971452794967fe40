package emergency

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// LogCall records that the caller placed an emergency call. The caller's
// name is copied into the log; for an elder, the first linked caregiver is
// copied too so that caregiver sees the call on their dashboard.
func (s *Service) LogCall(ctx context.Context, input LogCallInput) (*domain.EmergencyLog, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("emergency.LogCall: %w", err)
	}

	entry := &domain.EmergencyLog{
		ID:          uuid.New(),
		UserID:      userID,
		UserName:    user.Name,
		ContactType: strings.TrimSpace(input.ContactType),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		CreatedAt:   s.now().UTC(),
	}

	if user.IsElder() {
		caregivers, err := s.users.ListCaregivers(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("emergency.LogCall: %w", err)
		}
		if len(caregivers) > 0 {
			cg := caregivers[0]
			entry.LinkedCaregiverID = &cg.ID
			entry.LinkedCaregiverName = &cg.Name
		}
	}

	created, err := s.logs.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("emergency.LogCall: %w", err)
	}

	s.log.InfoContext(ctx, "emergency call logged",
		slog.String("user_id", userID.String()),
		slog.String("contact_type", created.ContactType),
	)

	return created, nil
}
