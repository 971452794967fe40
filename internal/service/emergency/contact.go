package emergency

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Contact resolves the caller's emergency contact. See ContactFor.
func (s *Service) Contact(ctx context.Context) (*domain.EmergencyContact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ContactFor(ctx, userID)
}

// ContactFor returns the first linked caregiver with a phone number when
// userID is an elder, otherwise the user's own emergency contact. It returns
// nil when neither exists.
func (s *Service) ContactFor(ctx context.Context, userID uuid.UUID) (*domain.EmergencyContact, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("emergency.Contact: %w", err)
	}

	if user.IsElder() {
		caregivers, err := s.users.ListCaregivers(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("emergency.Contact: %w", err)
		}
		for _, cg := range caregivers {
			if cg.Phone != "" {
				return &domain.EmergencyContact{Name: cg.Name, Phone: cg.Phone, Type: domain.ContactTypeCaregiver}, nil
			}
		}
	}

	if user.EmergencyContact != "" {
		return &domain.EmergencyContact{
			Name:  "Emergency Contact",
			Phone: user.EmergencyContact,
			Type:  domain.ContactTypeEmergency,
		}, nil
	}
	return nil, nil
}

// Recent returns every log still inside the retention window, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.EmergencyLog, error) {
	return s.RecentForUsers(ctx, nil, limit)
}

// RecentForUsers returns the logs of userIDs still inside the retention
// window, newest first. A nil userIDs means all users.
func (s *Service) RecentForUsers(ctx context.Context, userIDs []uuid.UUID, limit int) ([]domain.EmergencyLog, error) {
	if userIDs != nil && len(userIDs) == 0 {
		return []domain.EmergencyLog{}, nil
	}

	since := s.since()
	logs, err := s.logs.ListSince(ctx, userIDs, since, limit)
	if err != nil {
		return nil, fmt.Errorf("emergency.Recent: %w", err)
	}
	return logs, nil
}

func (s *Service) since() time.Time {
	return s.now().UTC().Add(-s.retention)
}
