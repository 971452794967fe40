package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Get returns the dashboard for the caller's role. Expired emergency logs are
// purged first so no view shows them.
func (s *Service) Get(ctx context.Context) (*Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.emergency.PurgeQuietly(ctx)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Get: %w", err)
	}

	d := &Dashboard{Role: user.Role, User: user.Summary()}
	switch user.Role {
	case domain.UserRoleAdmin:
		d.Admin, err = s.adminView(ctx)
	case domain.UserRoleCaregiver:
		d.Caregiver, err = s.caregiverView(ctx, user)
	default:
		d.Elder, err = s.elderView(ctx, user)
	}
	if err != nil {
		return nil, fmt.Errorf("dashboard.Get: %w", err)
	}
	return d, nil
}

func (s *Service) elderView(ctx context.Context, user *domain.User) (*ElderView, error) {
	v := &ElderView{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		v.EmergencyContact, err = s.emergency.ContactFor(gctx, user.ID)
		if err != nil {
			return fmt.Errorf("emergency contact: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.DueMedicines, err = s.medicines.DueTodayFor(gctx, user.ID)
		if err != nil {
			return fmt.Errorf("due medicines: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.Reminders, err = s.reminders.Upcoming(gctx, user.ID, s.cfg.ReminderDays)
		if err != nil {
			return fmt.Errorf("upcoming reminders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.UpcomingBills, err = s.finance.UpcomingBills(gctx, user.ID, s.cfg.BillDays)
		if err != nil {
			return fmt.Errorf("upcoming bills: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) caregiverView(ctx context.Context, user *domain.User) (*CaregiverView, error) {
	elderID, ok := user.LinkedElderID()
	if !ok {
		return &CaregiverView{Linked: false}, nil
	}

	elder, err := s.users.GetByID(ctx, elderID)
	if errors.Is(err, domain.ErrNotFound) {
		return &CaregiverView{Linked: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("linked elder: %w", err)
	}

	summary := elder.Summary()
	v := &CaregiverView{Linked: true, Elder: &summary}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		v.Events, err = s.events.ForParticipant(gctx, elderID)
		if err != nil {
			return fmt.Errorf("elder events: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.Medicines, err = s.medicines.TodayFor(gctx, elderID)
		if err != nil {
			return fmt.Errorf("elder medicines: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.Reminders, err = s.reminders.Incomplete(gctx, elderID, s.cfg.CaregiverReminderLimit)
		if err != nil {
			return fmt.Errorf("elder reminders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.Finance, err = s.finance.CaregiverSummary(gctx, elderID)
		if err != nil {
			return fmt.Errorf("elder finance: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.EmergencyLogs, err = s.emergency.RecentForUsers(gctx, []uuid.UUID{elderID}, 0)
		if err != nil {
			return fmt.Errorf("elder emergency logs: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}
