package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

func (s *Service) adminView(ctx context.Context) (*AdminView, error) {
	v := &AdminView{}
	limit := s.cfg.RecentLimit
	g, gctx := errgroup.WithContext(ctx)

	counts := []struct {
		name string
		fn   CountFunc
		dst  *int
	}{
		{"users", s.counters.Users, &v.Stats.Users},
		{"medicines", s.counters.Medicines, &v.Stats.Medicines},
		{"reminders", s.counters.Reminders, &v.Stats.Reminders},
		{"events", s.counters.Events, &v.Stats.Events},
		{"feedback", s.counters.Feedback, &v.Stats.Feedback},
		{"tutorials", s.counters.Tutorials, &v.Stats.Tutorials},
		{"regular expenses", s.counters.RegularExpenses, &v.Stats.RegularExpenses},
		{"fixed expenses", s.counters.FixedExpenses, &v.Stats.FixedExpenses},
		{"emergency logs", s.counters.EmergencyLogs, &v.Stats.EmergencyLogs},
	}
	for _, c := range counts {
		if c.fn == nil {
			continue
		}
		g.Go(func() error {
			n, err := c.fn(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", c.name, err)
			}
			*c.dst = n
			return nil
		})
	}

	g.Go(func() error {
		start := domain.StartOfDay(s.now().In(s.cfg.Location))
		total, taken, err := s.schedule.CountBetween(gctx, start.UTC(), start.AddDate(0, 0, 1).UTC())
		if err != nil {
			return fmt.Errorf("count doses: %w", err)
		}
		v.Stats.DosesToday, v.Stats.DosesTakenToday = total, taken
		return nil
	})

	g.Go(func() error {
		var err error
		v.RecentUsers, err = s.users.List(gctx, limit, 0)
		if err != nil {
			return fmt.Errorf("recent users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.RecentFeedback, err = s.feedback.Recent(gctx, limit)
		if err != nil {
			return fmt.Errorf("recent feedback: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.RecentTutorials, err = s.tutorials.Recent(gctx, limit)
		if err != nil {
			return fmt.Errorf("recent tutorials: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		v.RecentEmergency, err = s.emergency.RecentForUsers(gctx, nil, limit)
		if err != nil {
			return fmt.Errorf("recent emergency logs: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return v, nil
}
