package finance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// Overview combines the caller's month of one-time spending with their bills.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	from, to := s.monthRange()
	regular, err := s.expenses.SumRegular(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("finance.Overview: %w", err)
	}

	bills, err := s.expenses.ListFixed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finance.Overview: %w", err)
	}
	fixed := summarizeFixed(bills, s.today(), s.dueSoonDays)
	paid, pending := splitPaid(bills)

	recentExpenses, err := s.expenses.ListRecentRegular(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("finance.Overview: %w", err)
	}
	recentFixed, err := s.expenses.ListRecentFixed(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("finance.Overview: %w", err)
	}

	daysInMonth := to.Sub(from).Hours() / 24
	return &Overview{
		RegularTotal:      round2(regular),
		FixedTotal:        fixed.MonthlyTotal,
		DailyFixedAverage: round2(fixed.MonthlyTotal / daysInMonth),
		PaidFixedTotal:    paid,
		PendingFixedTotal: pending,
		TotalMonthly:      round2(regular + fixed.MonthlyTotal),
		RecentExpenses:    recentExpenses,
		RecentFixed:       recentFixed,
	}, nil
}

// CaregiverSummary is the finance view a caregiver gets of elderID.
func (s *Service) CaregiverSummary(ctx context.Context, elderID uuid.UUID) (*CaregiverSummary, error) {
	from, to := s.monthRange()
	regular, err := s.expenses.SumRegular(ctx, elderID, from, to)
	if err != nil {
		return nil, fmt.Errorf("finance.CaregiverSummary: %w", err)
	}

	bills, err := s.expenses.ListFixed(ctx, elderID)
	if err != nil {
		return nil, fmt.Errorf("finance.CaregiverSummary: %w", err)
	}
	paid, pending := splitPaid(bills)

	return &CaregiverSummary{
		RegularTotal:      round2(regular),
		PaidFixedTotal:    paid,
		PendingFixedTotal: pending,
	}, nil
}
