package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// AddFixed records a recurring bill for the caller. New bills start unpaid.
func (s *Service) AddFixed(ctx context.Context, input AddFixedInput) (*domain.FixedExpense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	due, err := input.Validate(s.loc)
	if err != nil {
		return nil, err
	}

	created, err := s.expenses.CreateFixed(ctx, &domain.FixedExpense{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		Frequency:   input.Frequency,
		Description: strings.TrimSpace(input.Description),
		DueDate:     domain.CalendarDate(due),
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("finance.AddFixed: %w", err)
	}

	s.log.InfoContext(ctx, "fixed expense added",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", created.ID.String()),
		slog.String("frequency", created.Frequency.String()),
	)
	return created, nil
}

// DeleteFixed removes one of the caller's bills.
func (s *Service) DeleteFixed(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.expenses.DeleteFixed(ctx, userID, input.ExpenseID); err != nil {
		return fmt.Errorf("finance.DeleteFixed: %w", err)
	}
	return nil
}

// SetPaid marks a bill paid, stamping paid_at, or unpaid, clearing it.
func (s *Service) SetPaid(ctx context.Context, input SetPaidInput) (*domain.FixedExpense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if input.Paid {
		now := s.now().UTC()
		paidAt = &now
	}

	updated, err := s.expenses.SetPaid(ctx, userID, input.ExpenseID, input.Paid, paidAt)
	if err != nil {
		return nil, fmt.Errorf("finance.SetPaid: %w", err)
	}

	s.log.InfoContext(ctx, "bill payment updated",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", updated.ID.String()),
		slog.Bool("paid", updated.IsPaid),
	)
	return updated, nil
}

// FixedSummary annotates the caller's bills relative to today.
func (s *Service) FixedSummary(ctx context.Context) (*FixedSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	bills, err := s.expenses.ListFixed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finance.FixedSummary: %w", err)
	}

	sum := summarizeFixed(bills, s.today(), s.dueSoonDays)
	return &sum, nil
}

// UpcomingBills returns userID's unpaid bills due between today and
// today+days inclusive.
func (s *Service) UpcomingBills(ctx context.Context, userID uuid.UUID, days int) ([]domain.FixedExpense, error) {
	today := domain.CalendarDate(s.today())
	bills, err := s.expenses.ListUnpaidDue(ctx, userID, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("finance.UpcomingBills: %w", err)
	}
	return bills, nil
}
