package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/pkg/ctxutil"
)

// AddExpense records a one-time expense for the caller.
func (s *Service) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.RegularExpense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	spent, err := input.Validate(s.loc)
	if err != nil {
		return nil, err
	}

	created, err := s.expenses.CreateRegular(ctx, &domain.RegularExpense{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		SpentOn:     domain.CalendarDate(spent),
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("finance.AddExpense: %w", err)
	}

	s.log.InfoContext(ctx, "expense added",
		slog.String("user_id", userID.String()),
		slog.String("expense_id", created.ID.String()),
	)
	return created, nil
}

// DeleteExpense removes one of the caller's expenses.
func (s *Service) DeleteExpense(ctx context.Context, input IDInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.expenses.DeleteRegular(ctx, userID, input.ExpenseID); err != nil {
		return fmt.Errorf("finance.DeleteExpense: %w", err)
	}
	return nil
}

// MonthSummary summarises the caller's one-time spending this month.
func (s *Service) MonthSummary(ctx context.Context) (*MonthSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("finance.MonthSummary: %w", err)
	}

	from, to := s.monthRange()
	expenses, err := s.expenses.ListRegular(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("finance.MonthSummary: %w", err)
	}

	sum := summarizeMonth(expenses, user.MonthlyBudget, s.today().Day())
	return &sum, nil
}
