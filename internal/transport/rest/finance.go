package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/finance"
)

type financeService interface {
	Overview(ctx context.Context) (*finance.Overview, error)
	MonthSummary(ctx context.Context) (*finance.MonthSummary, error)
	AddExpense(ctx context.Context, input finance.AddExpenseInput) (*domain.RegularExpense, error)
	DeleteExpense(ctx context.Context, input finance.IDInput) error
	FixedSummary(ctx context.Context) (*finance.FixedSummary, error)
	AddFixed(ctx context.Context, input finance.AddFixedInput) (*domain.FixedExpense, error)
	SetPaid(ctx context.Context, input finance.SetPaidInput) (*domain.FixedExpense, error)
	DeleteFixed(ctx context.Context, input finance.IDInput) error
}

// FinanceHandler serves regular and fixed expenses.
type FinanceHandler struct {
	svc financeService
	log *slog.Logger
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc financeService, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: logger.With("handler", "finance")}
}

type addExpenseRequest struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type addFixedRequest struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
}

type setPaidRequest struct {
	Paid bool `json:"paid"`
}

type categoryTotalResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type monthSummaryResponse struct {
	Expenses        []expenseResponse       `json:"expenses"`
	Total           float64                 `json:"total"`
	DailyAverage    float64                 `json:"daily_average"`
	Categories      []categoryTotalResponse `json:"categories"`
	HighestCategory string                  `json:"highest_category,omitempty"`
	MonthlyBudget   float64                 `json:"monthly_budget"`
	RemainingBudget float64                 `json:"remaining_budget"`
}

type fixedItemResponse struct {
	fixedExpenseResponse
	DaysUntilDue int  `json:"days_until_due"`
	IsOverdue    bool `json:"is_overdue"`
	IsDueSoon    bool `json:"is_due_soon"`
}

type fixedSummaryResponse struct {
	Items           []fixedItemResponse `json:"items"`
	MonthlyTotal    float64             `json:"monthly_total"`
	MonthlyAverage  float64             `json:"monthly_average"`
	HighestCategory string              `json:"highest_category,omitempty"`
	NextDue         *string             `json:"next_due,omitempty"`
}

type overviewResponse struct {
	RegularTotal      float64                `json:"regular_total"`
	FixedTotal        float64                `json:"fixed_total"`
	DailyFixedAverage float64                `json:"daily_fixed_average"`
	PaidFixedTotal    float64                `json:"paid_fixed_total"`
	PendingFixedTotal float64                `json:"pending_fixed_total"`
	TotalMonthly      float64                `json:"total_monthly"`
	RecentExpenses    []expenseResponse      `json:"recent_expenses"`
	RecentFixed       []fixedExpenseResponse `json:"recent_fixed"`
}

// Overview combines this month's spending with the fixed bills.
//
//	@Summary	Finance overview
//	@Tags		finance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	overviewResponse
//	@Router		/api/v1/finance [get]
func (h *FinanceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, overviewResponse{
		RegularTotal:      o.RegularTotal,
		FixedTotal:        o.FixedTotal,
		DailyFixedAverage: o.DailyFixedAverage,
		PaidFixedTotal:    o.PaidFixedTotal,
		PendingFixedTotal: o.PendingFixedTotal,
		TotalMonthly:      o.TotalMonthly,
		RecentExpenses:    toExpenseResponses(o.RecentExpenses),
		RecentFixed:       toFixedExpenseResponses(o.RecentFixed),
	})
}

// Expenses returns this month's regular expenses with totals.
//
//	@Summary	Monthly expense summary
//	@Tags		finance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	monthSummaryResponse
//	@Router		/api/v1/finance/expenses [get]
func (h *FinanceHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.MonthSummary(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	cats := make([]categoryTotalResponse, 0, len(s.Categories))
	for _, c := range s.Categories {
		cats = append(cats, categoryTotalResponse{Category: c.Category, Amount: c.Amount})
	}
	writeJSON(w, http.StatusOK, monthSummaryResponse{
		Expenses:        toExpenseResponses(s.Expenses),
		Total:           s.Total,
		DailyAverage:    s.DailyAverage,
		Categories:      cats,
		HighestCategory: s.HighestCategory,
		MonthlyBudget:   s.MonthlyBudget,
		RemainingBudget: s.RemainingBudget,
	})
}

// AddExpense records a one-time expense.
//
//	@Summary	Add an expense
//	@Tags		finance
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		addExpenseRequest	true	"Expense"
//	@Success	201		{object}	expenseResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/finance/expenses [post]
func (h *FinanceHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.AddExpense(r.Context(), finance.AddExpenseInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseResponses([]domain.RegularExpense{*e})[0])
}

// DeleteExpense removes a one-time expense.
//
//	@Summary	Delete an expense
//	@Tags		finance
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Expense ID"
//	@Success	200	{object}	OKResponse
//	@Router		/api/v1/finance/expenses/{id} [delete]
func (h *FinanceHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteExpense(r.Context(), finance.IDInput{ExpenseID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, "expense deleted")
}

// Fixed returns the recurring bills with due-date flags.
//
//	@Summary	Fixed expense summary
//	@Tags		finance
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	fixedSummaryResponse
//	@Router		/api/v1/finance/fixed [get]
func (h *FinanceHandler) Fixed(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.FixedSummary(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	items := make([]fixedItemResponse, 0, len(s.Items))
	for i := range s.Items {
		it := &s.Items[i]
		items = append(items, fixedItemResponse{
			fixedExpenseResponse: toFixedExpenseResponse(&it.Expense),
			DaysUntilDue:         it.DaysUntilDue,
			IsOverdue:            it.IsOverdue,
			IsDueSoon:            it.IsDueSoon,
		})
	}
	resp := fixedSummaryResponse{
		Items:           items,
		MonthlyTotal:    s.MonthlyTotal,
		MonthlyAverage:  s.MonthlyAverage,
		HighestCategory: s.HighestCategory,
	}
	if s.NextDue != nil {
		d := s.NextDue.Format(time.DateOnly)
		resp.NextDue = &d
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddFixed records a recurring bill.
//
//	@Summary	Add a fixed expense
//	@Tags		finance
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		addFixedRequest	true	"Fixed expense"
//	@Success	201		{object}	fixedExpenseResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/finance/fixed [post]
func (h *FinanceHandler) AddFixed(w http.ResponseWriter, r *http.Request) {
	var req addFixedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.AddFixed(r.Context(), finance.AddFixedInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Frequency:   domain.ExpenseFrequency(req.Frequency),
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFixedExpenseResponse(e))
}

// SetPaid marks a bill paid or unpaid.
//
//	@Summary	Set payment state
//	@Tags		finance
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"Fixed expense ID"
//	@Param		body	body		setPaidRequest	true	"Payment state"
//	@Success	200		{object}	fixedExpenseResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/finance/fixed/{id}/payment [post]
func (h *FinanceHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req setPaidRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.SetPaid(r.Context(), finance.SetPaidInput{ExpenseID: id, Paid: req.Paid})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFixedExpenseResponse(e))
}

// DeleteFixed removes a recurring bill.
//
//	@Summary	Delete a fixed expense
//	@Tags		finance
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Fixed expense ID"
//	@Success	200	{object}	OKResponse
//	@Router		/api/v1/finance/fixed/{id} [delete]
func (h *FinanceHandler) DeleteFixed(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteFixed(r.Context(), finance.IDInput{ExpenseID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, "fixed expense deleted")
}
