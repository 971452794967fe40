package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/reminder"
)

type reminderService interface {
	Add(ctx context.Context, input reminder.AddInput) (*domain.Reminder, error)
	List(ctx context.Context) (*reminder.ListResult, error)
	Complete(ctx context.Context, input reminder.IDInput) error
	Delete(ctx context.Context, input reminder.IDInput) error
}

// ReminderHandler serves the caller's reminders.
type ReminderHandler struct {
	svc reminderService
	loc *time.Location
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler. Due dates are rendered in loc.
func NewReminderHandler(svc reminderService, loc *time.Location, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, loc: loc, log: logger.With("handler", "reminder")}
}

type addReminderRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type reminderListResponse struct {
	Soon      []reminderResponse `json:"soon"`
	Later     []reminderResponse `json:"later"`
	Completed []reminderResponse `json:"completed"`
}

// List groups reminders into soon, later and completed.
//
//	@Summary	List reminders
//	@Tags		reminders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	reminderListResponse
//	@Router		/api/v1/reminders [get]
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.List(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, reminderListResponse{
		Soon:      toReminderResponses(res.Soon, h.loc),
		Later:     toReminderResponses(res.Later, h.loc),
		Completed: toReminderResponses(res.Completed, h.loc),
	})
}

// Add creates a reminder.
//
//	@Summary	Add a reminder
//	@Tags		reminders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		addReminderRequest	true	"Reminder"
//	@Success	201		{object}	reminderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/reminders [post]
func (h *ReminderHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rem, err := h.svc.Add(r.Context(), reminder.AddInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReminderResponses([]domain.Reminder{*rem}, h.loc)[0])
}

// Complete marks a reminder done.
//
//	@Summary	Complete a reminder
//	@Tags		reminders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Reminder ID"
//	@Success	200	{object}	OKResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/reminders/{id}/complete [post]
func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Complete(r.Context(), reminder.IDInput{ReminderID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, "reminder completed")
}

// Delete removes a reminder.
//
//	@Summary	Delete a reminder
//	@Tags		reminders
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Reminder ID"
//	@Success	200	{object}	OKResponse
//	@Router		/api/v1/reminders/{id} [delete]
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), reminder.IDInput{ReminderID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, "reminder deleted")
}
