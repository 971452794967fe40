package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/feedback"
)

type feedbackService interface {
	Submit(ctx context.Context, input feedback.SubmitInput) (*domain.Feedback, error)
	ListAll(ctx context.Context, limit int) ([]feedback.Item, error)
	SetStatus(ctx context.Context, input feedback.SetStatusInput) (*domain.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedbackHandler serves feedback submission and its admin triage.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

type submitFeedbackRequest struct {
	Type     string `json:"type"`
	Rating   *int   `json:"rating"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

type feedbackStatusRequest struct {
	Status string `json:"status"`
}

// Submit records feedback from the caller.
//
//	@Summary	Submit feedback
//	@Tags		feedback
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		submitFeedbackRequest	true	"Feedback"
//	@Success	201		{object}	feedbackResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/feedback [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.Submit(r.Context(), feedback.SubmitInput{
		Type:     req.Type,
		Rating:   req.Rating,
		Message:  req.Message,
		Priority: domain.FeedbackPriority(req.Priority),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeedbackResponse(f, ""))
}

// List returns all feedback, newest first.
//
//	@Summary	List feedback
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"Max items, 0 for all"
//	@Success	200		{array}	feedbackResponse
//	@Router		/api/v1/admin/feedback [get]
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out := make([]feedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, toFeedbackResponse(&items[i].Feedback, items[i].UserName))
	}
	writeJSON(w, http.StatusOK, out)
}

// SetStatus changes a feedback item's status.
//
//	@Summary	Set feedback status
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Feedback ID"
//	@Param		body	body		feedbackStatusRequest	true	"Status"
//	@Success	200		{object}	feedbackResponse
//	@Router		/api/v1/admin/feedback/{id} [patch]
func (h *FeedbackHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req feedbackStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	f, err := h.svc.SetStatus(r.Context(), feedback.SetStatusInput{
		FeedbackID: id,
		Status:     domain.FeedbackStatus(req.Status),
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toFeedbackResponse(f, ""))
}

// Delete removes a feedback item.
//
//	@Summary	Delete feedback
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Feedback ID"
//	@Success	200	{object}	OKResponse
//	@Router		/api/v1/admin/feedback/{id} [delete]
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, "feedback deleted")
}
