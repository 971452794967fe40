package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/tutorial"
)

type tutorialService interface {
	Submit(ctx context.Context, input tutorial.SubmitInput) (*domain.TutorialRequest, error)
	ListMine(ctx context.Context) ([]domain.TutorialRequest, error)
	ListAll(ctx context.Context, limit int) ([]domain.TutorialRequest, error)
	Update(ctx context.Context, input tutorial.UpdateInput) (*domain.TutorialRequest, error)
}

// TutorialHandler serves tutorial requests.
type TutorialHandler struct {
	svc tutorialService
	log *slog.Logger
}

// NewTutorialHandler creates a TutorialHandler.
func NewTutorialHandler(svc tutorialService, logger *slog.Logger) *TutorialHandler {
	return &TutorialHandler{svc: svc, log: logger.With("handler", "tutorial")}
}

type submitTutorialRequest struct {
	Topic           string `json:"topic"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	Difficulty      string `json:"difficulty"`
	Platform        string `json:"platform"`
	AdditionalNotes string `json:"additional_notes"`
}

type updateTutorialRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// Mine lists the caller's requests.
//
//	@Summary	My tutorial requests
//	@Tags		tutorials
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	tutorialResponse
//	@Router		/api/v1/tutorials [get]
func (h *TutorialHandler) Mine(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTutorialResponses(list))
}

// Submit asks for a tutorial.
//
//	@Summary	Request a tutorial
//	@Tags		tutorials
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		submitTutorialRequest	true	"Request"
//	@Success	201		{object}	tutorialResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/tutorials [post]
func (h *TutorialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitTutorialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Submit(r.Context(), tutorial.SubmitInput{
		Topic:           req.Topic,
		Category:        req.Category,
		Description:     req.Description,
		Difficulty:      req.Difficulty,
		Platform:        req.Platform,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTutorialResponse(t))
}

// List returns every request for administrators.
//
//	@Summary	List tutorial requests
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"Max items, 0 for all"
//	@Success	200		{array}	tutorialResponse
//	@Router		/api/v1/admin/tutorials [get]
func (h *TutorialHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListAll(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTutorialResponses(list))
}

// Update sets the status and admin notes of a request.
//
//	@Summary	Update a tutorial request
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Request ID"
//	@Param		body	body		updateTutorialRequest	true	"Update"
//	@Success	200		{object}	tutorialResponse
//	@Router		/api/v1/admin/tutorials/{id} [patch]
func (h *TutorialHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateTutorialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Update(r.Context(), tutorial.UpdateInput{
		RequestID:  id,
		Status:     domain.TutorialStatus(req.Status),
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTutorialResponse(t))
}
