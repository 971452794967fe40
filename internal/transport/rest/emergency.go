package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/emergency"
)

type emergencyService interface {
	Contact(ctx context.Context) (*domain.EmergencyContact, error)
	LogCall(ctx context.Context, input emergency.LogCallInput) (*domain.EmergencyLog, error)
}

// EmergencyHandler resolves the emergency contact and logs calls.
type EmergencyHandler struct {
	svc emergencyService
	log *slog.Logger
}

// NewEmergencyHandler creates an EmergencyHandler.
func NewEmergencyHandler(svc emergencyService, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{svc: svc, log: logger.With("handler", "emergency")}
}

type contactResponse struct {
	Contact *domain.EmergencyContact `json:"contact"`
}

type logCallRequest struct {
	ContactType string `json:"contact_type"`
	PhoneNumber string `json:"phone_number"`
}

// Contact returns whom the caller should ring. contact is null when nobody
// is configured.
//
//	@Summary	Resolve emergency contact
//	@Tags		emergency
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	contactResponse
//	@Router		/api/v1/emergency/contact [get]
func (h *EmergencyHandler) Contact(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Contact(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Contact: c})
}

// LogCall records that the caller placed an emergency call.
//
//	@Summary	Log an emergency call
//	@Tags		emergency
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		logCallRequest	true	"Call"
//	@Success	201		{object}	emergencyLogResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/emergency/logs [post]
func (h *EmergencyHandler) LogCall(w http.ResponseWriter, r *http.Request) {
	var req logCallRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	l, err := h.svc.LogCall(r.Context(), emergency.LogCallInput{
		ContactType: req.ContactType,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmergencyLogResponse(l))
}
