package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agewell-backend/internal/service/assistant"
)

type assistantService interface {
	Chat(ctx context.Context, input assistant.ChatInput) (string, error)
}

// AssistantHandler proxies chat messages to the health assistant.
type AssistantHandler struct {
	svc assistantService
	log *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler.
func NewAssistantHandler(svc assistantService, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, log: logger.With("handler", "assistant")}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat sends one message and returns the assistant's reply.
//
//	@Summary	Chat with the assistant
//	@Tags		assistant
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		chatRequest	true	"Message"
//	@Success	200		{object}	chatResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	502		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Failure	504		{object}	ErrorResponse
//	@Router		/api/v1/assistant/chat [post]
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.svc.Chat(r.Context(), assistant.ChatInput{Message: req.Message})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
