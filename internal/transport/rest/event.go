package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/event"
)

type eventService interface {
	Create(ctx context.Context, input event.CreateInput) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, input event.IDInput) (*event.Details, error)
	Join(ctx context.Context, input event.IDInput) error
	Leave(ctx context.Context, input event.IDInput) error
	Delete(ctx context.Context, input event.IDInput) error
}

// EventHandler serves community events.
type EventHandler struct {
	svc eventService
	loc *time.Location
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, loc *time.Location, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, loc: loc, log: logger.With("handler", "event")}
}

type createEventRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
}

type participantResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

type eventDetailsResponse struct {
	Event           eventResponse         `json:"event"`
	Participants    []participantResponse `json:"participants"`
	IsParticipating bool                  `json:"is_participating"`
	IsOrganizer     bool                  `json:"is_organizer"`
}

// List returns upcoming events.
//
//	@Summary	List upcoming events
//	@Tags		events
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	eventResponse
//	@Router		/api/v1/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(list, h.loc))
}

// Create organizes an event. max_participants defaults to 1.
//
//	@Summary	Create an event
//	@Tags		events
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		createEventRequest	true	"Event"
//	@Success	201		{object}	eventResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := createEventRequest{MaxParticipants: 1}
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.Create(r.Context(), event.CreateInput{
		Name:            req.Name,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(e, h.loc))
}

// Get returns an event with its participants.
//
//	@Summary	Event details
//	@Tags		events
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{object}	eventDetailsResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/events/{id} [get]
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), event.IDInput{EventID: id})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	participants := make([]participantResponse, 0, len(d.Participants))
	for _, p := range d.Participants {
		participants = append(participants, participantResponse{UserID: p.UserID, Name: p.Name, JoinedAt: p.JoinedAt})
	}
	writeJSON(w, http.StatusOK, eventDetailsResponse{
		Event:           toEventResponse(d.Event, h.loc),
		Participants:    participants,
		IsParticipating: d.IsParticipating,
		IsOrganizer:     d.IsOrganizer,
	})
}

// Join adds the caller to an event.
//
//	@Summary	Join an event
//	@Tags		events
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{object}	OKResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/api/v1/events/{id}/join [post]
func (h *EventHandler) Join(w http.ResponseWriter, r *http.Request) {
	h.participation(w, r, h.svc.Join, "joined event")
}

// Leave removes the caller from an event.
//
//	@Summary	Leave an event
//	@Tags		events
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{object}	OKResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/api/v1/events/{id}/leave [post]
func (h *EventHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.participation(w, r, h.svc.Leave, "left event")
}

// Delete cancels an event. Only the organizer may do so.
//
//	@Summary	Delete an event
//	@Tags		events
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Event ID"
//	@Success	200	{object}	OKResponse
//	@Failure	403	{object}	ErrorResponse
//	@Router		/api/v1/events/{id} [delete]
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.participation(w, r, h.svc.Delete, "event deleted")
}

func (h *EventHandler) participation(w http.ResponseWriter, r *http.Request, op func(context.Context, event.IDInput) error, msg string) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), event.IDInput{EventID: id}); err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeOK(w, msg)
}
