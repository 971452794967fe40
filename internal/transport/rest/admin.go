package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/service/user"
)

type userAdminService interface {
	ListUsers(ctx context.Context, limit, offset int) (*user.UserList, error)
	UserDetails(ctx context.Context, id uuid.UUID) (*user.Profile, error)
}

// AdminHandler serves admin user browsing.
type AdminHandler struct {
	users userAdminService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userAdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		log:   logger.With("handler", "admin"),
	}
}

type userListResponse struct {
	Users  []userResponse `json:"users"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// Users returns a page of users.
//
//	@Summary	List users
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query		int	false	"Page size"	default(50)
//	@Param		offset	query		int	false	"Offset"
//	@Success	200		{object}	userListResponse
//	@Failure	403		{object}	ErrorResponse
//	@Router		/api/v1/admin/users [get]
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	list, err := h.users.ListUsers(r.Context(), limit, offset)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, userListResponse{
		Users:  toUserResponses(list.Users),
		Total:  list.Total,
		Limit:  limit,
		Offset: offset,
	})
}

// User returns one user with linked accounts.
//
//	@Summary	User details
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	profileResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/admin/users/{id} [get]
func (h *AdminHandler) User(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.users.UserDetails(r.Context(), id)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
