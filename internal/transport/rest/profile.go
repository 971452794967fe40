package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*user.Profile, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	User       *userResponse  `json:"user"`
	Elder      *userResponse  `json:"elder,omitempty"`
	Caregivers []userResponse `json:"caregivers,omitempty"`
}

func toProfileResponse(p *user.Profile) profileResponse {
	resp := profileResponse{
		User:  toUserResponse(p.User),
		Elder: toUserResponse(p.Elder),
	}
	if len(p.Caregivers) > 0 {
		resp.Caregivers = toUserResponses(p.Caregivers)
	}
	return resp
}

type updateProfileRequest struct {
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Gender           *string  `json:"gender"`
	Age              *int     `json:"age"`
	MonthlyBudget    *float64 `json:"monthly_budget"`
	EmergencyContact *string  `json:"emergency_contact"`
	CurrentPassword  string   `json:"current_password"`
	NewPassword      string   `json:"new_password"`
	ConfirmPassword  string   `json:"confirm_password"`
}

// Get returns the caller with the linked elder or caregivers.
//
//	@Summary	Get own profile
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	profileResponse
//	@Router		/api/v1/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// Update changes profile fields and optionally the password.
//
//	@Summary	Update own profile
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		updateProfileRequest	true	"Profile"
//	@Success	200		{object}	userResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/api/v1/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:             req.Name,
		Phone:            req.Phone,
		Gender:           req.Gender,
		Age:              req.Age,
		MonthlyBudget:    req.MonthlyBudget,
		EmergencyContact: req.EmergencyContact,
		CurrentPassword:  req.CurrentPassword,
		NewPassword:      req.NewPassword,
		ConfirmPassword:  req.ConfirmPassword,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
