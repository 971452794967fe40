package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/agewell-backend/internal/domain"
	"github.com/heartmarshall/agewell-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

// AuthHandler serves the public auth endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
	Role             string `json:"role"`
	Gender           string `json:"gender"`
	Age              int    `json:"age"`
	Street           string `json:"street"`
	City             string `json:"city"`
	State            string `json:"state"`
	Pincode          string `json:"pincode"`
	EmergencyContact string `json:"emergency_contact"`
	ElderEmail       string `json:"elder_email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *userResponse `json:"user"`
}

func toAuthResponse(res *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		User:        toUserResponse(res.User),
	}
}

// Register creates an elder or caregiver account and signs it in.
//
//	@Summary	Register an account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		registerRequest	true	"Account details"
//	@Success	201		{object}	authResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Password:         req.Password,
		ConfirmPassword:  req.ConfirmPassword,
		Role:             domain.UserRole(req.Role),
		Gender:           req.Gender,
		Age:              req.Age,
		Street:           req.Street,
		City:             req.City,
		State:            req.State,
		Pincode:          req.Pincode,
		EmergencyContact: req.EmergencyContact,
		ElderEmail:       req.ElderEmail,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(res))
}

// Login exchanges email and password for an access token.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		loginRequest	true	"Credentials"
//	@Success	200		{object}	authResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(res))
}
