package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kadong/kadong-backend/internal/domain"
	"github.com/kadong/kadong-backend/internal/service/auth"
	"github.com/kadong/kadong-backend/internal/service/user"
	"github.com/kadong/kadong-backend/internal/transport/respond"
	"github.com/kadong/kadong-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput, client auth.ClientInfo) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput, client auth.ClientInfo) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput, client auth.ClientInfo) (*auth.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error
}

// profileService serves the /me endpoints.
type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// forgotPasswordMessage is returned whether or not the account exists.
const forgotPasswordMessage = "If an account exists for this email, a password reset link has been sent"

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc      authService
	profiles profileService
	errs     *respond.Errors
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, profiles profileService, errs *respond.Errors) *AuthHandler {
	return &AuthHandler{svc: svc, profiles: profiles, errs: errs}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name        domain.Optional[string]          `json:"name"`
	Preferences domain.Optional[json.RawMessage] `json:"preferences"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         userResponse `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}, clientInfo(r))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}, clientInfo(r))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, respond.CodeUnauthorized, "invalid email or password")
			return
		}
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{
		RefreshToken: req.RefreshToken,
	}, clientInfo(r))
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /api/auth/logout. Without a refresh token every
// session of the caller is revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	if err := h.svc.Logout(r.Context(), req.RefreshToken); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Logged out")
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, forgotPasswordMessage)
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.ResetPassword(r.Context(), auth.ResetPasswordInput{
		Token:    req.Token,
		Password: req.Password,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Password has been reset")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PUT /api/auth/me.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.profiles.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:        req.Name,
		Preferences: req.Preferences,
	})
	if err != nil {
		h.errs.Write(w, r, err)
		return
	}

	respond.Data(w, http.StatusOK, toUserResponse(u))
}

func clientInfo(r *http.Request) auth.ClientInfo {
	return auth.ClientInfo{
		UserAgent: r.UserAgent(),
		IP:        ctxutil.ClientIPFromCtx(r.Context()),
	}
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresAt:    result.ExpiresAt,
		User:         toUserResponse(result.User),
	}
}
