package handlers

import (
	"net/http"

	"github.com/migge/supershopcart/internal/transport/http/httperr"
)

type googleLoginRequest struct {
	IdentityToken string `json:"identity_token"`
	DeviceID      string `json:"device_id,omitempty"`
}

// LoginGoogle — POST /auth/google: обмен Google ID-токена на пару токенов.
func (h *Handlers) LoginGoogle(w http.ResponseWriter, r *http.Request) {
	var in googleLoginRequest
	if err := decodeStrict(r, &in); err != nil || in.IdentityToken == "" {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	pair, shopper, err := h.Service.LoginWithGoogle(r.Context(), in.IdentityToken, in.DeviceID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authToResponse(pair, shopper))
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"device_id,omitempty"`
}

// Register — POST /auth/register: регистрация по email/паролю.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	pair, shopper, err := h.Service.RegisterShopper(r.Context(), in.Email, in.Password, in.DeviceID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authToResponse(pair, shopper))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"device_id,omitempty"`
}

// Login — POST /auth/login: вход по email/паролю.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	pair, shopper, err := h.Service.LoginManual(r.Context(), in.Email, in.Password, in.DeviceID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authToResponse(pair, shopper))
}

type devLoginRequest struct {
	Email    string `json:"email"`
	DeviceID string `json:"device_id,omitempty"`
}

// DevLogin — POST /auth/dev/login: локальный вход без внешнего провайдера.
// Роут регистрируется только при включённом unsafe_dev_login.
func (h *Handlers) DevLogin(w http.ResponseWriter, r *http.Request) {
	var in devLoginRequest
	if err := decodeStrict(r, &in); err != nil || in.Email == "" {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	pair, shopper, err := h.Service.DevLogin(r.Context(), in.Email, in.DeviceID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authToResponse(pair, shopper))
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
	DeviceID     string `json:"device_id,omitempty"`
}

// Refresh — POST /auth/refresh: ротация пары токенов по refresh-токену.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	pair, shopper, err := h.Service.RefreshTokenPair(r.Context(), in.RefreshToken, in.DeviceID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authToResponse(pair, shopper))
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout — POST /auth/logout: отзыв одной сессии. Идемпотентен.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in logoutRequest
	if err := decodeStrict(r, &in); err != nil || in.RefreshToken == "" {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	if err := h.Service.Logout(r.Context(), in.RefreshToken); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type logoutAllResponse struct {
	SessionsRevoked int64 `json:"sessions_revoked"`
}

// LogoutAll — POST /auth/logout_all: отзыв всех сессий принципала.
func (h *Handlers) LogoutAll(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	revoked, err := h.Service.LogoutAll(r.Context(), p.Shopper.ID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logoutAllResponse{SessionsRevoked: revoked})
}
