package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rewear-app/backend/internal/api/middleware"
	"github.com/rewear-app/backend/internal/api/types"
	"github.com/rewear-app/backend/internal/api/validators"
	"github.com/rewear-app/backend/internal/services"
)

// RefreshCookie is the httpOnly cookie carrying the refresh token.
const RefreshCookie = "refresh_token"

type AuthHandler struct {
	auth         services.AuthService
	cookieSecure bool
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewAuthHandler(auth services.AuthService, cookieSecure bool, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), &services.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		Password2: req.Password2,
		FullName:  req.FullName,
		City:      req.City,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

// Login verifies credentials and issues the token pair, both in the body and
// as httpOnly cookies for browser clients.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.Check(req); err != nil {
		writeError(w, err)
		return
	}

	pair, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setCookie(w, middleware.AccessCookie, pair.AccessToken, h.accessTTL)
	h.setCookie(w, RefreshCookie, pair.RefreshToken, h.refreshTTL)

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"access_token":  pair.AccessToken,
			"refresh_token": pair.RefreshToken,
			"token_type":    "Bearer",
			"expires_in":    pair.ExpiresIn,
			"user": map[string]any{
				"id":       user.ID,
				"email":    user.Email,
				"username": user.Username,
			},
		},
	})
}

// Refresh exchanges a refresh token (body field or cookie) for a new access
// token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req types.RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	token := req.RefreshToken
	if token == "" {
		if c, err := r.Cookie(RefreshCookie); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		writeErrorStr(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	access, err := h.auth.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setCookie(w, middleware.AccessCookie, access, h.accessTTL)
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"access_token": access,
			"token_type":   "Bearer",
			"expires_in":   int64(h.accessTTL.Seconds()),
		},
	})
}

// Logout clears both token cookies. There is no server-side blacklist: a
// token captured before logout stays valid until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, middleware.AccessCookie)
	h.clearCookie(w, RefreshCookie)
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    map[string]string{"message": "Logged out successfully"},
	})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
