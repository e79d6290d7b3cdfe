package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, "*Handler.signup", &credentials) {
		return
	}

	user, token, err := h.services.AuthService.Signup(r.Context(), credentials)
	if err != nil {
		writeServiceError(w, r, "*Handler.signup", err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user signed up")

	h.startSession(w, token)
	utils.WriteJSON(w, models.AuthResponse{Success: true, User: &user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if !decodeJSON(w, r, "*Handler.login", &credentials) {
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeServiceError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	h.startSession(w, token)
	utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK)
}

// logout always succeeds for the caller. The presented token, if any, is
// revoked and the cookie cleared.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if tokenString, err := sessionTokenFromRequest(r); err == nil {
		if err = h.services.AuthService.Logout(r.Context(), tokenString); err != nil {
			writeServiceError(w, r, "*Handler.logout", err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	info, err := h.services.AuthService.Session(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "*Handler.session", err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

// startSession hands the token to both API clients (Authorization header)
// and browsers (HttpOnly cookie).
func (h *Handler) startSession(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
}
