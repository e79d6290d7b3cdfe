// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing and compression are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/co-script/internal/app"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
)

const (
	sessionCookieName = "coscript_session"
	loginPath         = "/login"
)

// auth is an HTTP middleware that enforces JWT-based sessions.
//
// The token is taken from the "Authorization: Bearer" header or, when the
// header is absent, from the session cookie. It is validated via
// [service.AuthService.ParseToken], which also consults the revocation list.
// On success the caller's [models.Identity] and the parsed token are stored
// in the request context.
//
// Every failure is treated as "no session": browser navigations (GET with
// Accept: text/html) are redirected to the login page with 303, all other
// requests get 401 {"error":"Unauthorized"}.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("request without session")
			rejectUnauthenticated(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("path", r.URL.Path).Msg("session token rejected")
			rejectUnauthenticated(w, r)
			return
		}

		ctx = utils.WithIdentity(ctx, token.Identity())
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest prefers the Authorization header over the cookie.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSessionToken
	}
	return cookie.Value, nil
}

func rejectUnauthenticated(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}
	utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
}
