package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/co-script/models"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", sessionCookieName)
	return nil
}

func TestSignup_Success(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "  Alice@Example.com ",
		"password": testPassword,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decodeBody[models.AuthResponse](t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.User)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "alice", resp.User.DisplayName)
	assert.NotContains(t, rec.Body.String(), "password")

	assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid JSON",
		},
		{
			name:       "empty body",
			body:       nil,
			wantStatus: http.StatusBadRequest,
			wantError:  "Email and password required",
		},
		{
			name:       "invalid email",
			body:       map[string]string{"email": "not-an-email", "password": testPassword},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid email",
		},
		{
			name:       "short password",
			body:       map[string]string{"email": "bob@example.com", "password": "12345"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Password must be at least 6 characters",
		},
		{
			name:       "email already registered",
			body:       map[string]string{"email": "taken@example.com", "password": testPassword},
			wantStatus: http.StatusConflict,
			wantError:  "Email already registered",
		},
	}

	api := newTestAPI(t)
	api.signup(t, "taken@example.com")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/api/auth/signup", "", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	api.signup(t, "carol@example.com")

	t.Run("success", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "CAROL@example.com",
			"password": testPassword,
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		assert.NotEmpty(t, sessionCookie(t, rec).Value)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "carol@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid login credentials", errorMessage(t, rec))
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": testPassword,
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid login credentials", errorMessage(t, rec))
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "carol@example.com"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email and password required", errorMessage(t, rec))
	})
}

func TestSession(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "dave@example.com")

	rec := api.do(t, http.MethodGet, "/api/auth/session", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	info := decodeBody[models.SessionInfo](t, rec)
	assert.True(t, info.Authenticated)
	assert.Equal(t, "dave@example.com", info.Email)
	assert.NotEmpty(t, info.ID)
}

func TestSession_CookieAuth(t *testing.T) {
	api := newTestAPI(t)

	signup := api.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    "erin@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.AddCookie(sessionCookie(t, signup))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "erin@example.com", decodeBody[models.SessionInfo](t, rec).Email)
}

func TestLogout(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "frank@example.com")

	rec := api.do(t, http.MethodPost, "/api/auth/logout", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)

	rec = api.do(t, http.MethodGet, "/api/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_WithoutSession(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/auth/logout", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
