package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/mock"
	"github.com/MKhiriev/co-script/internal/service"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
)

const (
	testVersion  = "1.2.3"
	testPassword = "secret-password"
)

// testAPI is the full router over a private in-memory SQLite database. Only
// the text-generation provider is mocked.
type testAPI struct {
	router   http.Handler
	llm      *mock.MockLLMClient
	storages *store.Storages
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))
	db, err := store.NewConnectSQLite(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	storages := store.NewStoragesFromDB(db, store.NewMemorySessionStore(), utils.NewUUIDGenerator(), logger.Nop())
	t.Cleanup(func() { _ = storages.Close() })

	_, err = store.SeedSystemFrameworks(ctx, storages.FrameworkRepository, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)

	llm := mock.NewMockLLMClient(gomock.NewController(t))
	services, err := service.NewServices(storages, llm, config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "handler-test-sign-key",
			TokenIssuer:      "co-script-test",
			TokenDuration:    time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			Version:          testVersion,
		},
	}, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, config.Server{}, logger.Nop())
	return &testAPI{router: h.Init(), llm: llm, storages: storages}
}

// do sends body (a raw string or a value marshalled to JSON) with an
// optional bearer token.
func (api *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

// signup registers email and returns its bearer token.
func (api *testAPI) signup(t *testing.T, email string) string {
	t.Helper()

	rec := api.do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, err := utils.ParseBearerToken(rec.Header().Get("Authorization"))
	require.NoError(t, err)
	return token
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[utils.ErrorBody](t, rec).Error
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{SecureCookies: true, RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.True(t, h.secureCookies)
	assert.Equal(t, time.Second, h.requestTimeout)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := NewHandler(&service.Services{}, config.Server{}, logger.Nop()).Init()

	expected := map[string][]string{
		"/api/version":               {http.MethodGet},
		"/api/auth/signup":           {http.MethodPost},
		"/api/auth/login":            {http.MethodPost},
		"/api/auth/logout":           {http.MethodPost},
		"/api/auth/session":          {http.MethodGet},
		"/shared/{token}":            {http.MethodGet},
		"/api/scripts":               {http.MethodGet, http.MethodPost},
		"/api/scripts/{id}":          {http.MethodGet, http.MethodPatch, http.MethodDelete},
		"/api/scripts/{id}/versions": {http.MethodGet},
		"/api/scripts/{id}/share":    {http.MethodPost},
		"/api/ai/score":              {http.MethodPost},
		"/api/ai/generate":           {http.MethodPost},
		"/api/ai/hooks":              {http.MethodPost},
		"/api/ai/rewrite":            {http.MethodPost},
		"/api/ai/analyze-url":        {http.MethodPost},
		"/api/vault":                 {http.MethodGet, http.MethodPost},
		"/api/vault/{id}":            {http.MethodDelete},
		"/api/watchlists":            {http.MethodGet, http.MethodPost},
		"/api/watchlists/{id}":       {http.MethodPut, http.MethodDelete},
		"/api/watchlists/{id}/sync":  {http.MethodPost},
		"/api/frameworks":            {http.MethodGet, http.MethodPost},
	}

	registered := make(map[string][]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[route.Pattern] = append(registered[route.Pattern], method)
		}
	}

	for pattern, methods := range expected {
		assert.ElementsMatch(t, methods, registered[pattern], pattern)
	}
}

func TestInit_ProtectedRoutesRequireSession(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/session"},
		{http.MethodGet, "/api/scripts"},
		{http.MethodPost, "/api/scripts"},
		{http.MethodPatch, "/api/scripts/some-id"},
		{http.MethodPost, "/api/ai/score"},
		{http.MethodGet, "/api/vault"},
		{http.MethodPut, "/api/watchlists/some-id"},
		{http.MethodGet, "/api/frameworks"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := api.do(t, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized", errorMessage(t, rec))
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/nonexistent", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", errorMessage(t, rec))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	api := newTestAPI(t)

	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/scripts"},
		{http.MethodGet, "/api/auth/login"},
	} {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := api.do(t, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not found", errorMessage(t, rec))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/version", "", nil)
	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "client-trace-1")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, "client-trace-1", rec.Header().Get(traceIDHeader))
}

func TestGetServerVersion(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, testVersion, decodeBody[versionResponse](t, rec).Version)
}
