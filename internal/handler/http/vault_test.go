package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/co-script/models"
)

func TestVault_Lifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "collector@example.com")

	rec := api.do(t, http.MethodGet, "/api/vault", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/api/vault", token, map[string]any{
		"title":      "Great opener",
		"content":    "What if I told you...",
		"source_url": "https://example.com/post",
		"tags":       []string{"hooks", " hooks ", "", "openers"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decodeBody[models.VaultItemResponse](t, rec).Item

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Great opener", item.Title)
	assert.Equal(t, models.DefaultVaultSourceType, item.SourceType)
	assert.Equal(t, models.Tags{"hooks", "openers"}, item.Tags)

	rec = api.do(t, http.MethodGet, "/api/vault", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[models.VaultItemsResponse](t, rec).Items
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)

	rec = api.do(t, http.MethodDelete, "/api/vault/"+item.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = api.do(t, http.MethodDelete, "/api/vault/"+item.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVault_Validation(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "collector@example.com")

	rec := api.do(t, http.MethodPost, "/api/vault", token, map[string]string{"content": "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Title required", errorMessage(t, rec))

	rec = api.do(t, http.MethodPost, "/api/vault", token, map[string]string{"title": "t", "source_url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid source URL", errorMessage(t, rec))
}

func TestVault_OwnerIsolation(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signup(t, "owner@example.com")
	other := api.signup(t, "other@example.com")

	rec := api.do(t, http.MethodPost, "/api/vault", owner, map[string]string{"title": "mine"})
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decodeBody[models.VaultItemResponse](t, rec).Item

	rec = api.do(t, http.MethodGet, "/api/vault", other, nil)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())

	rec = api.do(t, http.MethodDelete, "/api/vault/"+item.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/vault", owner, nil)
	assert.Len(t, decodeBody[models.VaultItemsResponse](t, rec).Items, 1)
}
