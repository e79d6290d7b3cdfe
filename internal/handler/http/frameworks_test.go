package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/co-script/models"
)

func TestFrameworks(t *testing.T) {
	api := newTestAPI(t)
	author := api.signup(t, "author@example.com")
	other := api.signup(t, "other@example.com")

	rec := api.do(t, http.MethodGet, "/api/frameworks", author, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	system := decodeBody[models.FrameworksResponse](t, rec).Frameworks
	require.NotEmpty(t, system)
	for _, fw := range system {
		assert.True(t, fw.IsSystem, fw.Name)
		assert.Nil(t, fw.UserID)
	}

	rec = api.do(t, http.MethodPost, "/api/frameworks", author, map[string]any{
		"name":      "My Loop",
		"category":  "storytelling",
		"structure": []string{" Tease ", "Reveal"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[models.FrameworkResponse](t, rec).Framework
	assert.False(t, created.IsSystem)
	require.NotNil(t, created.UserID)
	assert.Equal(t, models.Steps{"Tease", "Reveal"}, created.Structure)

	rec = api.do(t, http.MethodGet, "/api/frameworks", author, nil)
	assert.Len(t, decodeBody[models.FrameworksResponse](t, rec).Frameworks, len(system)+1)

	rec = api.do(t, http.MethodGet, "/api/frameworks", other, nil)
	assert.Len(t, decodeBody[models.FrameworksResponse](t, rec).Frameworks, len(system))
}

func TestCreateFramework_Validation(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "author@example.com")

	rec := api.do(t, http.MethodPost, "/api/frameworks", token, map[string]string{"category": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name required", errorMessage(t, rec))

	rec = api.do(t, http.MethodPost, "/api/frameworks", token, map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Category required", errorMessage(t, rec))
}
