package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/co-script/models"
)

func (api *testAPI) createScript(t *testing.T, token string, body any) models.Script {
	t.Helper()
	rec := api.do(t, http.MethodPost, "/api/scripts", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[models.ScriptResponse](t, rec).Script
}

func TestCreateScript_Defaults(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")

	script := api.createScript(t, token, nil)

	assert.NotEmpty(t, script.ID)
	assert.Equal(t, models.DefaultScriptTitle, script.Title)
	assert.Equal(t, models.VideoScript, script.ScriptType)
	assert.Equal(t, models.StatusDraft, script.Status)
	assert.Empty(t, script.Content)
	assert.Nil(t, script.Score)
}

func TestCreateScript_InvalidType(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")

	rec := api.do(t, http.MethodPost, "/api/scripts", token, map[string]string{"script_type": "opera"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid script type", errorMessage(t, rec))
}

func TestListScripts(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")

	rec := api.do(t, http.MethodGet, "/api/scripts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"scripts":[]}`, rec.Body.String())

	first := api.createScript(t, token, map[string]string{"title": "First"})
	second := api.createScript(t, token, map[string]string{"title": "Second"})

	rec = api.do(t, http.MethodGet, "/api/scripts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	scripts := decodeBody[models.ScriptsResponse](t, rec).Scripts
	require.Len(t, scripts, 2)

	ids := []string{scripts[0].ID, scripts[1].ID}
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids)
}

func TestUpdateScript_Versioning(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")
	script := api.createScript(t, token, map[string]string{"content": "first draft"})
	path := "/api/scripts/" + script.ID

	rec := api.do(t, http.MethodPatch, path, token, map[string]string{"content": "second draft"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "second draft", decodeBody[models.ScriptResponse](t, rec).Script.Content)

	// same content and metadata-only patches do not archive
	rec = api.do(t, http.MethodPatch, path, token, map[string]string{"content": "second draft"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodPatch, path, token, map[string]any{"title": "Renamed", "score": 72})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.ScriptResponse](t, rec).Script
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.Score)
	assert.Equal(t, 72, *updated.Score)
	assert.Equal(t, "second draft", updated.Content)

	rec = api.do(t, http.MethodPatch, path, token, map[string]string{"content": "third draft"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, path+"/versions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	versions := decodeBody[models.VersionsResponse](t, rec).Versions
	require.Len(t, versions, 2)

	assert.Equal(t, 2, versions[0].VersionNumber)
	assert.Equal(t, "second draft", versions[0].Content)
	require.NotNil(t, versions[0].Score)
	assert.Equal(t, 72, *versions[0].Score)

	assert.Equal(t, 1, versions[1].VersionNumber)
	assert.Equal(t, "first draft", versions[1].Content)
	assert.Nil(t, versions[1].Score)
}

func TestUpdateScript_ScoreNullClears(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")
	script := api.createScript(t, token, map[string]string{"content": "draft"})
	path := "/api/scripts/" + script.ID

	rec := api.do(t, http.MethodPatch, path, token, map[string]any{"score": 64})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, decodeBody[models.ScriptResponse](t, rec).Script.Score)

	// an absent key keeps the score
	rec = api.do(t, http.MethodPatch, path, token, map[string]any{"title": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	kept := decodeBody[models.ScriptResponse](t, rec).Script.Score
	require.NotNil(t, kept)
	assert.Equal(t, 64, *kept)

	rec = api.do(t, http.MethodPatch, path, token, `{"score": null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decodeBody[models.ScriptResponse](t, rec).Script.Score)

	rec = api.do(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[models.ScriptResponse](t, rec).Script.Score)
}

func TestUpdateScript_Validation(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")
	script := api.createScript(t, token, nil)

	tests := []struct {
		name      string
		body      any
		wantError string
	}{
		{"score above range", map[string]any{"score": 101}, "Score must be between 0 and 100"},
		{"unknown status", map[string]any{"status": "lost"}, "Invalid status"},
		{"negative word count", map[string]any{"word_count": -1}, "Word count must not be negative"},
		{"broken json", `{"title":`, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPatch, "/api/scripts/"+script.ID, token, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestScripts_OwnerIsolation(t *testing.T) {
	api := newTestAPI(t)
	owner := api.signup(t, "owner@example.com")
	intruder := api.signup(t, "intruder@example.com")
	script := api.createScript(t, owner, map[string]string{"content": "private"})
	path := "/api/scripts/" + script.ID

	requests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, path, nil},
		{http.MethodPatch, path, map[string]string{"content": "hijacked"}},
		{http.MethodDelete, path, nil},
		{http.MethodGet, path + "/versions", nil},
		{http.MethodPost, path + "/share", nil},
	}
	for _, req := range requests {
		rec := api.do(t, req.method, req.path, intruder, req.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, req.method+" "+req.path)
		assert.Equal(t, "Not found", errorMessage(t, rec))
	}

	rec := api.do(t, http.MethodGet, "/api/scripts", intruder, nil)
	assert.JSONEq(t, `{"scripts":[]}`, rec.Body.String())

	rec = api.do(t, http.MethodGet, path, owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "private", decodeBody[models.ScriptResponse](t, rec).Script.Content)
}

func TestDeleteScript(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "writer@example.com")
	script := api.createScript(t, token, map[string]string{"content": "v1"})
	path := "/api/scripts/" + script.ID

	rec := api.do(t, http.MethodPatch, path, token, map[string]string{"content": "v2"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = api.do(t, http.MethodPost, path+"/share", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	shareToken := decodeBody[models.ShareResponse](t, rec).Token

	rec = api.do(t, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, path, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, path+"/versions", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/shared/"+shareToken, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodDelete, path, token, nil).Code)
}
