package http

import (
	"net/http"

	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listScripts(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	scripts, err := h.services.ScriptService.ListScripts(r.Context(), id.ID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listScripts", err)
		return
	}

	utils.WriteJSON(w, models.ScriptsResponse{Scripts: nonNil(scripts)}, http.StatusOK)
}

func (h *Handler) createScript(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var newScript models.NewScript
	if !decodeJSON(w, r, "*Handler.createScript", &newScript) {
		return
	}

	script, err := h.services.ScriptService.CreateScript(r.Context(), id.ID, newScript)
	if err != nil {
		writeServiceError(w, r, "*Handler.createScript", err)
		return
	}

	utils.WriteJSON(w, models.ScriptResponse{Script: script}, http.StatusCreated)
}

func (h *Handler) getScript(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	script, err := h.services.ScriptService.GetScript(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getScript", err)
		return
	}

	utils.WriteJSON(w, models.ScriptResponse{Script: script}, http.StatusOK)
}

func (h *Handler) updateScript(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var patch models.ScriptPatch
	if !decodeJSON(w, r, "*Handler.updateScript", &patch) {
		return
	}

	script, err := h.services.ScriptService.UpdateScript(r.Context(), id.ID, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateScript", err)
		return
	}

	utils.WriteJSON(w, models.ScriptResponse{Script: script}, http.StatusOK)
}

func (h *Handler) deleteScript(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.services.ScriptService.DeleteScript(r.Context(), id.ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteScript", err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) listVersions(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	versions, err := h.services.ScriptService.ListVersions(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.listVersions", err)
		return
	}

	utils.WriteJSON(w, models.VersionsResponse{Versions: nonNil(versions)}, http.StatusOK)
}

func (h *Handler) createShareLink(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	link, err := h.services.ShareService.CreateShareLink(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.createShareLink", err)
		return
	}

	utils.WriteJSON(w, models.ShareResponse{Token: link.Token, ExpiresAt: link.ExpiresAt}, http.StatusCreated)
}

// nonNil keeps empty lists serialized as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
