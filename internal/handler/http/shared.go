package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/co-script/internal/app"
	"github.com/MKhiriev/co-script/internal/service"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
	"github.com/go-chi/chi/v5"
)

// getShared serves the public read-only view of a shared script. An expired
// link is a regular page state and answers 200.
func (h *Handler) getShared(w http.ResponseWriter, r *http.Request) {
	script, err := h.services.ShareService.ResolveShareLink(r.Context(), chi.URLParam(r, "token"))
	if errors.Is(err, service.ErrShareLinkExpired) {
		utils.WriteJSON(w, models.SharedView{Status: models.SharedStatusExpired, Message: app.MsgShareLinkExpired}, http.StatusOK)
		return
	}
	if err != nil {
		writeServiceError(w, r, "*Handler.getShared", err)
		return
	}

	utils.WriteJSON(w, models.SharedView{Status: models.SharedStatusOK, Script: &script}, http.StatusOK)
}
