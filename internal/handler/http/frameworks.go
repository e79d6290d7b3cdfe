package http

import (
	"net/http"

	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

// listFrameworks returns the system catalogue plus the caller's own
// frameworks.
func (h *Handler) listFrameworks(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	frameworks, err := h.services.FrameworkService.ListFrameworks(r.Context(), id.ID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listFrameworks", err)
		return
	}

	utils.WriteJSON(w, models.FrameworksResponse{Frameworks: nonNil(frameworks)}, http.StatusOK)
}

func (h *Handler) createFramework(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var newFramework models.NewFramework
	if !decodeJSON(w, r, "*Handler.createFramework", &newFramework) {
		return
	}

	framework, err := h.services.FrameworkService.CreateFramework(r.Context(), id.ID, newFramework)
	if err != nil {
		writeServiceError(w, r, "*Handler.createFramework", err)
		return
	}

	utils.WriteJSON(w, models.FrameworkResponse{Framework: framework}, http.StatusCreated)
}
