package http

import (
	"net/http"

	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listVaultItems(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	items, err := h.services.VaultService.ListVaultItems(r.Context(), id.ID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listVaultItems", err)
		return
	}

	utils.WriteJSON(w, models.VaultItemsResponse{Items: nonNil(items)}, http.StatusOK)
}

func (h *Handler) createVaultItem(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var newItem models.NewVaultItem
	if !decodeJSON(w, r, "*Handler.createVaultItem", &newItem) {
		return
	}

	item, err := h.services.VaultService.CreateVaultItem(r.Context(), id.ID, newItem)
	if err != nil {
		writeServiceError(w, r, "*Handler.createVaultItem", err)
		return
	}

	utils.WriteJSON(w, models.VaultItemResponse{Item: item}, http.StatusCreated)
}

func (h *Handler) deleteVaultItem(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.services.VaultService.DeleteVaultItem(r.Context(), id.ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteVaultItem", err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
