package http

import (
	"net/http"

	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listWatchlists(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	watchlists, err := h.services.WatchlistService.ListWatchlists(r.Context(), id.ID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listWatchlists", err)
		return
	}

	utils.WriteJSON(w, models.WatchlistsResponse{Watchlists: nonNil(watchlists)}, http.StatusOK)
}

func (h *Handler) createWatchlist(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var newWatchlist models.NewWatchlist
	if !decodeJSON(w, r, "*Handler.createWatchlist", &newWatchlist) {
		return
	}

	watchlist, err := h.services.WatchlistService.CreateWatchlist(r.Context(), id.ID, newWatchlist)
	if err != nil {
		writeServiceError(w, r, "*Handler.createWatchlist", err)
		return
	}

	utils.WriteJSON(w, models.WatchlistResponse{Watchlist: watchlist}, http.StatusCreated)
}

// syncWatchlist answers PUT with the refreshed watchlist.
func (h *Handler) syncWatchlist(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runWatchlistSync(w, r, "*Handler.syncWatchlist")
	if !ok {
		return
	}

	utils.WriteJSON(w, models.WatchlistResponse{Watchlist: result.Watchlist}, http.StatusOK)
}

// syncWatchlistResult answers POST .../sync with the full sync outcome.
func (h *Handler) syncWatchlistResult(w http.ResponseWriter, r *http.Request) {
	result, ok := h.runWatchlistSync(w, r, "*Handler.syncWatchlistResult")
	if !ok {
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) runWatchlistSync(w http.ResponseWriter, r *http.Request, funcName string) (models.WatchlistSyncResult, bool) {
	id, ok := identity(w, r)
	if !ok {
		return models.WatchlistSyncResult{}, false
	}

	result, err := h.services.WatchlistService.SyncWatchlist(r.Context(), id.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return models.WatchlistSyncResult{}, false
	}

	logger.FromRequest(r).Debug().
		Str("func", funcName).
		Str("watchlist_id", result.WatchlistID).
		Msg("watchlist synced")

	return result, true
}

func (h *Handler) deleteWatchlist(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.services.WatchlistService.DeleteWatchlist(r.Context(), id.ID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteWatchlist", err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
