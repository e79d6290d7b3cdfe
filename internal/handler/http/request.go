package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/co-script/internal/app"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/models"
)

// maxBodyBytes bounds request bodies after decompression.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst at
// its zero value. On failure a 400 "Invalid JSON" is written and false is
// returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
	utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
	return false
}

// identity returns the caller resolved by the auth middleware. Handlers
// behind h.auth always have one; the 401 branch guards misrouted handlers.
func identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, app.MsgUnauthorized, http.StatusUnauthorized)
	}
	return id, ok
}
