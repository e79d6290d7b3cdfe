package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/co-script/internal/app"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/service"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/MKhiriev/co-script/internal/validators"
)

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrAINotConfigured:         {http.StatusInternalServerError, app.MsgAINotConfigured},
	service.ErrAIUpstream:              {http.StatusInternalServerError, app.MsgAIError},

	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyRegistered},
	store.ErrUserNotFound:       {http.StatusNotFound, app.MsgNotFound},
	store.ErrScriptNotFound:     {http.StatusNotFound, app.MsgNotFound},
	store.ErrShareLinkNotFound:  {http.StatusNotFound, app.MsgNotFound},
	store.ErrVaultItemNotFound:  {http.StatusNotFound, app.MsgNotFound},
	store.ErrWatchlistNotFound:  {http.StatusNotFound, app.MsgNotFound},
	store.ErrVersionConflict:    {http.StatusInternalServerError, app.MsgVersionConflict},
}

// replyFromError maps a service error to a status and a caller-safe message.
// Validation errors carry their own message; unknown errors are 500.
func replyFromError(err error) (int, string) {
	var validationErr validators.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Error()
	}

	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := replyFromError(err)
	return status
}

// writeServiceError logs err and writes the mapped JSON error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := replyFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, message, status)
}
