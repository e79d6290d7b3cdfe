package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// internalErrorBody is written verbatim when a response value cannot be
// marshalled, so clients always receive the JSON error envelope.
const internalErrorBody = `{"error":"Internal server error"}`

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// WriteJSON marshals data and writes it with the given status code and an
// application/json content type. It returns the number of body bytes written.
//
// A value that cannot be marshalled produces a 500 with the error envelope
// and a non-nil error for the caller to log.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}

// WriteError writes {"error": message} with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorBody{Error: message}, statusCode)
}
