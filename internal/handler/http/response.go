package http

import (
	"net/http"

	"github.com/tahiry-dev/wildlife-atlas/internal/utils"
)

// errorBody is the JSON error envelope shared by every error response:
// {"error": <reason>} with an optional "message" detail.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// apiError writes an endpoint-specific error: the "error" field carries the
// endpoint's own message (e.g. "Animal not found").
func apiError(w http.ResponseWriter, statusCode int, message string) {
	utils.WriteJSON(w, errorBody{Error: message}, statusCode)
}

// envelopeError writes the generic framework-level error envelope: the
// "error" field carries the standard reason phrase for the status code and
// message, when non-empty, adds detail.
func envelopeError(w http.ResponseWriter, statusCode int, message string) {
	body := errorBody{Error: http.StatusText(statusCode), Message: message}
	utils.WriteJSON(w, body, statusCode)
}
