package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/llm"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request: messages array is required"`
}

const internalErrorMessage = "An unexpected internal server error occurred."

// respondWithError is the centralized error handling function for the API layer.
// It maps custom business-layer errors to appropriate HTTP status codes and formats
// a standard JSON error response.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrInvalidRequest), errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Request errors are user-correctable and already phrased for the client.
		message = err.Error()
	case errors.Is(err, app_errors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrConfiguration):
		statusCode = http.StatusInternalServerError
		message = llm.ConfigErrorMessage
	case errors.Is(err, app_errors.ErrUpstream):
		// Upstream errors reach this point only after the chat service has
		// sanitized them.
		statusCode = http.StatusInternalServerError
		message = err.Error()
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		statusCode = http.StatusInternalServerError
		message = internalErrorMessage
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", errorDetail(err))

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// errorDetail returns the message with its cause, if any, for logging.
func errorDetail(err error) string {
	if cause := errors.Unwrap(err); cause != nil && cause.Error() != err.Error() {
		return err.Error() + ": " + cause.Error()
	}
	return err.Error()
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
