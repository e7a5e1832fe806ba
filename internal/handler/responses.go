package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReplyResponse carries the chat reply a command produced.
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps domain errors onto HTTP statuses. Rule
// rejections are 4xx with the service's message; anything else is a
// generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStockNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidBet),
		errors.Is(err, domain.ErrInsufficientPoints),
		errors.Is(err, domain.ErrNotSellable),
		errors.Is(err, domain.ErrAlreadyOwned),
		errors.Is(err, domain.ErrNotOwned),
		errors.Is(err, domain.ErrAlreadyPlaying),
		errors.Is(err, domain.ErrNotPlaying),
		errors.Is(err, domain.ErrAlreadyDueling),
		errors.Is(err, domain.ErrNotDueling):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrOnCooldown),
		errors.Is(err, domain.ErrBanned):
		respondError(w, http.StatusTooManyRequests, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
	}
}
