package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/garden"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionResponse is returned by every garden intent. Success is false when
// the game refused the action; the snapshot is included either way.
type ActionResponse struct {
	Success  bool            `json:"success"`
	Action   string          `json:"action"`
	Message  string          `json:"message,omitempty"`
	Result   interface{}     `json:"result,omitempty"`
	Snapshot garden.Snapshot `json:"snapshot"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// user-facing messages. Catalog lookups are client mistakes; everything
// else is a server problem whose details stay in the log.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownPlant):
		return http.StatusBadRequest, ErrMsgUnknownPlantError
	case errors.Is(err, domain.ErrUnknownPot):
		return http.StatusBadRequest, ErrMsgUnknownPotError
	case errors.Is(err, domain.ErrUnknownPet):
		return http.StatusBadRequest, ErrMsgUnknownPetError
	case errors.Is(err, domain.ErrUnknownItem):
		return http.StatusBadRequest, ErrMsgUnknownItemError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerErr
}
