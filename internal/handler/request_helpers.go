package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/GrowPot_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req PlantRequest
//	if err := DecodeAndValidateRequest(r, w, &req, ActionPlant); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// intentFunc performs one garden intent. ok is false when the game refused it.
type intentFunc func(ctx context.Context) (result interface{}, ok bool, err error)

// runIntent executes an intent and writes the standard action response:
// 200 on success, 409 when refused, 400/500 from mapServiceErrorToUserMessage
// on error.
func (h *GardenHandler) runIntent(w http.ResponseWriter, r *http.Request, action string, fn intentFunc) {
	log := logger.FromContext(r.Context())

	result, ok, err := fn(r.Context())
	if err != nil {
		log.Error(LogMsgActionFailed, "action", action, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	resp := ActionResponse{
		Success:  ok,
		Action:   action,
		Snapshot: h.garden.Snapshot(),
	}
	if !ok {
		log.Info(LogMsgActionRefused, "action", action)
		resp.Message = MsgActionRefused
		respondJSON(w, http.StatusConflict, resp)
		return
	}

	log.Debug(LogMsgActionDone, "action", action)
	resp.Message = MsgActionDone
	resp.Result = result
	respondJSON(w, http.StatusOK, resp)
}

// handleBodyIntent decodes and validates REQ, then runs the intent.
func handleBodyIntent[REQ any](h *GardenHandler, w http.ResponseWriter, r *http.Request, action string, fn func(ctx context.Context, req REQ) (interface{}, bool, error)) {
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
		return
	}
	h.runIntent(w, r, action, func(ctx context.Context) (interface{}, bool, error) {
		return fn(ctx, req)
	})
}

// boolIntent adapts an intent that returns no result body
func boolIntent(fn func(ctx context.Context) (bool, error)) intentFunc {
	return func(ctx context.Context) (interface{}, bool, error) {
		ok, err := fn(ctx)
		return nil, ok, err
	}
}
