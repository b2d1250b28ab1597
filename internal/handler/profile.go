package handler

import (
	"context"
	"net/http"
)

// UpdateProfileRequest changes the name, the avatar, or both
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required_without=Avatar,max=20"`
	Avatar string `json:"avatar" validate:"required_without=Name,max=50"`
}

// HandleGetProfile returns the player profile
func (h *GardenHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.garden.Snapshot().Profile)
}

// HandleUpdateProfile renames the player or changes the avatar
func (h *GardenHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionUpdateProfile, func(ctx context.Context, req UpdateProfileRequest) (interface{}, bool, error) {
		ok, err := h.garden.UpdateProfile(ctx, req.Name, req.Avatar)
		return nil, ok, err
	})
}
