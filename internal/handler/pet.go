package handler

import (
	"context"
	"net/http"
)

// HandleActivatePet makes an unlocked pet the active one
func (h *GardenHandler) HandleActivatePet(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionActivatePet, func(ctx context.Context, req PetRequest) (interface{}, bool, error) {
		ok, err := h.garden.ActivatePet(ctx, req.PetType)
		return nil, ok, err
	})
}

// HandleDeactivatePet sends the active pet away
func (h *GardenHandler) HandleDeactivatePet(w http.ResponseWriter, r *http.Request) {
	h.runIntent(w, r, ActionDeactivatePet, boolIntent(h.garden.DeactivatePet))
}

// HandleFeedPet spends one pet food to restart the work timer
func (h *GardenHandler) HandleFeedPet(w http.ResponseWriter, r *http.Request) {
	h.runIntent(w, r, ActionFeedPet, boolIntent(h.garden.FeedPet))
}
