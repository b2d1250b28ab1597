package handler

import (
	"context"
	"net/http"
)

// PlantRequest plants a seed in the empty slot
type PlantRequest struct {
	PlantType string `json:"plant_type" validate:"required,catalogkey"`
}

// ChangePotRequest swaps the pot of the empty slot
type ChangePotRequest struct {
	PotType string `json:"pot_type" validate:"required,catalogkey"`
}

// HandleGetGarden returns the current snapshot
func (h *GardenHandler) HandleGetGarden(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.garden.Snapshot())
}

// HandleWater adds one click of water to the growing crop
func (h *GardenHandler) HandleWater(w http.ResponseWriter, r *http.Request) {
	h.runIntent(w, r, ActionWater, boolIntent(h.garden.Water))
}

// HandleHarvest harvests a ready crop
func (h *GardenHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	h.runIntent(w, r, ActionHarvest, func(ctx context.Context) (interface{}, bool, error) {
		outcome, ok, err := h.garden.Harvest(ctx)
		return outcome, ok, err
	})
}

// HandlePlant plants a seed
func (h *GardenHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionPlant, func(ctx context.Context, req PlantRequest) (interface{}, bool, error) {
		ok, err := h.garden.Plant(ctx, req.PlantType)
		return nil, ok, err
	})
}

// HandleChangePot switches the pot of the empty slot
func (h *GardenHandler) HandleChangePot(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionChangePot, func(ctx context.Context, req ChangePotRequest) (interface{}, bool, error) {
		ok, err := h.garden.ChangePot(ctx, req.PotType)
		return nil, ok, err
	})
}

// HandleCatchPest spends a pest tool on the active pest
func (h *GardenHandler) HandleCatchPest(w http.ResponseWriter, r *http.Request) {
	h.runIntent(w, r, ActionCatchPest, boolIntent(h.garden.CatchPest))
}

// HandleResetSlot discards whatever grows in the slot
func (h *GardenHandler) HandleResetSlot(w http.ResponseWriter, r *http.Request) {
	h.runIntent(w, r, ActionResetSlot, boolIntent(h.garden.ResetSlot))
}
