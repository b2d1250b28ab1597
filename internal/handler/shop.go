package handler

import (
	"context"
	"net/http"
)

// BuySeedsRequest buys seeds of one plant type
type BuySeedsRequest struct {
	PlantType string `json:"plant_type" validate:"required,catalogkey"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=10000"`
}

// BuySuppliesRequest buys pet food or pest tools
type BuySuppliesRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=10000"`
}

// UnlockPotRequest buys a pot type
type UnlockPotRequest struct {
	PotType string `json:"pot_type" validate:"required,catalogkey"`
}

// PetRequest names a pet type
type PetRequest struct {
	PetType string `json:"pet_type" validate:"required,catalogkey"`
}

// SellRequest sells harvested produce or bugs
type SellRequest struct {
	Item     string `json:"item" validate:"required,catalogkey"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=10000"`
}

// HandleBuySeeds buys seeds
func (h *GardenHandler) HandleBuySeeds(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionBuySeeds, func(ctx context.Context, req BuySeedsRequest) (interface{}, bool, error) {
		ok, err := h.garden.BuySeeds(ctx, req.PlantType, req.Quantity)
		return nil, ok, err
	})
}

// HandleBuyPetFood buys pet food
func (h *GardenHandler) HandleBuyPetFood(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionBuyPetFood, func(ctx context.Context, req BuySuppliesRequest) (interface{}, bool, error) {
		ok, err := h.garden.BuyPetFood(ctx, req.Quantity)
		return nil, ok, err
	})
}

// HandleBuyPestTools buys pest tools
func (h *GardenHandler) HandleBuyPestTools(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionBuyPestTools, func(ctx context.Context, req BuySuppliesRequest) (interface{}, bool, error) {
		ok, err := h.garden.BuyPestTools(ctx, req.Quantity)
		return nil, ok, err
	})
}

// HandleUnlockPot buys a pot type
func (h *GardenHandler) HandleUnlockPot(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionUnlockPot, func(ctx context.Context, req UnlockPotRequest) (interface{}, bool, error) {
		ok, err := h.garden.UnlockPot(ctx, req.PotType)
		return nil, ok, err
	})
}

// HandleUnlockPet buys a pet type
func (h *GardenHandler) HandleUnlockPet(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionUnlockPet, func(ctx context.Context, req PetRequest) (interface{}, bool, error) {
		ok, err := h.garden.UnlockPet(ctx, req.PetType)
		return nil, ok, err
	})
}

// HandleSell sells items from the warehouse
func (h *GardenHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	handleBodyIntent(h, w, r, ActionSell, func(ctx context.Context, req SellRequest) (interface{}, bool, error) {
		res, ok, err := h.garden.Sell(ctx, req.Item, req.Quantity)
		return res, ok, err
	})
}
