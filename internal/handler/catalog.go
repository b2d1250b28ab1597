package handler

import (
	"net/http"

	"github.com/osse101/GrowPot_Go/internal/config"
)

// CatalogPlant is a plant with its key, in unlock order
type CatalogPlant struct {
	Key string `json:"key"`
	config.PlantStats
}

// CatalogResponse is everything a client needs to render the shop
type CatalogResponse struct {
	Plants  []CatalogPlant              `json:"plants"`
	Pots    map[string]config.PotStats  `json:"pots"`
	Pets    map[string]config.PetStats  `json:"pets"`
	Shop    config.ShopPrices           `json:"shop"`
	Avatars []string                    `json:"avatars"`
	PlantAt float64                     `json:"plant_at"`
}

// HandleGetCatalog returns the configuration tables
func (h *GardenHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	t := h.garden.Tables()
	resp := CatalogResponse{
		Pots:    t.Pots,
		Pets:    t.Pets,
		Shop:    t.Shop,
		Avatars: t.Avatars,
		PlantAt: t.Constants.PlantAt,
	}
	for _, key := range t.PlantKeys() {
		resp.Plants = append(resp.Plants, CatalogPlant{Key: key, PlantStats: t.Plants[key]})
	}
	respondJSON(w, http.StatusOK, resp)
}
