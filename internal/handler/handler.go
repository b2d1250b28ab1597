package handler

import (
	"context"

	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/economy"
	"github.com/osse101/GrowPot_Go/internal/garden"
)

// Garden is the game the HTTP API drives. *garden.Garden satisfies it.
type Garden interface {
	Snapshot() garden.Snapshot
	Tables() *config.Tables

	Water(ctx context.Context) (bool, error)
	Harvest(ctx context.Context) (garden.HarvestOutcome, bool, error)
	Plant(ctx context.Context, plantType string) (bool, error)
	ChangePot(ctx context.Context, potType string) (bool, error)
	CatchPest(ctx context.Context) (bool, error)
	ResetSlot(ctx context.Context) (bool, error)

	BuySeeds(ctx context.Context, plantType string, quantity int) (bool, error)
	BuyPetFood(ctx context.Context, quantity int) (bool, error)
	BuyPestTools(ctx context.Context, quantity int) (bool, error)
	UnlockPot(ctx context.Context, potType string) (bool, error)
	UnlockPet(ctx context.Context, petType string) (bool, error)
	Sell(ctx context.Context, item string, quantity int) (economy.SellResult, bool, error)

	ActivatePet(ctx context.Context, petType string) (bool, error)
	DeactivatePet(ctx context.Context) (bool, error)
	FeedPet(ctx context.Context) (bool, error)

	ClaimQuest(ctx context.Context, id string) (domain.Quest, bool, error)
	UpdateProfile(ctx context.Context, name, avatar string) (bool, error)
}

// GardenHandler handles garden-related HTTP requests
type GardenHandler struct {
	garden Garden
}

// NewGardenHandler creates a new garden handler
func NewGardenHandler(g Garden) *GardenHandler {
	return &GardenHandler{garden: g}
}
