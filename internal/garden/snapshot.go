package garden

import (
	"math"
	"time"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// Snapshot is the read model handed to the presentation layer.
type Snapshot struct {
	Slot          SlotView       `json:"slot"`
	Wallet        domain.Wallet  `json:"wallet"`
	Pet           PetView        `json:"pet"`
	Profile       ProfileView    `json:"profile"`
	Quests        []domain.Quest `json:"quests"`
	NextQuestAt   time.Time      `json:"next_quest_reset_at"`
	Harvested     int            `json:"harvested_count"`
	LastUpdatedAt time.Time      `json:"last_updated_at"`
}

// SlotView is the slot plus values derived from the tables.
type SlotView struct {
	PotType       string             `json:"pot_type"`
	Stage         domain.GrowthStage `json:"stage"`
	PlantType     string             `json:"plant_type,omitempty"`
	Growth        float64            `json:"growth"`
	Progress      float64            `json:"progress"`
	Water         float64            `json:"water"`
	WaterDepleted bool               `json:"water_ever_depleted"`
	WaterDeficit  float64            `json:"water_deficit"`
	Ready         bool               `json:"ready"`
	ReadyAt       *time.Time         `json:"ready_at,omitempty"`
	PestActive    bool               `json:"pest_active"`
	PlantedAt     *time.Time         `json:"planted_at,omitempty"`
}

// PetView describes the active pet, if any.
type PetView struct {
	ActivePet     string        `json:"active_pet,omitempty"`
	Working       bool          `json:"working"`
	WorkRemaining time.Duration `json:"work_remaining"`
	LastFedAt     *time.Time    `json:"last_fed_at,omitempty"`
}

// ProfileView is the profile with the experience needed for the next level.
type ProfileView struct {
	domain.Profile
	ExpToNext int `json:"exp_to_next"`
}

// Snapshot returns a consistent read-only view of the garden.
func (g *Garden) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state
	now := g.clock.Now()
	c := g.tables.Constants

	snap := Snapshot{
		Slot: SlotView{
			PotType: s.Slot.PotType,
			Stage:   s.Slot.Stage(c.SproutAt, c.PlantAt),
		},
		Wallet:        s.Wallet.Clone(),
		Profile:       ProfileView{Profile: s.Profile, ExpToNext: g.curve.ExpRequired(s.Profile.Level)},
		Quests:        append([]domain.Quest(nil), s.DailyQuests...),
		NextQuestAt:   g.quests.NextResetAt(now),
		Harvested:     s.HarvestedCount,
		LastUpdatedAt: s.LastUpdateAt,
	}
	if snap.Quests == nil {
		snap.Quests = []domain.Quest{}
	}

	if crop := s.Slot.Crop; crop != nil {
		snap.Slot.PlantType = crop.PlantType
		snap.Slot.Growth = crop.Growth
		snap.Slot.Progress = math.Min(1, crop.Growth/c.PlantAt)
		snap.Slot.Water = crop.Water
		snap.Slot.WaterDepleted = crop.WaterEverDepleted
		snap.Slot.WaterDeficit = crop.WaterDeficit
		snap.Slot.Ready = crop.IsReady(c.PlantAt)
		snap.Slot.ReadyAt = timePtr(crop.ReadyAt)
		snap.Slot.PestActive = crop.Pest != nil
		snap.Slot.PlantedAt = timePtr(crop.PlantedAt)
	}

	if s.Pet.IsActive() {
		snap.Pet.ActivePet = s.Pet.ActivePet
		snap.Pet.LastFedAt = timePtr(s.Pet.LastFedAt)
		if stats, err := g.tables.Pet(s.Pet.ActivePet); err == nil {
			snap.Pet.Working = s.Pet.IsWorking(now, stats.WorkDuration())
			if snap.Pet.Working {
				snap.Pet.WorkRemaining = s.Pet.LastFedAt.Add(stats.WorkDuration()).Sub(now)
			}
		}
	}
	return snap
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
