package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// LegacyHarvestPlant receives harvests counted before per-plant inventory existed.
const LegacyHarvestPlant = "basic"

// stateRecord is the persisted, flat shape of GameState. Timestamps are unix
// seconds, zero meaning unset. An empty slot is written as growth -1.
type stateRecord struct {
	SchemaVersion int `json:"schema_version"`

	Growth            *float64 `json:"growth"`
	Water             float64  `json:"water"`
	WaterEverDepleted bool     `json:"water_ever_depleted"`
	WaterDeficit      float64  `json:"growth_water_deficit"`
	PlantType         string   `json:"plant_type"`
	PotType           *string  `json:"pot_type"`
	PlantedAt         float64  `json:"planted_at"`
	ReadyAt           float64  `json:"ready_at"`
	PestActive        bool     `json:"pest_active"`
	PestAppearedAt    float64  `json:"pest_appeared_at"`
	LastHarvestAt     float64  `json:"last_harvest_at"`

	LastUpdateAt   float64 `json:"last_update_timestamp"`
	HarvestedCount int     `json:"harvested_count"`

	Money        int64          `json:"money"`
	Inventory    map[string]int `json:"harvested_inventory"`
	SeedStock    map[string]int `json:"seed_stock"`
	UnlockedPots KeySet         `json:"unlocked_pots"`
	UnlockedPets KeySet         `json:"unlocked_pets"`
	PetFood      int            `json:"pet_food"`
	PestTools    int            `json:"pest_tool_count"`

	ActivePet       string  `json:"active_pet,omitempty"`
	PetLastFedAt    float64 `json:"pet_last_fed_at"`
	PetLastWorkedAt float64 `json:"pet_last_worked_at"`

	DailyQuests      []Quest `json:"daily_quests"`
	QuestLastResetAt float64 `json:"quest_last_reset_at"`

	Level  *int    `json:"level"`
	Exp    int     `json:"exp"`
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// MarshalJSON writes the persisted state record.
func (s *GameState) MarshalJSON() ([]byte, error) {
	empty := -1.0
	rec := stateRecord{
		SchemaVersion:    StateSchemaVersion,
		Growth:           &empty,
		PotType:          &s.Slot.PotType,
		LastHarvestAt:    toUnix(s.Slot.LastHarvestAt),
		LastUpdateAt:     toUnix(s.LastUpdateAt),
		HarvestedCount:   s.HarvestedCount,
		Money:            s.Wallet.Money,
		Inventory:        s.Wallet.Inventory,
		SeedStock:        s.Wallet.SeedStock,
		UnlockedPots:     s.Wallet.UnlockedPots,
		UnlockedPets:     s.Wallet.UnlockedPets,
		PetFood:          s.Wallet.PetFood,
		PestTools:        s.Wallet.PestTools,
		ActivePet:        s.Pet.ActivePet,
		PetLastFedAt:     toUnix(s.Pet.LastFedAt),
		PetLastWorkedAt:  toUnix(s.Pet.LastWorkedAt),
		DailyQuests:      s.DailyQuests,
		QuestLastResetAt: toUnix(s.QuestLastResetAt),
		Level:            &s.Profile.Level,
		Exp:              s.Profile.Exp,
		Name:             &s.Profile.Name,
		Avatar:           &s.Profile.Avatar,
	}
	if c := s.Slot.Crop; c != nil {
		growth := c.Growth
		rec.Growth = &growth
		rec.Water = c.Water
		rec.WaterEverDepleted = c.WaterEverDepleted
		rec.WaterDeficit = c.WaterDeficit
		rec.PlantType = c.PlantType
		rec.PlantedAt = toUnix(c.PlantedAt)
		rec.ReadyAt = toUnix(c.ReadyAt)
		if c.Pest != nil {
			rec.PestActive = true
			rec.PestAppearedAt = toUnix(c.Pest.AppearedAt)
		}
	}
	if rec.DailyQuests == nil {
		rec.DailyQuests = []Quest{}
	}
	return json.Marshal(rec)
}

// UnmarshalJSON reads a persisted state record. Missing fields take the
// same defaults as a new game.
func (s *GameState) UnmarshalJSON(data []byte) error {
	var rec stateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}

	out := NewGameState(fromUnix(rec.LastUpdateAt))
	out.SchemaVersion = rec.SchemaVersion
	out.HarvestedCount = max(0, rec.HarvestedCount)

	if rec.PotType != nil && *rec.PotType != "" {
		out.Slot.PotType = *rec.PotType
	}
	out.Slot.LastHarvestAt = fromUnix(rec.LastHarvestAt)
	if rec.Growth != nil && *rec.Growth >= 0 && rec.PlantType != "" && !math.IsNaN(*rec.Growth) {
		crop := &Crop{
			PlantType:         rec.PlantType,
			Growth:            *rec.Growth,
			Water:             math.Max(0, rec.Water),
			WaterEverDepleted: rec.WaterEverDepleted,
			WaterDeficit:      math.Max(0, rec.WaterDeficit),
			PlantedAt:         fromUnix(rec.PlantedAt),
			ReadyAt:           fromUnix(rec.ReadyAt),
		}
		if rec.PestActive {
			crop.Pest = &Pest{AppearedAt: fromUnix(rec.PestAppearedAt)}
		}
		out.Slot.Crop = crop
	}

	out.Wallet = Wallet{
		Money:        rec.Money,
		Inventory:    rec.Inventory,
		SeedStock:    rec.SeedStock,
		UnlockedPots: rec.UnlockedPots,
		UnlockedPets: rec.UnlockedPets,
		PetFood:      rec.PetFood,
		PestTools:    rec.PestTools,
	}
	out.Wallet.Normalize()
	if rec.SchemaVersion == 0 && rec.Inventory == nil && out.HarvestedCount > 0 {
		out.Wallet.Inventory[LegacyHarvestPlant] = out.HarvestedCount
	}

	out.Pet = Pet{
		ActivePet:    rec.ActivePet,
		LastFedAt:    fromUnix(rec.PetLastFedAt),
		LastWorkedAt: fromUnix(rec.PetLastWorkedAt),
	}

	if rec.DailyQuests != nil {
		out.DailyQuests = rec.DailyQuests
	}
	out.QuestLastResetAt = fromUnix(rec.QuestLastResetAt)

	if rec.Level != nil && *rec.Level >= 1 {
		out.Profile.Level = *rec.Level
	}
	out.Profile.Exp = max(0, rec.Exp)
	if rec.Name != nil && *rec.Name != "" {
		out.Profile.Name = *rec.Name
	}
	if rec.Avatar != nil && *rec.Avatar != "" {
		out.Profile.Avatar = *rec.Avatar
	}

	*s = *out
	return nil
}

// DecodeState parses a persisted state blob. Any parse failure is reported
// as ErrCorruptState.
func DecodeState(data []byte) (*GameState, error) {
	var s GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &s, nil
}

// EncodeState serializes a state record for persistence.
func EncodeState(s *GameState) ([]byte, error) {
	return json.Marshal(s)
}

func toUnix(t time.Time) float64 {
	if t.IsZero() {
		return 0
	}
	return float64(t.UnixNano()) / float64(time.Second)
}

func fromUnix(v float64) time.Time {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}
