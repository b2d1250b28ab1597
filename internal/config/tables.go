package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

//go:embed defaults.toml
var defaultTablesTOML []byte

// Tables is the immutable lookup of plant, pot and pet stats, shop prices,
// quest templates and tunable constants. It is loaded once at startup and
// shared by reference; nothing mutates it afterwards.
type Tables struct {
	Constants Constants             `toml:"constants"`
	Plants    map[string]PlantStats `toml:"plants"`
	Pots      map[string]PotStats   `toml:"pots"`
	Pets      map[string]PetStats   `toml:"pets"`
	Shop      ShopPrices            `toml:"shop"`
	Start     StartingStock         `toml:"start"`
	Quests    QuestConfig           `toml:"quests"`
	Avatars   []string              `toml:"avatars"`
}

// Constants are the tunables of the physical model.
type Constants struct {
	SproutAt           float64 `toml:"sprout_at"`
	PlantAt            float64 `toml:"plant_at"`
	WaterDecayPerSec   float64 `toml:"water_decay_per_sec"`
	WaterBoostPerSec   float64 `toml:"water_boost_per_sec"`
	WaterPerClick      float64 `toml:"water_per_click"`
	ReferenceMaxWater  float64 `toml:"reference_max_water"`
	DeficitThreshold   float64 `toml:"deficit_threshold"`
	ExcellentWindowSec float64 `toml:"excellent_window_sec"`
	// Pest window bounds are fractions of PlantAt.
	PestWindowStart    float64 `toml:"pest_window_start"`
	PestWindowEnd      float64 `toml:"pest_window_end"`
	PestMaxSpawnChance float64 `toml:"pest_max_spawn_chance"`
	ExpPerLevel        int     `toml:"exp_per_level"`
}

type PlantStats struct {
	Name             string  `toml:"name" json:"name"`
	GrowthTimeSec    float64 `toml:"growth_time_sec" json:"growth_time_sec"`
	BaseYield        int     `toml:"base_yield" json:"base_yield"`
	SeedPrice        int64   `toml:"seed_price" json:"seed_price"`
	SellPrice        int64   `toml:"sell_price" json:"sell_price"`
	HarvestExpReward int     `toml:"harvest_exp_reward" json:"harvest_exp_reward"`
	UnlockLevel      int     `toml:"unlock_level" json:"unlock_level"`
}

type PotStats struct {
	Name           string  `toml:"name" json:"name"`
	GrowthBonus    float64 `toml:"growth_bonus" json:"growth_bonus"`
	WaterRetention float64 `toml:"water_retention" json:"water_retention"`
	Price          int64   `toml:"price" json:"price"`
}

type PetStats struct {
	Name               string  `toml:"name" json:"name"`
	Price              int64   `toml:"price" json:"price"`
	WorkDurationSec    float64 `toml:"work_duration_sec" json:"work_duration_sec"`
	AutoWaterThreshold float64 `toml:"auto_water_threshold" json:"auto_water_threshold"`
	AutoWaterAmount    float64 `toml:"auto_water_amount" json:"auto_water_amount"`
}

// WorkDuration is how long the pet keeps working after a feeding.
func (p PetStats) WorkDuration() time.Duration {
	return secondsToDuration(p.WorkDurationSec)
}

type ShopPrices struct {
	PetFoodPrice  int64 `toml:"pet_food_price" json:"pet_food_price"`
	PestToolPrice int64 `toml:"pest_tool_price" json:"pest_tool_price"`
	BugSellPrice  int64 `toml:"bug_sell_price" json:"bug_sell_price"`
}

// StartingStock is granted to brand new games only.
type StartingStock struct {
	Money     int64          `toml:"money"`
	Seeds     map[string]int `toml:"seeds"`
	PetFood   int            `toml:"pet_food"`
	PestTools int            `toml:"pest_tools"`
}

type QuestConfig struct {
	MinDaily  int             `toml:"min_daily"`
	MaxDaily  int             `toml:"max_daily"`
	Templates []QuestTemplate `toml:"templates"`
}

type QuestTemplate struct {
	Key              string `toml:"key"`
	Description      string `toml:"description"`
	RequirementType  string `toml:"requirement_type"`
	TargetPlantType  string `toml:"target_plant_type"`
	RequirementCount int    `toml:"requirement_count"`
	RewardMoney      int64  `toml:"reward_money"`
}

// DefaultTables returns the built-in tables.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultTablesTOML)
}

// LoadTables reads tables from path, or the built-in tables when path is empty.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables %s: %w", path, err)
	}
	t, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("tables %s: %w", path, err)
	}
	return t, nil
}

// ParseTables decodes and validates a TOML table document. Unknown keys are
// rejected so typos fail startup instead of silently taking defaults.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return nil, fmt.Errorf("%w: unknown keys %s", domain.ErrInvalidTables, strings.Join(keys, ", "))
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTables, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Encode writes the tables back out as TOML.
func (t *Tables) Encode() ([]byte, error) {
	return toml.Marshal(t)
}

// Validate checks every cross-reference and numeric range.
func (t *Tables) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	c := t.Constants
	if c.PlantAt <= 0 {
		fail("constants.plant_at must be positive")
	}
	if c.SproutAt < 0 || c.SproutAt > c.PlantAt {
		fail("constants.sprout_at must be within [0, plant_at]")
	}
	if c.WaterDecayPerSec < 0 || c.WaterBoostPerSec < 0 || c.WaterPerClick <= 0 {
		fail("constants water rates must be non-negative and water_per_click positive")
	}
	if c.ReferenceMaxWater <= 0 {
		fail("constants.reference_max_water must be positive")
	}
	if c.ExcellentWindowSec < 0 {
		fail("constants.excellent_window_sec must not be negative")
	}
	if c.PestWindowStart < 0 || c.PestWindowEnd > 1 || c.PestWindowStart >= c.PestWindowEnd {
		fail("constants pest window must satisfy 0 <= start < end <= 1")
	}
	if c.PestMaxSpawnChance < 0 || c.PestMaxSpawnChance > 1 {
		fail("constants.pest_max_spawn_chance must be within [0, 1]")
	}
	if c.ExpPerLevel <= 0 {
		fail("constants.exp_per_level must be positive")
	}

	if len(t.Plants) == 0 {
		fail("at least one plant type is required")
	}
	for key, p := range t.Plants {
		if key == domain.ItemBug {
			fail("plant type %q collides with the caught-pest item", key)
		}
		if p.GrowthTimeSec <= 0 {
			fail("plants.%s.growth_time_sec must be positive", key)
		}
		if p.BaseYield < 1 {
			fail("plants.%s.base_yield must be at least 1", key)
		}
		if p.SeedPrice < 0 || p.SellPrice < 0 || p.HarvestExpReward < 0 {
			fail("plants.%s prices and rewards must not be negative", key)
		}
		if p.UnlockLevel < 1 {
			fail("plants.%s.unlock_level must be at least 1", key)
		}
	}

	if _, ok := t.Pots[domain.DefaultPotType]; !ok {
		fail("pots.%s is required", domain.DefaultPotType)
	}
	for key, p := range t.Pots {
		if p.WaterRetention < 0 || p.WaterRetention > 1 {
			fail("pots.%s.water_retention must be within [0, 1]", key)
		}
		if p.GrowthBonus <= -1 {
			fail("pots.%s.growth_bonus must be greater than -1", key)
		}
		if p.Price < 0 {
			fail("pots.%s.price must not be negative", key)
		}
	}

	for key, p := range t.Pets {
		if p.WorkDurationSec <= 0 || p.AutoWaterAmount <= 0 || p.AutoWaterThreshold < 0 || p.Price < 0 {
			fail("pets.%s has invalid stats", key)
		}
	}

	if t.Shop.PetFoodPrice < 0 || t.Shop.PestToolPrice < 0 || t.Shop.BugSellPrice < 0 {
		fail("shop prices must not be negative")
	}

	for key, n := range t.Start.Seeds {
		if _, ok := t.Plants[key]; !ok {
			fail("start.seeds references unknown plant %q", key)
		}
		if n < 0 {
			fail("start.seeds.%s must not be negative", key)
		}
	}

	q := t.Quests
	if q.MinDaily < 0 || q.MaxDaily < q.MinDaily {
		fail("quests daily count range is invalid")
	}
	if q.MaxDaily > len(q.Templates) {
		fail("quests.max_daily exceeds the number of templates")
	}
	seen := make(map[string]bool, len(q.Templates))
	for _, tpl := range q.Templates {
		if tpl.Key == "" || seen[tpl.Key] {
			fail("quest template key %q is empty or duplicated", tpl.Key)
		}
		seen[tpl.Key] = true
		switch tpl.RequirementType {
		case domain.QuestTypeHarvestPlant, domain.QuestTypeCatchPest:
		default:
			fail("quest %s has unknown requirement_type %q", tpl.Key, tpl.RequirementType)
		}
		if tpl.TargetPlantType != "" {
			if _, ok := t.Plants[tpl.TargetPlantType]; !ok {
				fail("quest %s targets unknown plant %q", tpl.Key, tpl.TargetPlantType)
			}
		}
		if tpl.RequirementCount < 1 || tpl.RewardMoney < 0 {
			fail("quest %s needs a positive requirement and non-negative reward", tpl.Key)
		}
	}

	if len(t.Avatars) == 0 {
		fail("at least one avatar is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidTables, errors.Join(errs...))
	}
	return nil
}

// Plant looks up a plant type.
func (t *Tables) Plant(key string) (PlantStats, error) {
	p, ok := t.Plants[key]
	if !ok {
		return PlantStats{}, fmt.Errorf("%w: %q", domain.ErrUnknownPlant, key)
	}
	return p, nil
}

// Pot looks up a pot type.
func (t *Tables) Pot(key string) (PotStats, error) {
	p, ok := t.Pots[key]
	if !ok {
		return PotStats{}, fmt.Errorf("%w: %q", domain.ErrUnknownPot, key)
	}
	return p, nil
}

// Pet looks up a pet type.
func (t *Tables) Pet(key string) (PetStats, error) {
	p, ok := t.Pets[key]
	if !ok {
		return PetStats{}, fmt.Errorf("%w: %q", domain.ErrUnknownPet, key)
	}
	return p, nil
}

// SellPrice returns the unit sale price of an inventory item kind.
func (t *Tables) SellPrice(item string) (int64, error) {
	if item == domain.ItemBug {
		return t.Shop.BugSellPrice, nil
	}
	p, ok := t.Plants[item]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownItem, item)
	}
	return p.SellPrice, nil
}

// BaseGrowthRate is growth per second before pot and water modifiers, chosen
// so an unwatered plant in a neutral pot ripens after exactly GrowthTimeSec.
func (t *Tables) BaseGrowthRate(p PlantStats) float64 {
	return t.Constants.PlantAt / p.GrowthTimeSec
}

// ExcellentWindow is how long after ripening a harvest still counts as on time.
func (t *Tables) ExcellentWindow() time.Duration {
	return secondsToDuration(t.Constants.ExcellentWindowSec)
}

// PlantKeys returns plant type keys sorted by unlock level, then key.
func (t *Tables) PlantKeys() []string {
	keys := make([]string, 0, len(t.Plants))
	for k := range t.Plants {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := t.Plants[keys[i]].UnlockLevel, t.Plants[keys[j]].UnlockLevel
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// HasAvatar reports whether avatar is one of the selectable avatars.
func (t *Tables) HasAvatar(avatar string) bool {
	for _, a := range t.Avatars {
		if a == avatar {
			return true
		}
	}
	return false
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
