package domain

import "time"

// Quality is the tier of a harvest outcome.
type Quality string

const (
	QualityNone      Quality = ""
	QualityPoor      Quality = "poor"
	QualityNormal    Quality = "normal"
	QualityExcellent Quality = "excellent"
)

// Demote drops the quality by exactly one tier. Poor stays poor.
func (q Quality) Demote() Quality {
	switch q {
	case QualityExcellent:
		return QualityNormal
	case QualityNormal:
		return QualityPoor
	default:
		return q
	}
}

// GrowthStage is the visual stage derived from growth progress.
type GrowthStage string

const (
	StageEmpty  GrowthStage = "empty"
	StageSeed   GrowthStage = "seed"
	StageSprout GrowthStage = "sprout"
	StageMature GrowthStage = "mature"
)

// Pest is a single pest instance living on the slot.
type Pest struct {
	AppearedAt time.Time `json:"appeared_at"`
}

// Crop is the Growing variant of a slot. A slot without a crop is Empty.
type Crop struct {
	PlantType         string    `json:"plant_type"`
	Growth            float64   `json:"growth"`
	Water             float64   `json:"water"`
	WaterEverDepleted bool      `json:"water_ever_depleted"`
	WaterDeficit      float64   `json:"water_deficit"`
	PlantedAt         time.Time `json:"planted_at"`
	// ReadyAt is the instant growth first reached the harvest threshold.
	// Zero until then.
	ReadyAt time.Time `json:"ready_at,omitempty"`
	Pest    *Pest     `json:"pest,omitempty"`
}

// readyTolerance absorbs rounding when growth lands exactly on the threshold.
const readyTolerance = 1e-9

// IsReady reports whether the crop has reached the harvest threshold.
func (c *Crop) IsReady(plantAt float64) bool {
	return c.Growth >= plantAt-readyTolerance
}

// PlantSlot is the single growable slot a player owns.
type PlantSlot struct {
	PotType       string    `json:"pot_type"`
	Crop          *Crop     `json:"crop,omitempty"`
	LastHarvestAt time.Time `json:"last_harvest_at,omitempty"`
}

// IsEmpty reports whether nothing is planted in the slot.
func (s *PlantSlot) IsEmpty() bool {
	return s.Crop == nil
}

// HasPest reports whether a pest is currently active on the slot.
func (s *PlantSlot) HasPest() bool {
	return s.Crop != nil && s.Crop.Pest != nil
}

// Stage maps growth progress onto a display stage.
func (s *PlantSlot) Stage(sproutAt, plantAt float64) GrowthStage {
	switch {
	case s.Crop == nil:
		return StageEmpty
	case s.Crop.IsReady(plantAt):
		return StageMature
	case s.Crop.Growth >= sproutAt:
		return StageSprout
	default:
		return StageSeed
	}
}

// Clear empties the slot. The pot stays.
func (s *PlantSlot) Clear() {
	s.Crop = nil
}
