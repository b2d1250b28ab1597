package domain

// Quest requirement types.
const (
	QuestTypeHarvestPlant = "harvest_plant"
	QuestTypeCatchPest    = "catch_pest"
)

// Quest is one entry of the daily quest list.
//
// Lifecycle: active -> completed -> claimed. No transition runs backwards.
type Quest struct {
	ID               string `json:"id"`
	TemplateKey      string `json:"template_key"`
	Description      string `json:"description"`
	RequirementType  string `json:"requirement_type"`
	TargetPlantType  string `json:"target_plant_type,omitempty"`
	RequirementCount int    `json:"requirement_count"`
	Progress         int    `json:"progress"`
	RewardMoney      int64  `json:"reward_money"`
	Completed        bool   `json:"completed"`
	Claimed          bool   `json:"claimed"`
}

// IsActive reports whether the quest still accepts progress.
func (q *Quest) IsActive() bool {
	return !q.Completed
}

// Claimable reports whether the reward can be paid out.
func (q *Quest) Claimable() bool {
	return q.Completed && !q.Claimed
}

// MatchesHarvest reports whether a harvest of plantType counts toward the quest.
// An empty target accepts any plant.
func (q *Quest) MatchesHarvest(plantType string) bool {
	return q.RequirementType == QuestTypeHarvestPlant &&
		(q.TargetPlantType == "" || q.TargetPlantType == plantType)
}
