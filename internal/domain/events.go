package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "plant.harvested")
const (
	// EventTypePlantHarvested is published after a successful harvest has been credited
	EventTypePlantHarvested = "plant.harvested"

	// EventTypePlantPlanted is published when a seed is planted into the slot
	EventTypePlantPlanted = "plant.planted"

	// EventTypePestSpawned is published when a pest appears during a tick
	EventTypePestSpawned = "pest.spawned"

	// EventTypePestCaught is published when the player catches the active pest
	EventTypePestCaught = "pest.caught"

	// EventTypePetAssisted is published when the active pet waters the plant
	EventTypePetAssisted = "pet.assisted"

	// EventTypeItemBought is published for every successful shop purchase
	EventTypeItemBought = "item.bought"

	// EventTypeItemSold is published for every successful warehouse sale
	EventTypeItemSold = "item.sold"

	// EventTypeLevelUp is published when the player profile gains one or more levels
	EventTypeLevelUp = "profile.level_up"

	// EventTypeQuestCompleted is published when a quest reaches its requirement
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeQuestClaimed is published when a quest reward is paid out
	EventTypeQuestClaimed = "quest.claimed"

	// EventTypeDailyResetComplete is published when the daily quest list is regenerated
	EventTypeDailyResetComplete = "daily_reset.complete"

	// EventTypeGardenUpdated is published after every state change so live views can refresh
	EventTypeGardenUpdated = "garden.updated"
)
