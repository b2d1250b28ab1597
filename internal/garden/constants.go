package garden

// Log messages
const (
	LogMsgNewGame          = "Starting a new game"
	LogMsgStateCorrupt     = "Saved state is corrupt, starting a new game"
	LogMsgStateSanitized   = "Saved state referenced unknown keys"
	LogMsgCatchUp          = "Caught up offline time"
	LogMsgClockWentBack    = "Clock moved backwards, skipping advance"
	LogMsgConfigLookup     = "Configuration lookup failed"
	LogMsgPublishFailed    = "Event handler failed"
	LogMsgHarvested        = "Harvested"
	LogMsgPestSpawned      = "Pest appeared"
	LogMsgPetAssisted      = "Pet watered the plant"
	LogMsgStateSaved       = "State saved"
	LogMsgStateSaveFailed  = "Failed to save state"
	LogMsgActionRefused    = "Action refused"
	LogMsgDailyResetFailed = "Daily reset check failed"
)

// Reasons carried by garden.updated events
const (
	ReasonTick       = "tick"
	ReasonCatchUp    = "catch_up"
	ReasonWater      = "water"
	ReasonHarvest    = "harvest"
	ReasonPlant      = "plant"
	ReasonChangePot  = "change_pot"
	ReasonCatchPest  = "catch_pest"
	ReasonResetSlot  = "reset_slot"
	ReasonShop       = "shop"
	ReasonSell       = "sell"
	ReasonPet        = "pet"
	ReasonProfile    = "profile"
	ReasonQuest      = "quest"
	ReasonDailyReset = "daily_reset"
)
