package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgMissingPathParam = "Missing %s path parameter"

	// Catalog lookup error messages
	ErrMsgUnknownPlantError = "Unknown plant type"
	ErrMsgUnknownPotError   = "Unknown pot type"
	ErrMsgUnknownPetError   = "Unknown pet type"
	ErrMsgUnknownItemError  = "Unknown item"
	ErrMsgGenericServerErr  = "Something went wrong"
)

// Messages returned alongside action results
const (
	MsgActionRefused = "That action is not possible right now"
	MsgActionDone    = "OK"
)

// Action names used in responses and logs
const (
	ActionWater         = "water"
	ActionHarvest       = "harvest"
	ActionPlant         = "plant"
	ActionChangePot     = "change_pot"
	ActionCatchPest     = "catch_pest"
	ActionResetSlot     = "reset_slot"
	ActionBuySeeds      = "buy_seeds"
	ActionBuyPetFood    = "buy_pet_food"
	ActionBuyPestTools  = "buy_pest_tools"
	ActionUnlockPot     = "unlock_pot"
	ActionUnlockPet     = "unlock_pet"
	ActionSell          = "sell"
	ActionActivatePet   = "activate_pet"
	ActionDeactivatePet = "deactivate_pet"
	ActionFeedPet       = "feed_pet"
	ActionClaimQuest    = "claim_quest"
	ActionUpdateProfile = "update_profile"
)

// Log messages
const (
	LogMsgActionRefused = "Action refused"
	LogMsgActionFailed  = "Action failed"
	LogMsgActionDone    = "Action completed"
)
