package economy

// Log messages
const (
	LogMsgSeedsPurchased     = "Seeds purchased"
	LogMsgSuppliesPurchased  = "Supplies purchased"
	LogMsgPotUnlocked        = "Pot unlocked"
	LogMsgPetUnlocked        = "Pet unlocked"
	LogMsgItemSold           = "Item sold"
	LogMsgHarvestCredited    = "Harvest credited"
	LogMsgPetActivated       = "Pet activated"
	LogMsgPetDeactivated     = "Pet deactivated"
	LogMsgPetFed             = "Pet fed"
	LogMsgTransactionRefused = "Transaction refused"
)

// Refusal reasons attached to LogMsgTransactionRefused
const (
	ReasonInvalidQuantity   = "invalid quantity"
	ReasonInsufficientFunds = "insufficient funds"
	ReasonInsufficientStock = "insufficient stock"
	ReasonAlreadyOwned      = "already owned"
	ReasonLocked            = "locked"
	ReasonNoActivePet       = "no active pet"
)
