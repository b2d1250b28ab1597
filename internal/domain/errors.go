package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration lookup errors
	ErrMsgUnknownPlant = "unknown plant type"
	ErrMsgUnknownPot   = "unknown pot type"
	ErrMsgUnknownPet   = "unknown pet type"
	ErrMsgUnknownItem  = "unknown item kind"

	// Configuration table errors
	ErrMsgInvalidTables = "invalid configuration tables"

	// State errors
	ErrMsgStateNotFound = "state not found"
	ErrMsgCorruptState  = "corrupt state"

	// Quest errors
	ErrMsgQuestNotFound = "quest not found"
)

// Configuration lookup failures. These are programmer/data errors and are
// never returned for ordinary illegal player actions.
var (
	ErrUnknownPlant = errors.New(ErrMsgUnknownPlant)
	ErrUnknownPot   = errors.New(ErrMsgUnknownPot)
	ErrUnknownPet   = errors.New(ErrMsgUnknownPet)
	ErrUnknownItem  = errors.New(ErrMsgUnknownItem)
)

var (
	ErrInvalidTables = errors.New(ErrMsgInvalidTables)

	ErrStateNotFound = errors.New(ErrMsgStateNotFound)
	ErrCorruptState  = errors.New(ErrMsgCorruptState)
)

// IsConfigLookup reports whether err is a configuration lookup failure.
func IsConfigLookup(err error) bool {
	return errors.Is(err, ErrUnknownPlant) ||
		errors.Is(err, ErrUnknownPot) ||
		errors.Is(err, ErrUnknownPet) ||
		errors.Is(err, ErrUnknownItem)
}
