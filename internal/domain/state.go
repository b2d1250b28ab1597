package domain

import (
	"time"
)

// StateSchemaVersion is written into every persisted state record.
const StateSchemaVersion = 2

// GameState is the full state record of one garden. The garden coordinator
// owns exactly one instance and hands pointers into it to the engine,
// the ledger and the quest tracker.
type GameState struct {
	SchemaVersion    int
	Slot             PlantSlot
	Wallet           Wallet
	Pet              Pet
	Profile          Profile
	DailyQuests      []Quest
	QuestLastResetAt time.Time
	// LastUpdateAt is the wall-clock time the simulation was last advanced to.
	LastUpdateAt   time.Time
	HarvestedCount int
}

// NewGameState returns a brand new state with an empty slot in the default pot.
func NewGameState(now time.Time) *GameState {
	return &GameState{
		SchemaVersion: StateSchemaVersion,
		Slot:          PlantSlot{PotType: DefaultPotType},
		Wallet:        NewWallet(),
		Profile:       NewProfile(),
		DailyQuests:   []Quest{},
		LastUpdateAt:  now,
	}
}

// FindQuest returns the daily quest with the given id, or nil.
func (s *GameState) FindQuest(id string) *Quest {
	for i := range s.DailyQuests {
		if s.DailyQuests[i].ID == id {
			return &s.DailyQuests[i]
		}
	}
	return nil
}

// Clone returns a deep copy that shares nothing mutable with s.
func (s *GameState) Clone() *GameState {
	out := *s
	out.Wallet = s.Wallet.Clone()
	if s.Slot.Crop != nil {
		crop := *s.Slot.Crop
		if crop.Pest != nil {
			pest := *crop.Pest
			crop.Pest = &pest
		}
		out.Slot.Crop = &crop
	}
	out.DailyQuests = append([]Quest(nil), s.DailyQuests...)
	return &out
}
