package domain

import (
	"encoding/json"
	"sort"
)

// Item kinds that are not plant types.
const (
	ItemBug      = "bug"
	ItemPetFood  = "pet_food"
	ItemPestTool = "pest_tool"
)

// MaxTransactionQuantity caps a single buy or sell.
const MaxTransactionQuantity = 10000

// DefaultPotType is always unlocked and is the pot every new game starts with.
const DefaultPotType = "default"

// KeySet is an unordered set of configuration keys. It is persisted as a
// sorted JSON array.
type KeySet map[string]struct{}

// NewKeySet builds a set from keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Sorted returns the keys in lexical order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s KeySet) Clone() KeySet {
	out := make(KeySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s KeySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *KeySet) UnmarshalJSON(data []byte) error {
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*s = NewKeySet(keys...)
	return nil
}

// Wallet holds every countable resource the player owns.
//
// Counts are never negative and a key whose count drops to zero is removed.
type Wallet struct {
	Money        int64          `json:"money"`
	Inventory    map[string]int `json:"inventory"`
	SeedStock    map[string]int `json:"seed_inventory"`
	UnlockedPots KeySet         `json:"unlocked_pots"`
	UnlockedPets KeySet         `json:"unlocked_pets"`
	PetFood      int            `json:"pet_food"`
	PestTools    int            `json:"pest_tools"`
}

// NewWallet returns an empty wallet with only the default pot unlocked.
func NewWallet() Wallet {
	return Wallet{
		Inventory:    map[string]int{},
		SeedStock:    map[string]int{},
		UnlockedPots: NewKeySet(DefaultPotType),
		UnlockedPets: NewKeySet(),
	}
}

// Normalize fills nil collections and restores the always-unlocked pot.
func (w *Wallet) Normalize() {
	if w.Inventory == nil {
		w.Inventory = map[string]int{}
	}
	if w.SeedStock == nil {
		w.SeedStock = map[string]int{}
	}
	if w.UnlockedPots == nil {
		w.UnlockedPots = NewKeySet()
	}
	w.UnlockedPots.Add(DefaultPotType)
	if w.UnlockedPets == nil {
		w.UnlockedPets = NewKeySet()
	}
	if w.Money < 0 {
		w.Money = 0
	}
	if w.PetFood < 0 {
		w.PetFood = 0
	}
	if w.PestTools < 0 {
		w.PestTools = 0
	}
	dropNonPositive(w.Inventory)
	dropNonPositive(w.SeedStock)
}

func (w Wallet) Clone() Wallet {
	out := w
	out.Inventory = cloneCounts(w.Inventory)
	out.SeedStock = cloneCounts(w.SeedStock)
	out.UnlockedPots = w.UnlockedPots.Clone()
	out.UnlockedPets = w.UnlockedPets.Clone()
	return out
}

func cloneCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func dropNonPositive(m map[string]int) {
	for k, v := range m {
		if v <= 0 {
			delete(m, k)
		}
	}
}
