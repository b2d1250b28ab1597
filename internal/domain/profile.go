package domain

// Profile defaults for new and partially loaded games.
const (
	DefaultPlayerName = "Gardener"
	DefaultAvatar     = "👤"
	MaxPlayerNameLen  = 20
)

// Profile is the player's leveling record and identity.
//
// Exp is always below the requirement of the current Level.
type Profile struct {
	Level  int    `json:"level"`
	Exp    int    `json:"exp"`
	Name   string `json:"player_name"`
	Avatar string `json:"avatar"`
}

// NewProfile returns a level 1 profile with default identity.
func NewProfile() Profile {
	return Profile{
		Level:  1,
		Name:   DefaultPlayerName,
		Avatar: DefaultAvatar,
	}
}

// LevelUpResult describes the effect of adding experience.
type LevelUpResult struct {
	ExpGained int  `json:"exp_gained"`
	OldLevel  int  `json:"old_level"`
	NewLevel  int  `json:"new_level"`
	NewExp    int  `json:"new_exp"`
	LeveledUp bool `json:"leveled_up"`
}
