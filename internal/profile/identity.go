package profile

import (
	"strings"
	"unicode/utf8"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// NormalizeName trims the name and reports whether it is usable.
func NormalizeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	return name, n >= 1 && n <= domain.MaxPlayerNameLen
}

// Rename sets the player name. Blank or overlong names are refused.
func Rename(p *domain.Profile, name string) bool {
	name, ok := NormalizeName(name)
	if !ok {
		return false
	}
	p.Name = name
	return true
}

// AvatarSet lists the selectable avatars.
type AvatarSet interface {
	HasAvatar(avatar string) bool
}

// SetAvatar switches to one of the selectable avatars.
func SetAvatar(p *domain.Profile, avatars AvatarSet, avatar string) bool {
	if !avatars.HasAvatar(avatar) {
		return false
	}
	p.Avatar = avatar
	return true
}
