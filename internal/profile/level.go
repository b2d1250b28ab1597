package profile

import (
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// Curve gives the experience needed to advance from a level to the next.
type Curve interface {
	ExpRequired(level int) int
}

// Linear requires PerLevel experience per current level.
type Linear struct {
	PerLevel int
}

func (c Linear) ExpRequired(level int) int {
	return level * c.PerLevel
}

// DefaultCurve is the linear curve with 100 exp per level.
var DefaultCurve Curve = Linear{PerLevel: 100}

// AddExperience credits amount and carries overflow across as many levels as
// it covers, leaving Exp below the next requirement. Negative amounts are
// ignored.
func AddExperience(p *domain.Profile, curve Curve, amount int) domain.LevelUpResult {
	res := domain.LevelUpResult{OldLevel: p.Level}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Exp < 0 {
		p.Exp = 0
	}
	if amount > 0 {
		p.Exp += amount
		res.ExpGained = amount
	}

	for {
		need := curve.ExpRequired(p.Level)
		if need <= 0 || p.Exp < need {
			break
		}
		p.Exp -= need
		p.Level++
	}

	res.NewLevel = p.Level
	res.NewExp = p.Exp
	res.LeveledUp = res.NewLevel > res.OldLevel
	if res.LeveledUp {
		slog.Info("Level up", "old_level", res.OldLevel, "new_level", res.NewLevel, "exp", p.Exp)
	}
	return res
}

// Progress returns the exp held and the exp needed for the next level.
func Progress(p domain.Profile, curve Curve) (int, int) {
	return p.Exp, curve.ExpRequired(p.Level)
}
