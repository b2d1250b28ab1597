package garden

import (
	"context"
	"time"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/profile"
)

// AddExperience credits experience outside of a harvest.
func (g *Garden) AddExperience(ctx context.Context, amount int) (domain.LevelUpResult, error) {
	var res domain.LevelUpResult
	_, err := g.intent(ctx, ReasonProfile, func(events *batch) (bool, error) {
		res = profile.AddExperience(&g.state.Profile, g.curve, amount)
		g.levelEventsLocked(events, res)
		return true, nil
	})
	return res, err
}

// ClaimQuest pays out a completed quest.
func (g *Garden) ClaimQuest(ctx context.Context, id string) (domain.Quest, bool, error) {
	var claimed domain.Quest
	ok, err := g.intent(ctx, ReasonQuest, func(events *batch) (bool, error) {
		q, ok := g.quests.Claim(g.state, id)
		if !ok {
			return false, nil
		}
		claimed = q
		events.add(event.NewQuestEvent(event.QuestClaimed, q, g.clock.Now()))
		return true, nil
	})
	return claimed, ok, err
}

// ResetDailyQuestsIfNeeded regenerates the quests when a new day has begun.
func (g *Garden) ResetDailyQuestsIfNeeded(ctx context.Context) (bool, error) {
	return g.intent(ctx, ReasonDailyReset, func(events *batch) (bool, error) {
		return g.resetQuestsLocked(events), nil
	})
}

func (g *Garden) resetQuestsLocked(events *batch) bool {
	if !g.quests.ResetIfNeeded(g.state) {
		return false
	}
	events.add(event.NewDailyResetCompleteEvent(g.state.QuestLastResetAt, len(g.state.DailyQuests)))
	return true
}

// UpdateProfile changes the player name and avatar. An empty argument leaves
// that field alone. Both values are validated before either is applied.
func (g *Garden) UpdateProfile(ctx context.Context, name, avatar string) (bool, error) {
	return g.intent(ctx, ReasonProfile, func(*batch) (bool, error) {
		if name == "" && avatar == "" {
			return false, nil
		}
		next := g.state.Profile
		if name != "" && !profile.Rename(&next, name) {
			return false, nil
		}
		if avatar != "" && !profile.SetAvatar(&next, g.tables, avatar) {
			return false, nil
		}
		g.state.Profile = next
		return true, nil
	})
}

// NextQuestReset returns when the current quest day ends.
func (g *Garden) NextQuestReset() time.Time {
	return g.quests.NextResetAt(g.clock.Now())
}
