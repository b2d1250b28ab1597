package quest

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/utils"
)

// Log messages
const (
	LogMsgDailyQuestsReset = "Daily quests reset"
	LogMsgQuestCompleted   = "Quest completed"
	LogMsgQuestClaimed     = "Quest reward claimed"
)

// Tracker owns the daily quest lifecycle: generation at each calendar day
// boundary in the reset zone, progress from harvests and caught pests, and
// reward claims.
type Tracker struct {
	tables   *config.Tables
	clock    clock.Clock
	location *time.Location
	newID    func() string
}

// NewTracker creates a tracker resetting at midnight in loc. A nil loc means UTC.
func NewTracker(tables *config.Tables, clk clock.Clock, loc *time.Location) *Tracker {
	if loc == nil {
		loc = time.UTC
	}
	return &Tracker{
		tables:   tables,
		clock:    clk,
		location: loc,
		newID:    uuid.NewString,
	}
}

// Location returns the zone whose calendar days bound the daily quests.
func (t *Tracker) Location() *time.Location {
	return t.location
}

// NeedsReset reports whether the quests were last generated on an earlier
// calendar day than now, or never.
func (t *Tracker) NeedsReset(lastReset time.Time) bool {
	if lastReset.IsZero() {
		return true
	}
	return dayStart(lastReset, t.location).Before(dayStart(t.clock.Now(), t.location))
}

// ResetIfNeeded replaces the daily quests when a new calendar day has begun.
func (t *Tracker) ResetIfNeeded(state *domain.GameState) bool {
	if !t.NeedsReset(state.QuestLastResetAt) {
		return false
	}

	now := t.clock.Now()
	state.DailyQuests = t.Generate(now)
	state.QuestLastResetAt = now
	slog.Info(LogMsgDailyQuestsReset, "count", len(state.DailyQuests), "day", now.In(t.location).Format(time.DateOnly))
	return true
}

// Generate draws the quest list for the calendar day containing now. The
// draw is seeded by the day, so the same day always yields the same
// templates.
func (t *Tracker) Generate(now time.Time) []domain.Quest {
	cfg := t.tables.Quests
	pool := make([]config.QuestTemplate, len(cfg.Templates))
	copy(pool, cfg.Templates)

	rng := rand.New(rand.NewSource(daySeed(now.In(t.location)))) //nolint:gosec
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := utils.RandomIntInRange(rng, cfg.MinDaily, cfg.MaxDaily)
	n = min(n, len(pool))

	quests := make([]domain.Quest, 0, n)
	for _, tpl := range pool[:n] {
		quests = append(quests, domain.Quest{
			ID:               t.newID(),
			TemplateKey:      tpl.Key,
			Description:      tpl.Description,
			RequirementType:  tpl.RequirementType,
			TargetPlantType:  tpl.TargetPlantType,
			RequirementCount: tpl.RequirementCount,
			RewardMoney:      tpl.RewardMoney,
		})
	}
	return quests
}

// NextResetAt returns the next midnight in the reset zone after now.
func (t *Tracker) NextResetAt(now time.Time) time.Time {
	return dayStart(now, t.location).AddDate(0, 0, 1)
}

// RecordHarvest adds count units of progress to active harvest quests that
// accept plantType. It returns the quests that completed with this call.
func (t *Tracker) RecordHarvest(quests []domain.Quest, plantType string, count int) []domain.Quest {
	return advance(quests, count, func(q *domain.Quest) bool {
		return q.MatchesHarvest(plantType)
	})
}

// RecordPestCaught adds count units of progress to active pest quests.
func (t *Tracker) RecordPestCaught(quests []domain.Quest, count int) []domain.Quest {
	return advance(quests, count, func(q *domain.Quest) bool {
		return q.RequirementType == domain.QuestTypeCatchPest
	})
}

// Claim pays out a completed, unclaimed quest. Anything else is refused.
func (t *Tracker) Claim(state *domain.GameState, id string) (domain.Quest, bool) {
	q := state.FindQuest(id)
	if q == nil || !q.Claimable() {
		return domain.Quest{}, false
	}

	q.Claimed = true
	state.Wallet.Money += q.RewardMoney
	slog.Info(LogMsgQuestClaimed, "quest_id", q.ID, "template", q.TemplateKey, "reward", q.RewardMoney)
	return *q, true
}

func advance(quests []domain.Quest, count int, matches func(*domain.Quest) bool) []domain.Quest {
	if count <= 0 {
		return nil
	}
	var completed []domain.Quest
	for i := range quests {
		q := &quests[i]
		if !q.IsActive() || !matches(q) {
			continue
		}
		q.Progress = min(q.Progress+count, q.RequirementCount)
		if q.Progress >= q.RequirementCount {
			q.Completed = true
			completed = append(completed, *q)
			slog.Info(LogMsgQuestCompleted, "quest_id", q.ID, "template", q.TemplateKey)
		}
	}
	return completed
}

func dayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func daySeed(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y*10000 + int(m)*100 + d)
}
