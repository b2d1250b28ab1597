package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Garden event types
const (
	PlantHarvested     Type = domain.EventTypePlantHarvested
	PlantPlanted       Type = domain.EventTypePlantPlanted
	PestSpawned        Type = domain.EventTypePestSpawned
	PestCaught         Type = domain.EventTypePestCaught
	PetAssisted        Type = domain.EventTypePetAssisted
	ItemBought         Type = domain.EventTypeItemBought
	ItemSold           Type = domain.EventTypeItemSold
	LevelUp            Type = domain.EventTypeLevelUp
	QuestCompleted     Type = domain.EventTypeQuestCompleted
	QuestClaimed       Type = domain.EventTypeQuestClaimed
	DailyResetComplete Type = domain.EventTypeDailyResetComplete
	GardenUpdated      Type = domain.EventTypeGardenUpdated
)

// Typed event payloads

// HarvestedPayloadV1 is the typed payload for harvest events
type HarvestedPayloadV1 struct {
	PlantType   string         `json:"plant_type"`
	Yield       int            `json:"yield"`
	Quality     domain.Quality `json:"quality"`
	PestDemoted bool           `json:"pest_demoted"`
	ExpGained   int            `json:"exp_gained"`
	Timestamp   int64          `json:"timestamp"`
}

// PlantedPayloadV1 is the typed payload for planting events
type PlantedPayloadV1 struct {
	PlantType string `json:"plant_type"`
	PotType   string `json:"pot_type"`
	Timestamp int64  `json:"timestamp"`
}

// PestSpawnedPayloadV1 is the typed payload for pest spawn events
type PestSpawnedPayloadV1 struct {
	PlantType string  `json:"plant_type"`
	Growth    float64 `json:"growth"`
	Chance    float64 `json:"chance"`
	Timestamp int64   `json:"timestamp"`
}

// PestCaughtPayloadV1 is the typed payload for pest caught events
type PestCaughtPayloadV1 struct {
	PestToolsLeft int   `json:"pest_tools_left"`
	Timestamp     int64 `json:"timestamp"`
}

// PetAssistedPayloadV1 is the typed payload for pet auto-watering events
type PetAssistedPayloadV1 struct {
	PetType    string  `json:"pet_type"`
	WaterAdded float64 `json:"water_added"`
	Timestamp  int64   `json:"timestamp"`
}

// ItemTradedPayloadV1 is the typed payload for item.bought and item.sold
type ItemTradedPayloadV1 struct {
	Item       string `json:"item"`
	Quantity   int    `json:"quantity"`
	TotalValue int64  `json:"total_value"`
	Timestamp  int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	Timestamp int64 `json:"timestamp"`
}

// QuestPayloadV1 is the typed payload for quest completed and claimed events
type QuestPayloadV1 struct {
	QuestID     string `json:"quest_id"`
	TemplateKey string `json:"template_key"`
	RewardMoney int64  `json:"reward_money"`
	Timestamp   int64  `json:"timestamp"`
}

// DailyResetCompletePayloadV1 is the typed payload for daily reset complete events
type DailyResetCompletePayloadV1 struct {
	ResetTime  time.Time `json:"reset_time"`
	QuestCount int       `json:"quest_count"`
}

// GardenUpdatedPayloadV1 names the operation that changed the garden
type GardenUpdatedPayloadV1 struct {
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// New wraps a payload in a versioned event
func New(eventType Type, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// NewHarvestedEvent creates a new harvest event
func NewHarvestedEvent(plantType string, yield int, quality domain.Quality, pestDemoted bool, expGained int, at time.Time) Event {
	return New(PlantHarvested, HarvestedPayloadV1{
		PlantType:   plantType,
		Yield:       yield,
		Quality:     quality,
		PestDemoted: pestDemoted,
		ExpGained:   expGained,
		Timestamp:   at.Unix(),
	})
}

// NewItemTradedEvent creates an item.bought or item.sold event
func NewItemTradedEvent(eventType Type, item string, quantity int, totalValue int64, at time.Time) Event {
	return New(eventType, ItemTradedPayloadV1{
		Item:       item,
		Quantity:   quantity,
		TotalValue: totalValue,
		Timestamp:  at.Unix(),
	})
}

// NewQuestEvent creates a quest completed or claimed event
func NewQuestEvent(eventType Type, q domain.Quest, at time.Time) Event {
	return New(eventType, QuestPayloadV1{
		QuestID:     q.ID,
		TemplateKey: q.TemplateKey,
		RewardMoney: q.RewardMoney,
		Timestamp:   at.Unix(),
	})
}

// NewDailyResetCompleteEvent creates a new daily reset complete event
func NewDailyResetCompleteEvent(resetTime time.Time, questCount int) Event {
	return New(DailyResetComplete, DailyResetCompletePayloadV1{
		ResetTime:  resetTime,
		QuestCount: questCount,
	})
}

// NewGardenUpdatedEvent creates a new garden updated event
func NewGardenUpdatedEvent(reason string, at time.Time) Event {
	return New(GardenUpdated, GardenUpdatedPayloadV1{
		Reason:    reason,
		Timestamp: at.Unix(),
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers the event to every subscriber of its type, synchronously
// and in subscription order. A failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// AllTypes lists every garden event type.
func AllTypes() []Type {
	return []Type{
		PlantHarvested, PlantPlanted, PestSpawned, PestCaught, PetAssisted,
		ItemBought, ItemSold, LevelUp, QuestCompleted, QuestClaimed,
		DailyResetComplete, GardenUpdated,
	}
}
