package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

func TestPlant(t *testing.T) {
	e, clk, _ := newTestEngine(t, &fixedRoll{value: 1})
	slot := &domain.PlantSlot{PotType: domain.DefaultPotType}

	ok, err := e.Plant(slot, "cactus")
	assert.ErrorIs(t, err, domain.ErrUnknownPlant)
	assert.False(t, ok)
	assert.True(t, slot.IsEmpty())

	ok, err = e.Plant(slot, "rose")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "rose", slot.Crop.PlantType)
	assert.Equal(t, 0.0, slot.Crop.Growth)
	assert.Equal(t, 0.0, slot.Crop.Water)
	assert.Equal(t, clk.Now(), slot.Crop.PlantedAt)

	ok, err = e.Plant(slot, "daisy")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "rose", slot.Crop.PlantType)
}

func TestChangePot(t *testing.T) {
	e, _, _ := newTestEngine(t, &fixedRoll{value: 1})
	unlocked := domain.NewKeySet(domain.DefaultPotType)

	t.Run("unknown pot is a lookup error", func(t *testing.T) {
		slot := &domain.PlantSlot{PotType: domain.DefaultPotType}
		ok, err := e.ChangePot(slot, unlocked, "gold")
		assert.ErrorIs(t, err, domain.ErrUnknownPot)
		assert.False(t, ok)
	})

	t.Run("locked pot is rejected", func(t *testing.T) {
		slot := &domain.PlantSlot{PotType: domain.DefaultPotType}
		ok, err := e.ChangePot(slot, unlocked, "wood")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, domain.DefaultPotType, slot.PotType)
	})

	withWood := unlocked.Clone()
	withWood.Add("wood")

	t.Run("same pot is rejected", func(t *testing.T) {
		slot := &domain.PlantSlot{PotType: "wood"}
		ok, err := e.ChangePot(slot, withWood, "wood")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("growing crop blocks the change", func(t *testing.T) {
		slot := plantedSlot("basic", 1)
		ok, err := e.ChangePot(slot, withWood, "wood")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, domain.DefaultPotType, slot.PotType)
	})

	t.Run("empty slot accepts unlocked pot", func(t *testing.T) {
		slot := &domain.PlantSlot{PotType: domain.DefaultPotType}
		ok, err := e.ChangePot(slot, withWood, "wood")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "wood", slot.PotType)
	})
}

func TestWater(t *testing.T) {
	e, _, tables := newTestEngine(t, &fixedRoll{value: 1})

	assert.False(t, e.Water(&domain.PlantSlot{PotType: domain.DefaultPotType}))

	slot := plantedSlot("basic", 0)
	for i := 0; i < 3; i++ {
		assert.True(t, e.Water(slot))
	}
	// No upper clamp.
	assert.Equal(t, 3*tables.Constants.WaterPerClick, slot.Crop.Water)
}

func TestCatchPest(t *testing.T) {
	e, _, _ := newTestEngine(t, &fixedRoll{value: 1})

	t.Run("no pest", func(t *testing.T) {
		w := domain.NewWallet()
		w.PestTools = 2
		assert.False(t, e.CatchPest(plantedSlot("basic", 1), &w))
		assert.Equal(t, 2, w.PestTools)
	})

	t.Run("no tool", func(t *testing.T) {
		w := domain.NewWallet()
		slot := plantedSlot("basic", 1)
		slot.Crop.Pest = &domain.Pest{AppearedAt: testStart}
		assert.False(t, e.CatchPest(slot, &w))
		assert.True(t, slot.HasPest())
		assert.Empty(t, w.Inventory)
	})

	t.Run("caught", func(t *testing.T) {
		w := domain.NewWallet()
		w.PestTools = 1
		w.Inventory[domain.ItemBug] = 2
		slot := plantedSlot("basic", 1)
		slot.Crop.Pest = &domain.Pest{AppearedAt: testStart}

		assert.True(t, e.CatchPest(slot, &w))
		assert.False(t, slot.HasPest())
		assert.Equal(t, 0, w.PestTools)
		assert.Equal(t, 3, w.Inventory[domain.ItemBug])
	})
}

func TestResetSlot(t *testing.T) {
	e, _, _ := newTestEngine(t, &fixedRoll{value: 1})

	slot := plantedSlot("rose", 3)
	slot.PotType = "wood"
	slot.Crop.WaterEverDepleted = true

	assert.True(t, e.ResetSlot(slot))
	assert.True(t, slot.IsEmpty())
	assert.Equal(t, "wood", slot.PotType)
	assert.False(t, e.ResetSlot(slot))
}

func TestAutoAssist(t *testing.T) {
	e, clk, tables := newTestEngine(t, &fixedRoll{value: 1})
	cat, err := tables.Pet("cat")
	require.NoError(t, err)
	dryLevel := cat.AutoWaterThreshold * tables.Constants.ReferenceMaxWater

	fedPet := func() *domain.Pet {
		return &domain.Pet{ActivePet: "cat", LastFedAt: clk.Now().Add(-time.Minute)}
	}

	t.Run("waters a dry crop", func(t *testing.T) {
		slot := plantedSlot("basic", dryLevel)
		pet := fedPet()
		ok, err := e.AutoAssist(slot, pet)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.InDelta(t, dryLevel+cat.AutoWaterAmount, slot.Crop.Water, 1e-12)
		assert.Equal(t, clk.Now(), pet.LastWorkedAt)
	})

	t.Run("leaves a wet crop alone", func(t *testing.T) {
		slot := plantedSlot("basic", dryLevel+0.01)
		ok, err := e.AutoAssist(slot, fedPet())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("hungry pet does not work", func(t *testing.T) {
		slot := plantedSlot("basic", 0)
		pet := &domain.Pet{ActivePet: "cat", LastFedAt: clk.Now().Add(-cat.WorkDuration())}
		ok, err := e.AutoAssist(slot, pet)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0.0, slot.Crop.Water)
	})

	t.Run("no pet or empty slot", func(t *testing.T) {
		ok, err := e.AutoAssist(plantedSlot("basic", 0), &domain.Pet{})
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = e.AutoAssist(&domain.PlantSlot{PotType: domain.DefaultPotType}, fedPet())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown pet is a lookup error", func(t *testing.T) {
		pet := &domain.Pet{ActivePet: "dragon", LastFedAt: clk.Now()}
		_, err := e.AutoAssist(plantedSlot("basic", 0), pet)
		assert.ErrorIs(t, err, domain.ErrUnknownPet)
	})
}
