package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

func TestHarvest_NotReadyMutatesNothing(t *testing.T) {
	e, clk, _ := newTestEngine(t, &fixedRoll{value: 1})
	slot := plantedSlot("basic", 4)
	step(t, e, clk, slot, 2*time.Second)
	before := *slot.Crop

	result, ok, err := e.Harvest(slot)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, HarvestResult{}, result)
	require.NotNil(t, slot.Crop)
	assert.Equal(t, before, *slot.Crop)
	assert.True(t, slot.LastHarvestAt.IsZero())
}

func TestHarvest_EmptySlotFails(t *testing.T) {
	e, _, _ := newTestEngine(t, &fixedRoll{value: 1})

	result, ok, err := e.Harvest(&domain.PlantSlot{PotType: domain.DefaultPotType})

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, result.Yield)
}

func TestHarvest_Quality(t *testing.T) {
	tests := []struct {
		name        string
		water       float64
		wait        time.Duration
		pest        bool
		wantQuality domain.Quality
		wantDemoted bool
	}{
		{name: "wet and prompt is excellent", water: 20, wantQuality: domain.QualityExcellent},
		{name: "wet but late is normal", water: 20, wait: 5 * time.Minute, wantQuality: domain.QualityNormal},
		{name: "depleted is poor even when prompt", water: 0, wantQuality: domain.QualityPoor},
		{name: "pest demotes excellent to normal", water: 20, pest: true, wantQuality: domain.QualityNormal, wantDemoted: true},
		{name: "pest demotes normal to poor", water: 20, wait: 5 * time.Minute, pest: true, wantQuality: domain.QualityPoor, wantDemoted: true},
		{name: "pest leaves poor as poor", water: 0, pest: true, wantQuality: domain.QualityPoor, wantDemoted: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, clk, _ := newTestEngine(t, &fixedRoll{value: 1})
			slot := plantedSlot("basic", tc.water)
			step(t, e, clk, slot, 10*time.Second)
			require.True(t, slot.Crop.IsReady(3.0))
			if tc.pest {
				slot.Crop.Pest = &domain.Pest{AppearedAt: clk.Now()}
			}
			clk.Advance(tc.wait)

			result, ok, err := e.Harvest(slot)

			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.wantQuality, result.Quality)
			assert.Equal(t, tc.wantDemoted, result.PestDemoted)
			assert.True(t, slot.IsEmpty())
			assert.False(t, slot.HasPest())
		})
	}
}

func TestHarvest_ExcellentWindowMeasuredFromReadyAt(t *testing.T) {
	e, clk, tables := newTestEngine(t, &fixedRoll{value: 1})
	slot := plantedSlot("basic", 0)
	slot.Crop.Growth = 2.9
	slot.Crop.Water = 50

	// Ready within the first second; an offline jump far past that is late.
	step(t, e, clk, slot, tables.ExcellentWindow()+time.Minute)

	result, ok, err := e.Harvest(slot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.QualityNormal, result.Quality)
}

func TestYieldFor(t *testing.T) {
	tests := []struct {
		base    int
		quality domain.Quality
		want    int
	}{
		{base: 1, quality: domain.QualityNormal, want: 1},
		{base: 1, quality: domain.QualityExcellent, want: 1},
		{base: 1, quality: domain.QualityPoor, want: 1},
		{base: 2, quality: domain.QualityExcellent, want: 2},
		{base: 2, quality: domain.QualityPoor, want: 1},
		{base: 4, quality: domain.QualityExcellent, want: 5},
		{base: 4, quality: domain.QualityNormal, want: 4},
		{base: 5, quality: domain.QualityPoor, want: 2},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, YieldFor(tc.base, tc.quality), "base %d quality %s", tc.base, tc.quality)
	}
}
