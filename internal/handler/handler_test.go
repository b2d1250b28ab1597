package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/garden"
	"github.com/osse101/GrowPot_Go/internal/repository"
)

type neverRoll struct{}

func (neverRoll) Float64() float64 { return 1 }

func newTestHandler(t *testing.T) (*GardenHandler, *clock.Fake) {
	t.Helper()
	tables, err := config.DefaultTables()
	require.NoError(t, err)

	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	g, err := garden.Open(context.Background(), garden.Deps{
		Tables:   tables,
		Clock:    clk,
		Random:   neverRoll{},
		Repo:     repository.NewMemory(),
		SaveSlot: "handler",
	})
	require.NoError(t, err)
	return NewGardenHandler(g), clk
}

func postJSON(t *testing.T, fn http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func decodeAction(t *testing.T, rec *httptest.ResponseRecorder) ActionResponse {
	t.Helper()
	var resp ActionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleGetGarden(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleGetGarden(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap garden.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	assert.Equal(t, 10, snap.Wallet.SeedStock["basic"])
	assert.Empty(t, snap.Slot.PlantType)
}

func TestHandlePlant(t *testing.T) {
	t.Run("plants a seed", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandlePlant, `{"plant_type":"basic"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeAction(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, ActionPlant, resp.Action)
		assert.Equal(t, "basic", resp.Snapshot.Slot.PlantType)
		assert.Equal(t, 9, resp.Snapshot.Wallet.SeedStock["basic"])
	})

	t.Run("occupied slot is refused", func(t *testing.T) {
		h, _ := newTestHandler(t)
		require.Equal(t, http.StatusOK, postJSON(t, h.HandlePlant, `{"plant_type":"basic"}`).Code)

		rec := postJSON(t, h.HandlePlant, `{"plant_type":"basic"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeAction(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, MsgActionRefused, resp.Message)
		assert.Equal(t, 9, resp.Snapshot.Wallet.SeedStock["basic"])
	})

	t.Run("unknown plant is a client error", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandlePlant, `{"plant_type":"cactus"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUnknownPlantError)
	})

	t.Run("malformed key fails validation", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandlePlant, `{"plant_type":"Rose!"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Contains(t, resp.Fields, "planttype")
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandlePlant, `{"plant_type":"basic","extra":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleHarvest(t *testing.T) {
	h, clk := newTestHandler(t)

	rec := postJSON(t, h.HandleHarvest, ``)
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.Equal(t, http.StatusOK, postJSON(t, h.HandlePlant, `{"plant_type":"basic"}`).Code)
	clk.Advance(30 * time.Second)

	rec = postJSON(t, h.HandleHarvest, ``)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Result  struct {
			PlantType string `json:"plant_type"`
			Yield     int    `json:"yield"`
			ExpGained int    `json:"exp_gained"`
		} `json:"result"`
		Snapshot garden.Snapshot `json:"snapshot"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "basic", body.Result.PlantType)
	assert.Positive(t, body.Result.Yield)
	assert.Empty(t, body.Snapshot.Slot.PlantType)
	assert.Equal(t, body.Result.Yield, body.Snapshot.Wallet.Inventory["basic"])
}

func TestHandleShop(t *testing.T) {
	t.Run("no money refuses purchase", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandleBuySeeds, `{"plant_type":"rose","quantity":1}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, decodeAction(t, rec).Success)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandleBuyPetFood, `{"quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("selling nothing is refused", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandleSell, `{"item":"basic","quantity":1}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown pet", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := postJSON(t, h.HandleUnlockPet, `{"pet_type":"dragon"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgUnknownPetError)
	})
}

func TestHandleClaimQuest(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleClaimQuest(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	claim := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()
		h.HandleClaimQuest(rec, req)
		return rec
	}

	t.Run("unknown quest", func(t *testing.T) {
		rec := claim("no-such-quest")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrMsgQuestNotFound)
	})

	t.Run("incomplete quest is refused", func(t *testing.T) {
		reset, err := h.garden.(*garden.Garden).ResetDailyQuestsIfNeeded(context.Background())
		require.NoError(t, err)
		require.True(t, reset)
		quests := h.garden.Snapshot().Quests
		require.NotEmpty(t, quests)

		rec := claim(quests[0].ID)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, decodeAction(t, rec).Success)
	})
}

func TestHandleUpdateProfile(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postJSON(t, h.HandleUpdateProfile, `{"name":"Fern"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fern", decodeAction(t, rec).Snapshot.Profile.Name)

	rec = postJSON(t, h.HandleUpdateProfile, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h.HandleUpdateProfile, `{"name":"this name is far too long to keep"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleGetProfile(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `"Fern"`)
}

func TestHandleGetCatalog(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleGetCatalog(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CatalogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Plants, 3)
	assert.Equal(t, "basic", resp.Plants[0].Key)
	assert.Contains(t, resp.Pots, "wood")
	assert.Contains(t, resp.Pets, "cat")
	assert.Equal(t, 3.0, resp.PlantAt)
}

func TestHandleWater_LookupFailureIsNotARefusal(t *testing.T) {
	h, clk := newTestHandler(t)
	ok, err := h.garden.Plant(context.Background(), "basic")
	require.NoError(t, err)
	require.True(t, ok)

	delete(h.garden.Tables().Plants, "basic")
	clk.Advance(time.Second)

	rec := httptest.NewRecorder()
	h.HandleWater(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgUnknownPlantError)
}
