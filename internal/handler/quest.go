package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// QuestsResponse lists today's quests
type QuestsResponse struct {
	Quests  []domain.Quest `json:"quests"`
	ResetAt time.Time      `json:"reset_at"`
}

// HandleGetQuests returns the daily quests
func (h *GardenHandler) HandleGetQuests(w http.ResponseWriter, r *http.Request) {
	snap := h.garden.Snapshot()
	respondJSON(w, http.StatusOK, QuestsResponse{Quests: snap.Quests, ResetAt: snap.NextQuestAt})
}

// HandleClaimQuest pays out a completed quest
func (h *GardenHandler) HandleClaimQuest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "id"))
		return
	}
	if !hasQuest(h.garden.Snapshot().Quests, id) {
		respondError(w, http.StatusNotFound, domain.ErrMsgQuestNotFound)
		return
	}
	h.runIntent(w, r, ActionClaimQuest, func(ctx context.Context) (interface{}, bool, error) {
		q, ok, err := h.garden.ClaimQuest(ctx, id)
		if !ok {
			return nil, false, err
		}
		return q, true, nil
	})
}

func hasQuest(quests []domain.Quest, id string) bool {
	for _, q := range quests {
		if q.ID == id {
			return true
		}
	}
	return false
}
