package handlers

import (
	"net/http"
	"time"

	"github.com/stackscope/core/internal/metrics"
)

type CompatibleRequest struct {
	Category string `json:"category" validate:"required"`
	ID       string `json:"id" validate:"required"`
	Target   string `json:"target" validate:"required"`
}

type CompatibleResponse struct {
	Category string   `json:"category"`
	ID       string   `json:"id"`
	Target   string   `json:"target"`
	Options  []string `json:"options"`
}

// Compatible returns the IDs in Target compatible with one technology.
func (h *Handler) Compatible(w http.ResponseWriter, r *http.Request) {
	var req CompatibleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	start := time.Now()
	result := h.res.Compatible(req.Category, req.ID, req.Target)
	metrics.ObserveResolution(req.Target, time.Since(start))

	h.respondJSON(w, http.StatusOK, CompatibleResponse{
		Category: req.Category,
		ID:       req.ID,
		Target:   req.Target,
		Options:  result.Sorted(),
	})
}
