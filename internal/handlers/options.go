package handlers

import (
	"net/http"
	"time"

	"github.com/stackscope/core/internal/metrics"
)

// OptionsRequest asks which technologies in Category remain valid under the
// current Selections (category -> selected ID). The databaseType key carries
// the sql/nosql axis for the database specializations.
type OptionsRequest struct {
	Category   string            `json:"category" validate:"required"`
	Selections map[string]string `json:"selections"`
}

type OptionsResponse struct {
	Category string   `json:"category"`
	Options  []string `json:"options"`
}

// Options resolves the valid choices for one category. Unknown categories and
// unknown selected IDs are not errors; they come back as empty option lists.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	var req OptionsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	start := time.Now()
	result := h.res.Options(req.Selections, req.Category)
	metrics.ObserveResolution(req.Category, time.Since(start))

	h.respondJSON(w, http.StatusOK, OptionsResponse{
		Category: req.Category,
		Options:  result.Sorted(),
	})
}
