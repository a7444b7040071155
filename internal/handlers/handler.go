// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling
// mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/stackscope/core/internal/resolver"
)

// Handler bundles the resolver with the request plumbing shared by every
// endpoint.
type Handler struct {
	res      *resolver.Resolver
	logger   *zap.Logger
	validate *validator.Validate
}

func NewHandler(res *resolver.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		res:      res,
		logger:   logger,
		validate: validator.New(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Error: message})
}

// decodeAndValidate decodes the request body into dst and runs its
// validation tags. A false return means an error response was already
// written.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}
