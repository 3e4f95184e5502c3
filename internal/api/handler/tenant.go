package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kiranshivaraju/shoppulse/internal/api/response"
	"github.com/kiranshivaraju/shoppulse/internal/store"
	"github.com/kiranshivaraju/shoppulse/pkg/models"
)

// NewOnboardTenantHandler returns an http.HandlerFunc for POST /onboard-tenant.
//
// Creates exactly one tenant row per call. Duplicate names or shop URLs are
// not an error; only the storage layer's own constraints apply. The stored
// API credential is not echoed back in the response.
func NewOnboardTenantHandler(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name    string `json:"name"`
			ShopURL string `json:"shopUrl"`
			APIKey  string `json:"apiKey"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
			return
		}

		now := time.Now().UTC()
		tenant := &models.Tenant{
			ID:        uuid.NewString(),
			Name:      req.Name,
			ShopURL:   req.ShopURL,
			APIKey:    req.APIKey,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.CreateTenant(r.Context(), tenant); err != nil {
			slog.Error("onboard tenant", "tenant_name", req.Name, "error", err)
			response.Error(w, http.StatusInternalServerError, "ONBOARD_FAILED", "Failed to onboard tenant")
			return
		}

		response.JSON(w, tenant)
	}
}
