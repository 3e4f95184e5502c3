package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kiranshivaraju/shoppulse/internal/api/response"
	"github.com/kiranshivaraju/shoppulse/internal/cache"
	"github.com/kiranshivaraju/shoppulse/internal/store"
)

// insightsCacheTTL bounds staleness if a webhook's cache invalidation fails.
const insightsCacheTTL = 30 * time.Second

// InsightsResponse is the aggregate the dashboard renders.
type InsightsResponse struct {
	Customers int            `json:"customers"`
	Orders    []OrderInsight `json:"orders"`
	Revenue   float64        `json:"revenue"`
}

// OrderInsight is one point of the dashboard's order-amount time series.
type OrderInsight struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
}

// NewInsightsHandler returns an http.HandlerFunc for GET /insights/{tenantID}.
//
// Aggregates over every row ever ingested for the tenant: no pagination and
// no time window. That is a deliberate design limit at this system's scale,
// not something to extend silently. A tenant with no rows returns zeros
// rather than 404, matching the ingestion side's acceptance of ids that were
// never onboarded.
func NewInsightsHandler(s store.Store, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := chi.URLParam(r, "tenantID")
		if tenantID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "tenant id is required")
			return
		}

		cacheKey := cache.InsightsKey(tenantID)
		if body, ok, err := c.Get(r.Context(), cacheKey); err == nil && ok {
			response.Raw(w, body)
			return
		}

		customers, err := s.CountCustomers(r.Context(), tenantID)
		if err != nil {
			slog.Error("count customers", "tenant_id", tenantID, "error", err)
			response.Error(w, http.StatusInternalServerError, "STORAGE_FAULT", "Failed to load insights")
			return
		}

		orders, err := s.ListOrders(r.Context(), tenantID)
		if err != nil {
			slog.Error("list orders", "tenant_id", tenantID, "error", err)
			response.Error(w, http.StatusInternalServerError, "STORAGE_FAULT", "Failed to load insights")
			return
		}

		// Sum in integer cents; the division happens once on the total
		var revenueCents int64
		orderInsights := make([]OrderInsight, 0, len(orders))
		for _, o := range orders {
			revenueCents += o.AmountCents
			orderInsights = append(orderInsights, OrderInsight{
				ID:         o.ID,
				CustomerID: o.CustomerID,
				Amount:     o.Amount(),
				Date:       o.Date,
			})
		}

		resp := InsightsResponse{
			Customers: customers,
			Orders:    orderInsights,
			Revenue:   float64(revenueCents) / 100,
		}

		body, err := json.Marshal(resp)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to encode insights")
			return
		}

		if err := c.Set(r.Context(), cacheKey, body, insightsCacheTTL); err != nil {
			slog.Warn("cache insights", "tenant_id", tenantID, "error", err)
		}

		response.Raw(w, body)
	}
}
