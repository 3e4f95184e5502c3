package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	mw "github.com/kiranshivaraju/shoppulse/internal/api/middleware"
	"github.com/kiranshivaraju/shoppulse/internal/api/response"
	"github.com/kiranshivaraju/shoppulse/internal/cache"
	"github.com/kiranshivaraju/shoppulse/internal/store"
	"github.com/kiranshivaraju/shoppulse/pkg/models"
)

// NewOrderWebhookHandler returns an http.HandlerFunc for POST /webhook/order.
//
// The write is an upsert keyed by the platform's order id: replaying an
// identical delivery converges to the same row, and overlapping deliveries
// for the same id are serialized by the storage layer's ON CONFLICT
// atomicity. An unparsable total_price is rejected with 400 rather than
// coerced, so a bad delivery can never corrupt the revenue sum.
func NewOrderWebhookHandler(s store.Store, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := mw.GetTenantID(r)
		if !ok {
			response.Error(w, http.StatusBadRequest, "MISSING_TENANT_HEADER", "Missing tenant id")
			return
		}

		var req struct {
			ID       any `json:"id"`
			Customer *struct {
				ID any `json:"id"`
			} `json:"customer"`
			TotalPrice string `json:"total_price"`
			CreatedAt  string `json:"created_at"`
		}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Invalid JSON body")
			return
		}

		orderID := idString(req.ID)
		if orderID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_PAYLOAD", "id is required")
			return
		}

		amountCents, err := parseCents(req.TotalPrice)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_AMOUNT",
				"total_price must be a decimal amount")
			return
		}

		date, err := parseOrderDate(req.CreatedAt)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_PAYLOAD",
				"created_at must be an RFC3339 timestamp or YYYY-MM-DD date")
			return
		}

		customerID := models.SentinelCustomerID
		if req.Customer != nil {
			if id := idString(req.Customer.ID); id != "" {
				customerID = id
			}
		}

		now := time.Now().UTC()
		order := &models.Order{
			ID:          orderID,
			TenantID:    tenantID,
			CustomerID:  customerID,
			AmountCents: amountCents,
			Date:        date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := s.UpsertOrder(r.Context(), order); err != nil {
			slog.Error("ingest order webhook", "order_id", orderID, "tenant_id", tenantID, "error", err)
			response.Error(w, http.StatusInternalServerError, "STORAGE_FAULT", "Failed to store order")
			return
		}

		invalidateInsights(r.Context(), c, tenantID)
		response.NoContent(w)
	}
}

// NewCustomerWebhookHandler returns an http.HandlerFunc for POST /webhook/customer.
//
// Same upsert contract as the order webhook. An unparsable spend value
// defaults to zero instead of failing the delivery; this is the one
// documented silent fallback in the service.
func NewCustomerWebhookHandler(s store.Store, c cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := mw.GetTenantID(r)
		if !ok {
			response.Error(w, http.StatusBadRequest, "MISSING_TENANT_HEADER", "Missing tenant id")
			return
		}

		var req struct {
			ID    any    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Spend string `json:"spend"`
		}
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_PAYLOAD", "Invalid JSON body")
			return
		}

		customerID := idString(req.ID)
		if customerID == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_PAYLOAD", "id is required")
			return
		}

		spendCents, err := parseCents(req.Spend)
		if err != nil {
			spendCents = 0
		}

		now := time.Now().UTC()
		customer := &models.Customer{
			ID:         customerID,
			TenantID:   tenantID,
			Name:       req.Name,
			Email:      req.Email,
			SpendCents: spendCents,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := s.UpsertCustomer(r.Context(), customer); err != nil {
			slog.Error("ingest customer webhook", "customer_id", customerID, "tenant_id", tenantID, "error", err)
			response.Error(w, http.StatusInternalServerError, "STORAGE_FAULT", "Failed to store customer")
			return
		}

		invalidateInsights(r.Context(), c, tenantID)
		response.NoContent(w)
	}
}

// idString normalizes the platform's entity id, which arrives as either a
// JSON string or a number depending on the sender.
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

// invalidateInsights drops the tenant's cached insights after a successful
// write. Best effort: a failed delete only delays freshness by the cache TTL.
func invalidateInsights(ctx context.Context, c cache.Cache, tenantID string) {
	if err := c.Delete(ctx, cache.InsightsKey(tenantID)); err != nil {
		slog.Warn("invalidate insights cache", "tenant_id", tenantID, "error", err)
	}
}
