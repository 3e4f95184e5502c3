package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mw "github.com/kiranshivaraju/shoppulse/internal/api/middleware"
	"github.com/kiranshivaraju/shoppulse/internal/cache"
	"github.com/kiranshivaraju/shoppulse/pkg/models"
)

func webhookReq(t *testing.T, path, tenantID, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		r = r.WithContext(mw.SetTenantID(r.Context(), tenantID))
	}
	return r
}

func TestOrderWebhook_Success(t *testing.T) {
	s := newMockStore()
	c := newMockCache()
	h := NewOrderWebhookHandler(s, c)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1",
		`{"id":"ord-1","customer":{"id":"cust-9"},"total_price":"20.00","created_at":"2026-03-01T10:00:00Z"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	o, ok := s.orders["ord-1"]
	if !ok {
		t.Fatal("order was not stored")
	}
	if o.TenantID != "t1" {
		t.Errorf("tenant id = %q", o.TenantID)
	}
	if o.CustomerID != "cust-9" {
		t.Errorf("customer id = %q", o.CustomerID)
	}
	if o.AmountCents != 2000 {
		t.Errorf("amount cents = %d, want 2000", o.AmountCents)
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !o.Date.Equal(want) {
		t.Errorf("date = %v, want %v", o.Date, want)
	}
}

func TestOrderWebhook_NumericIDs(t *testing.T) {
	s := newMockStore()
	h := NewOrderWebhookHandler(s, newMockCache())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1",
		`{"id":4512,"customer":{"id":887},"total_price":"5","created_at":"2026-03-01"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	o, ok := s.orders["4512"]
	if !ok {
		t.Fatal("numeric id was not normalized to its string form")
	}
	if o.CustomerID != "887" {
		t.Errorf("customer id = %q", o.CustomerID)
	}
}

func TestOrderWebhook_MissingCustomerUsesSentinel(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no customer field", `{"id":"o1","total_price":"1.00","created_at":"2026-01-01"}`},
		{"empty customer", `{"id":"o2","customer":{},"total_price":"1.00","created_at":"2026-01-01"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMockStore()
			h := NewOrderWebhookHandler(s, newMockCache())
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1", tc.body))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			for _, o := range s.orders {
				if o.CustomerID != models.SentinelCustomerID {
					t.Errorf("customer id = %q, want sentinel", o.CustomerID)
				}
			}
		})
	}
}

func TestOrderWebhook_ReplayConvergesToSingleRow(t *testing.T) {
	s := newMockStore()
	h := NewOrderWebhookHandler(s, newMockCache())

	deliveries := []string{
		`{"id":"ord-7","total_price":"10.00","created_at":"2026-02-01"}`,
		`{"id":"ord-7","total_price":"12.50","created_at":"2026-02-01"}`,
	}
	for _, body := range deliveries {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1", body))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}

	if len(s.orders) != 1 {
		t.Fatalf("expected one row after replay, got %d", len(s.orders))
	}
	if got := s.orders["ord-7"].AmountCents; got != 1250 {
		t.Errorf("amount cents = %d, want last delivery's 1250", got)
	}
}

func TestOrderWebhook_BadAmount(t *testing.T) {
	for _, price := range []string{"", "abc", "12.x"} {
		t.Run("price "+price, func(t *testing.T) {
			s := newMockStore()
			h := NewOrderWebhookHandler(s, newMockCache())
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1",
				`{"id":"o1","total_price":"`+price+`","created_at":"2026-01-01"}`))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "INVALID_AMOUNT") {
				t.Errorf("expected INVALID_AMOUNT, got %s", rec.Body.String())
			}
			if len(s.orders) != 0 {
				t.Error("rejected delivery must not be stored")
			}
		})
	}
}

func TestOrderWebhook_BadPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing id", `{"total_price":"1.00","created_at":"2026-01-01"}`},
		{"bad date", `{"id":"o1","total_price":"1.00","created_at":"yesterday"}`},
		{"not json", `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newMockStore()
			h := NewOrderWebhookHandler(s, newMockCache())
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if len(s.orders) != 0 {
				t.Error("rejected delivery must not be stored")
			}
		})
	}
}

func TestOrderWebhook_NoTenantInContext(t *testing.T) {
	s := newMockStore()
	h := NewOrderWebhookHandler(s, newMockCache())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "",
		`{"id":"o1","total_price":"1.00","created_at":"2026-01-01"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(s.orders) != 0 {
		t.Error("no write may happen without a tenant id")
	}
}

func TestOrderWebhook_StorageFault(t *testing.T) {
	s := newMockStore()
	s.upsertOrderErr = errors.New("pool closed")
	h := NewOrderWebhookHandler(s, newMockCache())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1",
		`{"id":"o1","total_price":"1.00","created_at":"2026-01-01"}`))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "STORAGE_FAULT") {
		t.Errorf("expected STORAGE_FAULT, got %s", rec.Body.String())
	}
}

func TestOrderWebhook_InvalidatesInsightsCache(t *testing.T) {
	c := newMockCache()
	c.values[cache.InsightsKey("t1")] = []byte(`{"stale":true}`)
	h := NewOrderWebhookHandler(newMockStore(), c)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/order", "t1",
		`{"id":"o1","total_price":"1.00","created_at":"2026-01-01"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, stale := c.values[cache.InsightsKey("t1")]; stale {
		t.Error("insights cache entry should be invalidated after a write")
	}
}

func TestCustomerWebhook_Success(t *testing.T) {
	s := newMockStore()
	h := NewCustomerWebhookHandler(s, newMockCache())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/customer", "t1",
		`{"id":"cust-1","name":"Ada","email":"ada@x.com","spend":"130.55"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	c, ok := s.customers["cust-1"]
	if !ok {
		t.Fatal("customer was not stored")
	}
	if c.Name != "Ada" || c.Email != "ada@x.com" {
		t.Errorf("stored customer = %+v", c)
	}
	if c.SpendCents != 13055 {
		t.Errorf("spend cents = %d, want 13055", c.SpendCents)
	}
}

func TestCustomerWebhook_BadSpendDefaultsToZero(t *testing.T) {
	for _, spend := range []string{"", "free", "1.2.3"} {
		t.Run("spend "+spend, func(t *testing.T) {
			s := newMockStore()
			h := NewCustomerWebhookHandler(s, newMockCache())
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, webhookReq(t, "/webhook/customer", "t1",
				`{"id":"cust-2","name":"Bo","spend":"`+spend+`"}`))

			if rec.Code != http.StatusOK {
				t.Fatalf("unparsable spend must not fail the delivery, got %d", rec.Code)
			}
			if got := s.customers["cust-2"].SpendCents; got != 0 {
				t.Errorf("spend cents = %d, want 0", got)
			}
		})
	}
}

func TestCustomerWebhook_ReplayUpdatesInPlace(t *testing.T) {
	s := newMockStore()
	h := NewCustomerWebhookHandler(s, newMockCache())

	for _, body := range []string{
		`{"id":"cust-3","name":"Old Name","spend":"1.00"}`,
		`{"id":"cust-3","name":"New Name","spend":"2.00"}`,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, webhookReq(t, "/webhook/customer", "t1", body))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}

	if len(s.customers) != 1 {
		t.Fatalf("expected one row after replay, got %d", len(s.customers))
	}
	c := s.customers["cust-3"]
	if c.Name != "New Name" || c.SpendCents != 200 {
		t.Errorf("replay did not converge to last delivery: %+v", c)
	}
}

func TestCustomerWebhook_MissingID(t *testing.T) {
	s := newMockStore()
	h := NewCustomerWebhookHandler(s, newMockCache())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, webhookReq(t, "/webhook/customer", "t1", `{"name":"Nobody"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(s.customers) != 0 {
		t.Error("rejected delivery must not be stored")
	}
}
