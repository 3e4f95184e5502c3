package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/kiranshivaraju/shoppulse/internal/api/middleware"
	"github.com/kiranshivaraju/shoppulse/internal/api/response"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	TokenAuth *mw.TokenAuth
	RateLimit *mw.RateLimit

	HealthHandler          http.HandlerFunc
	LoginHandler           http.HandlerFunc
	OnboardTenantHandler   http.HandlerFunc
	InsightsHandler        http.HandlerFunc
	OrderWebhookHandler    http.HandlerFunc
	CustomerWebhookHandler http.HandlerFunc
}

// NewRouter builds the Chi router with middleware stack and all routes.
// Paths are fixed by the dashboard client and the commerce platform's
// webhook configuration, so they live at the root rather than under a
// versioned prefix.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ShopPulse insights service"))
	})
	r.Get("/health", orNotImplemented(deps.HealthHandler))

	r.Post("/login", orNotImplemented(deps.LoginHandler))
	r.Post("/onboard-tenant", orNotImplemented(deps.OnboardTenantHandler))

	// Dashboard reads, guarded by the login token
	r.Group(func(r chi.Router) {
		r.Use(deps.TokenAuth.Authenticate)

		r.Get("/insights/{tenantID}", orNotImplemented(deps.InsightsHandler))
	})

	// Webhook ingestion, keyed by the tenant header
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireTenantHeader)
		r.Use(deps.RateLimit.Limit)

		r.Post("/webhook/order", orNotImplemented(deps.OrderWebhookHandler))
		r.Post("/webhook/customer", orNotImplemented(deps.CustomerWebhookHandler))
	})

	return r
}

// orNotImplemented returns the handler if non-nil, or a 501 placeholder.
func orNotImplemented(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotImplemented, "NOT_IMPLEMENTED", "Endpoint not yet implemented")
	}
}
