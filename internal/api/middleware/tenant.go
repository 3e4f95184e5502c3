package middleware

import (
	"net/http"
	"strings"

	"github.com/kiranshivaraju/shoppulse/internal/api/response"
)

// TenantHeader is the request header webhook senders use to name the tenant
// the delivery belongs to.
const TenantHeader = "X-Tenant-ID"

// RequireTenantHeader extracts the tenant id from the webhook header and sets
// it in the request context. An absent header is a client error; the value is
// deliberately not validated against the tenants table, since webhook
// delivery must not depend on onboarding having happened first.
func RequireTenantHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := strings.TrimSpace(r.Header.Get(TenantHeader))
		if tenantID == "" {
			response.Error(w, http.StatusBadRequest,
				"MISSING_TENANT_HEADER", "Missing tenant id in "+TenantHeader+" header")
			return
		}

		r = r.WithContext(SetTenantID(r.Context(), tenantID))
		next.ServeHTTP(w, r)
	})
}
