package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const (
	tenantIDKey   contextKey = "tenant_id"
	tokenEmailKey contextKey = "token_email"
)

func SetTenantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, tenantIDKey, id)
}

func GetTenantID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(tenantIDKey).(string)
	return id, ok
}

func SetTokenEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, tokenEmailKey, email)
}

func GetTokenEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(tokenEmailKey).(string)
	return email, ok
}
