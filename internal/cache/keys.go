package cache

import "fmt"

// InsightsKey caches the serialized insights response for a tenant. Webhook
// writes delete this key so cached reads never observe pre-upsert values.
func InsightsKey(tenantID string) string {
	return fmt.Sprintf("insights:%s", tenantID)
}

func RateLimitKey(tenantID string) string {
	return fmt.Sprintf("ratelimit:%s", tenantID)
}
