package models

import "time"

// Customer represents a shop customer as last reported by the commerce
// platform. The id is the platform's own customer id; repeated webhook
// deliveries for the same id overwrite name, email, and spend.
type Customer struct {
	ID         string    `db:"id"          json:"id"`
	TenantID   string    `db:"tenant_id"   json:"tenantId"`
	Name       string    `db:"name"        json:"name"`
	Email      string    `db:"email"       json:"email"`
	SpendCents int64     `db:"spend_cents" json:"-"`
	CreatedAt  time.Time `db:"created_at"  json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updatedAt"`
}

// Spend returns the cumulative spend in currency units.
func (c *Customer) Spend() float64 {
	return float64(c.SpendCents) / 100
}
