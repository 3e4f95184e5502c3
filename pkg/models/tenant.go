package models

import "time"

// Tenant represents a single onboarded shop. Every customer and order row
// belongs to exactly one tenant; the tenant id is the unit of data isolation.
// The platform API credential is stored for outbound sync calls but never
// serialized in responses.
type Tenant struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	ShopURL   string    `db:"shop_url"   json:"shopUrl"`
	APIKey    string    `db:"api_key"    json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
