package models

import "time"

// SentinelCustomerID is attached to orders whose webhook payload carried no
// customer reference.
const SentinelCustomerID = "unknown"

// Order represents an order as last reported by the commerce platform.
// The id is the platform's own order id. Amounts are stored as integer
// cents so that revenue sums stay exact at two-decimal precision.
type Order struct {
	ID          string    `db:"id"           json:"id"`
	TenantID    string    `db:"tenant_id"    json:"tenantId"`
	CustomerID  string    `db:"customer_id"  json:"customerId"`
	AmountCents int64     `db:"amount_cents" json:"-"`
	Date        time.Time `db:"date"         json:"date"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updatedAt"`
}

// Amount returns the order amount in currency units.
func (o *Order) Amount() float64 {
	return float64(o.AmountCents) / 100
}
