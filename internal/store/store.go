package store

import (
	"context"
	"errors"

	"github.com/kiranshivaraju/shoppulse/pkg/models"
)

var ErrNotFound = errors.New("resource not found")

// Store is the data access interface. All database operations go through here.
type Store interface {
	Ping(ctx context.Context) error

	CreateTenant(ctx context.Context, t *models.Tenant) error
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)

	// UpsertCustomer and UpsertOrder are keyed by the commerce platform's own
	// entity id: replaying the same webhook delivery overwrites the mutable
	// fields with identical values and never duplicates a row.
	UpsertCustomer(ctx context.Context, c *models.Customer) error
	UpsertOrder(ctx context.Context, o *models.Order) error

	CountCustomers(ctx context.Context, tenantID string) (int, error)
	ListOrders(ctx context.Context, tenantID string) ([]*models.Order, error)
}
