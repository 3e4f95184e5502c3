package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kiranshivaraju/shoppulse/pkg/models"
)

// PostgresStore implements the Store interface using pgx/v5.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Ping checks database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Tenants ---

func (s *PostgresStore) CreateTenant(ctx context.Context, t *models.Tenant) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO tenants (id, name, shop_url, api_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.ShopURL, t.APIKey, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	var t models.Tenant
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, shop_url, api_key, created_at, updated_at FROM tenants WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.ShopURL, &t.APIKey, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// --- Customers ---

// UpsertCustomer writes a customer row keyed by the platform's customer id.
// On conflict the mutable fields (name, email, spend) are overwritten; the
// tenant id is only attached on first insert. Row-level atomicity of the
// ON CONFLICT clause serializes overlapping deliveries for the same id.
func (s *PostgresStore) UpsertCustomer(ctx context.Context, c *models.Customer) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO customers (id, tenant_id, name, email, spend_cents, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name,
		   email = EXCLUDED.email,
		   spend_cents = EXCLUDED.spend_cents,
		   updated_at = EXCLUDED.updated_at`,
		c.ID, c.TenantID, c.Name, c.Email, c.SpendCents, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert customer: %w", err)
	}
	return nil
}

func (s *PostgresStore) CountCustomers(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE tenant_id = $1`, tenantID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// --- Orders ---

// UpsertOrder writes an order row keyed by the platform's order id. On
// conflict the amount and date are overwritten (last write wins per id).
func (s *PostgresStore) UpsertOrder(ctx context.Context, o *models.Order) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO orders (id, tenant_id, customer_id, amount_cents, date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		   amount_cents = EXCLUDED.amount_cents,
		   date = EXCLUDED.date,
		   updated_at = EXCLUDED.updated_at`,
		o.ID, o.TenantID, o.CustomerID, o.AmountCents, o.Date, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListOrders(ctx context.Context, tenantID string) ([]*models.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, tenant_id, customer_id, amount_cents, date, created_at, updated_at
		 FROM orders WHERE tenant_id = $1 ORDER BY date ASC`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.TenantID, &o.CustomerID, &o.AmountCents, &o.Date,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
