package handler

import (
	"context"
	"time"

	"github.com/kiranshivaraju/shoppulse/internal/store"
	"github.com/kiranshivaraju/shoppulse/pkg/models"
)

// --- mock store ---

type mockStore struct {
	tenants   map[string]*models.Tenant
	customers map[string]*models.Customer
	orders    map[string]*models.Order

	createTenantErr   error
	upsertCustomerErr error
	upsertOrderErr    error
	countErr          error
	listErr           error
}

func newMockStore() *mockStore {
	return &mockStore{
		tenants:   map[string]*models.Tenant{},
		customers: map[string]*models.Customer{},
		orders:    map[string]*models.Order{},
	}
}

func (m *mockStore) Ping(_ context.Context) error { return nil }

func (m *mockStore) CreateTenant(_ context.Context, t *models.Tenant) error {
	if m.createTenantErr != nil {
		return m.createTenantErr
	}
	m.tenants[t.ID] = t
	return nil
}

func (m *mockStore) GetTenant(_ context.Context, id string) (*models.Tenant, error) {
	t, ok := m.tenants[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (m *mockStore) UpsertCustomer(_ context.Context, c *models.Customer) error {
	if m.upsertCustomerErr != nil {
		return m.upsertCustomerErr
	}
	if existing, ok := m.customers[c.ID]; ok {
		existing.Name = c.Name
		existing.Email = c.Email
		existing.SpendCents = c.SpendCents
		existing.UpdatedAt = c.UpdatedAt
		return nil
	}
	m.customers[c.ID] = c
	return nil
}

func (m *mockStore) UpsertOrder(_ context.Context, o *models.Order) error {
	if m.upsertOrderErr != nil {
		return m.upsertOrderErr
	}
	if existing, ok := m.orders[o.ID]; ok {
		existing.AmountCents = o.AmountCents
		existing.Date = o.Date
		existing.UpdatedAt = o.UpdatedAt
		return nil
	}
	m.orders[o.ID] = o
	return nil
}

func (m *mockStore) CountCustomers(_ context.Context, tenantID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, c := range m.customers {
		if c.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) ListOrders(_ context.Context, tenantID string) ([]*models.Order, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var orders []*models.Order
	for _, o := range m.orders {
		if o.TenantID == tenantID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// --- mock cache ---

type mockCache struct {
	values  map[string][]byte
	deletes []string
	getErr  error
	setErr  error
}

func newMockCache() *mockCache {
	return &mockCache{values: map[string][]byte{}}
}

func (m *mockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.values, key)
	return nil
}

func (m *mockCache) Ping(_ context.Context) error { return nil }

func (m *mockCache) IncrWithExpiry(_ context.Context, _ string, _ time.Duration) (int64, error) {
	return 1, nil
}
