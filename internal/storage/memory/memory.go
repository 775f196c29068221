// Package memory provides the in-memory implementation of the
// storage.Store interface. All state lives for the process lifetime;
// there is no durability by design.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/billman/internal/calculator"
	"github.com/mmynk/billman/internal/idgen"
	"github.com/mmynk/billman/internal/models"
	"github.com/mmynk/billman/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore holds the customer and item collections as ordered
// slices. Lookups are linear, which is fine at the expected scale of
// tens to low thousands of records.
type MemoryStore struct {
	mu        sync.RWMutex
	newID     idgen.Generator
	now       func() time.Time
	customers []models.Customer
	items     []models.Item
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator overrides the identifier generator (default UUID).
func WithIDGenerator(g idgen.Generator) Option {
	return func(s *MemoryStore) { s.newID = g }
}

// WithClock overrides the clock used for item date defaults.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

// New creates an empty MemoryStore.
func New(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		newID: idgen.UUID(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close is a no-op; nothing outlives the process.
func (s *MemoryStore) Close() error { return nil }

// CreateCustomer appends a new customer, assigning an ID if unset.
func (s *MemoryStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customer.ID == "" {
		customer.ID = s.newID()
	}
	s.customers = append(s.customers, *customer)
	return nil
}

// GetCustomer retrieves a customer by ID.
func (s *MemoryStore) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

// ListCustomers returns all customers in insertion order.
func (s *MemoryStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// SearchCustomers matches the query against name or phone,
// case-insensitively. An empty query returns all customers.
func (s *MemoryStore) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.ListCustomers(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// UpdateCustomer merges the patch into the matching customer.
// Unknown ids are a no-op.
func (s *MemoryStore) UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.customers[i].Name = *patch.Name
		}
		if patch.Phone != nil {
			s.customers[i].Phone = *patch.Phone
		}
		if patch.Address != nil {
			s.customers[i].Address = *patch.Address
		}
		return nil
	}
	return nil
}

// DeleteCustomer removes the matching customer. Unknown ids are a
// no-op. Items are not touched; callers cascade explicitly.
func (s *MemoryStore) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

// CreateItem appends a new item, filling defaults and computing Total.
func (s *MemoryStore) CreateItem(ctx context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.Status == "" {
		item.Status = models.StatusPending
	}
	if item.Date == "" {
		item.Date = s.now().Format(models.DateLayout)
	}
	item.Total = calculator.Total(item.Amount, item.Rate)

	s.items = append(s.items, *item)
	return nil
}

// GetItem retrieves an item by ID.
func (s *MemoryStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, storage.ErrNotFound
}

// ListItems returns all items in insertion order.
func (s *MemoryStore) ListItems(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// ListItemsByCustomer returns one customer's items in insertion order.
func (s *MemoryStore) ListItemsByCustomer(ctx context.Context, customerID string) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		if item.CustomerID == customerID {
			out = append(out, item)
		}
	}
	return out, nil
}

// UpdateItem merges the patch into the matching item, recomputing
// Total when Amount or Rate change. Unknown ids are a no-op.
func (s *MemoryStore) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Status != nil {
			item.Status = *patch.Status
		}
		if patch.Date != nil {
			item.Date = *patch.Date
		}
		if patch.Amount != nil || patch.Rate != nil {
			if patch.Amount != nil {
				item.Amount = *patch.Amount
			}
			if patch.Rate != nil {
				item.Rate = *patch.Rate
			}
			item.Total = calculator.Total(item.Amount, item.Rate)
		}
		return nil
	}
	return nil
}

// DeleteItem removes the matching item. Unknown ids are a no-op.
func (s *MemoryStore) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// DeleteItemsByCustomer removes every item owned by customerID.
func (s *MemoryStore) DeleteItemsByCustomer(ctx context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.CustomerID != customerID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}
