// Package storage provides abstractions over the billing collections.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billman/internal/models"
)

// ErrNotFound is returned by lookups for an unknown identifier.
// Mutating operations never return it: updates and deletes of unknown
// ids are silent no-ops, since callers expect idempotent deletes.
var ErrNotFound = errors.New("record not found")

// Store defines the customer and item collection operations.
// This abstraction keeps the service layer independent of how the
// collections are held; the canonical implementation is the in-memory
// one in the memory subpackage.
//
// Both collections preserve insertion order: list and search results
// come back in the order records were created.
type Store interface {
	// CreateCustomer appends a new customer. An empty ID is assigned
	// a fresh identifier; the populated record is reflected back
	// through the pointer.
	CreateCustomer(ctx context.Context, customer *models.Customer) error

	// GetCustomer retrieves a customer by ID.
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)

	// ListCustomers returns all customers in insertion order.
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	// SearchCustomers returns customers whose name or phone contains
	// the query, case-insensitively. An empty query returns all.
	SearchCustomers(ctx context.Context, query string) ([]models.Customer, error)

	// UpdateCustomer merges the patch into the customer with the
	// given ID. Unknown ids are a no-op. The ID never changes.
	UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) error

	// DeleteCustomer removes the customer with the given ID.
	// Unknown ids are a no-op. Cascading the customer's items is the
	// caller's responsibility via DeleteItemsByCustomer.
	DeleteCustomer(ctx context.Context, id string) error

	// CreateItem appends a new item. An empty ID is assigned a fresh
	// identifier, an empty status defaults to Pending, an empty date
	// defaults to today, and Total is computed from Amount and Rate
	// before storing.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by ID.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// ListItems returns all items in insertion order.
	ListItems(ctx context.Context) ([]models.Item, error)

	// ListItemsByCustomer returns the items owned by one customer,
	// in insertion order.
	ListItemsByCustomer(ctx context.Context, customerID string) ([]models.Item, error)

	// UpdateItem merges the patch into the item with the given ID.
	// Unknown ids are a no-op. When the patch touches Amount or
	// Rate, Total is recomputed and overwritten. ID and CustomerID
	// never change.
	UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error

	// DeleteItem removes the item with the given ID.
	// Unknown ids are a no-op.
	DeleteItem(ctx context.Context, id string) error

	// DeleteItemsByCustomer removes every item owned by the given
	// customer. This is the cascade entry point used when a customer
	// is deleted.
	DeleteItemsByCustomer(ctx context.Context, customerID string) error

	// Close releases any resources held by the store.
	Close() error
}
