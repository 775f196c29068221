// Package service wires the billing stores, selection state, and
// derived views behind the API the presentation layer calls.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mmynk/billman/internal/calculator"
	"github.com/mmynk/billman/internal/models"
	"github.com/mmynk/billman/internal/storage"
)

var (
	// ErrValidation marks a rejected operation; no state was mutated.
	ErrValidation = errors.New("validation failed")

	// ErrNoActiveCustomer is returned when an item operation needs a
	// selected customer and none is active. The stores are untouched.
	ErrNoActiveCustomer = errors.New("no active customer selected")
)

// BillingService owns the injected store plus the selection state:
// which customer is active (scoping the item view and item creation)
// and the current item filter.
//
// The service assumes the spec's single-threaded call model: one
// logical operation at a time, reads observing the latest completed
// mutation.
type BillingService struct {
	store  storage.Store
	active string
	filter models.FilterSpec
}

// NewBillingService creates a BillingService over the given store
// with no active customer and an empty filter.
func NewBillingService(store storage.Store) *BillingService {
	return &BillingService{store: store}
}

// CreateCustomer validates and appends a new customer. If no customer
// is currently active, the new one becomes the active selection.
func (s *BillingService) CreateCustomer(ctx context.Context, name, phone, address string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: customer phone is required", ErrValidation)
	}

	customer := &models.Customer{
		Name:    name,
		Phone:   phone,
		Address: address,
	}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	if s.active == "" {
		s.active = customer.ID
	}

	slog.Info("Customer created", "customer_id", customer.ID, "name", customer.Name)
	return customer, nil
}

// UpdateCustomer merges the patch into the matching customer.
// Blank required fields in the patch are rejected; unknown ids are a
// silent no-op.
func (s *BillingService) UpdateCustomer(ctx context.Context, id string, patch models.CustomerPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if patch.Phone != nil && strings.TrimSpace(*patch.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrValidation)
	}
	return s.store.UpdateCustomer(ctx, id, patch)
}

// DeleteCustomer removes the customer, cascades to its items, and
// clears the selection if the deleted customer was active. Unknown
// ids are a silent no-op.
func (s *BillingService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if err := s.store.DeleteItemsByCustomer(ctx, id); err != nil {
		return fmt.Errorf("failed to cascade items: %w", err)
	}
	if s.active == id {
		s.active = ""
	}
	slog.Info("Customer deleted", "customer_id", id)
	return nil
}

// Customers returns all customers in insertion order.
func (s *BillingService) Customers(ctx context.Context) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx)
}

// SearchCustomers matches name or phone case-insensitively; an empty
// query returns everyone.
func (s *BillingService) SearchCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	return s.store.SearchCustomers(ctx, query)
}

// SelectCustomer replaces the active selection. An empty id clears
// it; an unknown id is a silent no-op.
func (s *BillingService) SelectCustomer(ctx context.Context, id string) error {
	if id == "" {
		s.active = ""
		return nil
	}
	if _, err := s.store.GetCustomer(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	s.active = id
	return nil
}

// ActiveCustomer resolves the current selection. It returns nil with
// no error when nothing is selected.
func (s *BillingService) ActiveCustomer(ctx context.Context) (*models.Customer, error) {
	if s.active == "" {
		return nil, nil
	}
	customer, err := s.store.GetCustomer(ctx, s.active)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return customer, err
}

// CreateItem creates an item scoped to the active customer.
// Returns ErrNoActiveCustomer when nothing is selected.
func (s *BillingService) CreateItem(ctx context.Context, draft models.ItemDraft) (*models.Item, error) {
	if s.active == "" {
		return nil, ErrNoActiveCustomer
	}
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if err := validAmount(draft.Amount); err != nil {
		return nil, err
	}
	if err := validRate(draft.Rate); err != nil {
		return nil, err
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, draft.Status)
	}

	item := &models.Item{
		CustomerID: s.active,
		Name:       draft.Name,
		Amount:     draft.Amount,
		Rate:       draft.Rate,
		Status:     draft.Status,
		Date:       draft.Date,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	slog.Info("Item created",
		"item_id", item.ID,
		"customer_id", item.CustomerID,
		"total", item.Total,
	)
	return item, nil
}

// UpdateItem merges the patch into the matching item; the store
// recomputes the total when amount or rate change. Unknown ids are a
// silent no-op.
func (s *BillingService) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if patch.Amount != nil {
		if err := validAmount(*patch.Amount); err != nil {
			return err
		}
	}
	if patch.Rate != nil {
		if err := validRate(*patch.Rate); err != nil {
			return err
		}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *patch.Status)
	}
	return s.store.UpdateItem(ctx, id, patch)
}

// DeleteItem removes the matching item; unknown ids are a no-op.
func (s *BillingService) DeleteItem(ctx context.Context, id string) error {
	return s.store.DeleteItem(ctx, id)
}

// SetFilter replaces the current item filter.
func (s *BillingService) SetFilter(spec models.FilterSpec) {
	s.filter = spec
}

// Filter returns the current item filter.
func (s *BillingService) Filter() models.FilterSpec {
	return s.filter
}

// VisibleItems returns the active customer's items narrowed by the
// current filter, preserving store order. With no active customer the
// result is empty.
func (s *BillingService) VisibleItems(ctx context.Context) ([]models.Item, error) {
	if s.active == "" {
		return []models.Item{}, nil
	}
	items, err := s.store.ListItemsByCustomer(ctx, s.active)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return calculator.Filter(items, s.filter), nil
}

// Dashboard recomputes the aggregate stats over all customers and
// items, regardless of selection or filter.
func (s *BillingService) Dashboard(ctx context.Context) (calculator.Stats, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return calculator.Stats{}, fmt.Errorf("failed to list customers: %w", err)
	}
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return calculator.Stats{}, fmt.Errorf("failed to list items: %w", err)
	}
	return calculator.Aggregate(customers, items), nil
}

func validAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: amount must be a non-negative number", ErrValidation)
	}
	return nil
}

func validRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return fmt.Errorf("%w: rate must be a non-negative number", ErrValidation)
	}
	return nil
}
