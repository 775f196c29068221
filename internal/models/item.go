package models

// ItemStatus is the payment status of an item.
type ItemStatus string

const (
	// StatusPending marks an item that has not been paid yet.
	StatusPending ItemStatus = "Pending"
	// StatusPaid marks an item that has been settled.
	StatusPaid ItemStatus = "Paid"
)

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// DateLayout is the calendar-date format used on items and filters.
const DateLayout = "2006-01-02"

// Item represents a single billable line item (an invoice entry).
// Every item belongs to exactly one customer.
type Item struct {
	// ID is the unique identifier for the item (opaque string,
	// immutable after creation).
	ID string

	// CustomerID references the owning customer. Immutable.
	CustomerID string

	// Name is the line item description. Required.
	Name string

	// Amount is the base price or quantity. Non-negative.
	Amount float64

	// Rate is an optional percentage surcharge (e.g. tax).
	// Zero means no surcharge.
	Rate float64

	// Total is the derived amount: Amount + Amount*(Rate/100).
	// It is recomputed and stored whenever Amount or Rate change,
	// never lazily on read.
	Total float64

	// Status is the payment status, Pending by default.
	Status ItemStatus

	// Date is the item's calendar date in DateLayout format.
	// Defaults to the creation date.
	Date string
}

// ItemDraft carries the caller-supplied fields for a new item.
// Status and Date fall back to StatusPending and today when empty.
type ItemDraft struct {
	Name   string
	Amount float64
	Rate   float64
	Status ItemStatus
	Date   string
}

// ItemPatch describes a partial update to an Item.
// Nil fields are left unchanged. ID and CustomerID are never patchable.
type ItemPatch struct {
	Name   *string
	Amount *float64
	Rate   *float64
	Status *ItemStatus
	Date   *string
}
