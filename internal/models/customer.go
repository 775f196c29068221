package models

// Customer represents a billable customer.
type Customer struct {
	// ID is the unique identifier for the customer (opaque string,
	// immutable after creation).
	ID string

	// Name is the customer's display name. Required.
	Name string

	// Phone is the customer's contact number. Required.
	Phone string

	// Address is an optional mailing address.
	Address string
}

// CustomerPatch describes a partial update to a Customer.
// Nil fields are left unchanged. The ID is never patchable.
type CustomerPatch struct {
	Name    *string
	Phone   *string
	Address *string
}
