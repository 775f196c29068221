package models

// FilterSpec is the set of optional constraints applied to narrow the
// item list for display. It is view state, never persisted. A zero
// FilterSpec matches every item.
type FilterSpec struct {
	// Query is a case-insensitive substring match on the item name.
	Query string

	// Status, when non-empty, requires an exact status match.
	Status ItemStatus

	// StartDate and EndDate, when non-empty, bound Item.Date
	// inclusively (DateLayout format).
	StartDate string
	EndDate   string

	// MinAmount and MaxAmount, when non-nil, bound Item.Amount
	// inclusively.
	MinAmount *float64
	MaxAmount *float64
}

// IsZero reports whether the spec imposes no constraints.
func (f FilterSpec) IsZero() bool {
	return f.Query == "" && f.Status == "" &&
		f.StartDate == "" && f.EndDate == "" &&
		f.MinAmount == nil && f.MaxAmount == nil
}
