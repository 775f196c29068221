package calculator

import "github.com/mmynk/billman/internal/models"

// Stats is the dashboard summary derived from the current collections.
type Stats struct {
	// TotalCustomers is the number of customers.
	TotalCustomers int

	// TotalPaid is the sum of item totals with status Paid.
	TotalPaid float64

	// TotalDue is the sum of item totals with any other status.
	TotalDue float64

	// PendingBalance duplicates TotalDue. It is kept as a distinct
	// field for presentation until a genuinely different pending
	// computation (e.g. partial payments) exists.
	PendingBalance float64
}

// Aggregate recomputes dashboard stats from the current customers and
// items. It is pure and cheap at the expected scale (tens to low
// thousands of records), so no caching or incremental maintenance.
//
// An item whose Total was never computed (zero while Amount is not)
// counts by its Amount instead.
func Aggregate(customers []models.Customer, items []models.Item) Stats {
	stats := Stats{TotalCustomers: len(customers)}

	for _, item := range items {
		value := item.Total
		if value == 0 {
			value = item.Amount
		}
		if item.Status == models.StatusPaid {
			stats.TotalPaid += value
		} else {
			stats.TotalDue += value
		}
	}

	stats.PendingBalance = stats.TotalDue
	return stats
}
