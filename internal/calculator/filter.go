package calculator

import (
	"strings"
	"time"

	"github.com/mmynk/billman/internal/models"
)

// Filter returns the items matching every constraint present in spec,
// in their original relative order. Absent constraints (empty strings,
// nil bounds) impose nothing; an empty spec returns all items.
//
// Constraints are applied in order: status equality, case-insensitive
// substring match on name, inclusive date range, inclusive amount
// range. The input slice is never modified.
func Filter(items []models.Item, spec models.FilterSpec) []models.Item {
	out := make([]models.Item, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(spec.Query))

	for _, item := range items {
		if spec.Status != "" && item.Status != spec.Status {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		if !inDateRange(item.Date, spec.StartDate, spec.EndDate) {
			continue
		}
		if spec.MinAmount != nil && item.Amount < *spec.MinAmount {
			continue
		}
		if spec.MaxAmount != nil && item.Amount > *spec.MaxAmount {
			continue
		}
		out = append(out, item)
	}

	return out
}

// inDateRange checks date against the inclusive [start, end] bounds.
// A bound that is empty, or any date that fails to parse, disables
// that comparison and lets the item through.
func inDateRange(date, start, end string) bool {
	d, ok := parseDate(date)
	if !ok {
		return true
	}
	if s, ok := parseDate(start); ok && d.Before(s) {
		return false
	}
	if e, ok := parseDate(end); ok && d.After(e) {
		return false
	}
	return true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
