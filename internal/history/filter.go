// Package history filters and orders the scan history returned by the backend.
package history

import (
	"sort"
	"strings"

	"github.com/aleister1102/phishscan/internal/models"
)

// Apply narrows history by search term, category and date range, then orders
// it by q.SortKey. The input slice is never modified. Items that compare equal
// keep their relative order.
func Apply(history []models.ScanResult, q models.HistoryQuery) []models.ScanResult {
	out := make([]models.ScanResult, 0, len(history))
	needle := strings.ToLower(q.SearchTerm)

	for _, item := range history {
		if needle != "" && !strings.Contains(strings.ToLower(item.URL), needle) {
			continue
		}
		if !matchesCategory(item, q.Category) {
			continue
		}
		if !withinRange(item, q) {
			continue
		}
		out = append(out, item)
	}

	sortResults(out, q.SortKey)
	return out
}

func matchesCategory(item models.ScanResult, category models.Category) bool {
	switch category {
	case models.CategorySafe:
		return !item.IsPhishing
	case models.CategoryPhishing:
		return item.IsPhishing
	default:
		return true
	}
}

// The upper bound covers the whole calendar day of DateTo.
func withinRange(item models.ScanResult, q models.HistoryQuery) bool {
	if q.DateFrom != nil && item.CheckedAt.Before(*q.DateFrom) {
		return false
	}
	if q.DateTo != nil && item.CheckedAt.After(models.EndOfDay(*q.DateTo)) {
		return false
	}
	return true
}

func sortResults(items []models.ScanResult, key models.SortKey) {
	var less func(a, b models.ScanResult) bool
	switch key {
	case models.SortDateAsc:
		less = func(a, b models.ScanResult) bool { return a.CheckedAt.Before(b.CheckedAt) }
	case models.SortConfidenceDesc:
		less = func(a, b models.ScanResult) bool { return a.Confidence > b.Confidence }
	case models.SortConfidenceAsc:
		less = func(a, b models.ScanResult) bool { return a.Confidence < b.Confidence }
	default:
		less = func(a, b models.ScanResult) bool { return a.CheckedAt.After(b.CheckedAt) }
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
