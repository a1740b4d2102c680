package models

import "time"

// Category narrows a history listing by verdict.
type Category string

const (
	CategoryAll      Category = "all"
	CategorySafe     Category = "safe"
	CategoryPhishing Category = "phishing"
)

// SortKey orders a history listing.
type SortKey string

const (
	SortDateDesc       SortKey = "date-desc"
	SortDateAsc        SortKey = "date-asc"
	SortConfidenceDesc SortKey = "confidence-desc"
	SortConfidenceAsc  SortKey = "confidence-asc"
)

// HistoryQuery describes how to filter and order a history listing.
// Zero values mean "all" and "date-desc"; nil dates are unbounded.
type HistoryQuery struct {
	SearchTerm string     `json:"search_term,omitempty"`
	Category   Category   `json:"category,omitempty" validate:"omitempty,oneof=all safe phishing"`
	SortKey    SortKey    `json:"sort_key,omitempty" validate:"omitempty,oneof=date-desc date-asc confidence-desc confidence-asc"`
	DateFrom   *time.Time `json:"date_from,omitempty"`
	DateTo     *time.Time `json:"date_to,omitempty"`
}
