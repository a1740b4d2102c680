package models

import (
	"encoding/json"
	"time"
)

// Verdict labels used in listings and exports.
const (
	LabelPhishing = "Phishing"
	LabelSafe     = "Safe"
	LabelError    = "Error"
)

// ScanResult is the backend's classification of a single address.
type ScanResult struct {
	URL        string     `json:"url"`
	IsPhishing bool       `json:"is_phishing"`
	Confidence float64    `json:"confidence"`
	Features   FeatureMap `json:"features"`
	CheckedAt  time.Time  `json:"checked_at"`
}

// Label returns "Phishing" or "Safe".
func (r ScanResult) Label() string {
	if r.IsPhishing {
		return LabelPhishing
	}
	return LabelSafe
}

// ConfidencePercent returns the confidence scaled to 0-100.
func (r ScanResult) ConfidencePercent() float64 {
	return r.Confidence * 100
}

type scanResultJSON struct {
	URL        string     `json:"url"`
	IsPhishing bool       `json:"is_phishing"`
	Confidence float64    `json:"confidence"`
	Features   FeatureMap `json:"features"`
	CheckedAt  string     `json:"checked_at,omitempty"`
}

// MarshalJSON writes checked_at as RFC 3339 and omits it when unset.
func (r ScanResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(scanResultJSON{
		URL:        r.URL,
		IsPhishing: r.IsPhishing,
		Confidence: r.Confidence,
		Features:   r.Features,
		CheckedAt:  FormatTimeOptional(r.CheckedAt, time.RFC3339Nano),
	})
}

// UnmarshalJSON accepts both RFC 3339 and the backend's zone-less ISO timestamps.
func (r *ScanResult) UnmarshalJSON(data []byte) error {
	var raw scanResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	checkedAt, err := ParseTimestamp(raw.CheckedAt)
	if err != nil {
		return err
	}

	*r = ScanResult{
		URL:        raw.URL,
		IsPhishing: raw.IsPhishing,
		Confidence: raw.Confidence,
		Features:   raw.Features,
		CheckedAt:  checkedAt,
	}
	return nil
}

// BulkScanItem is one slot of a bulk scan. When Error is set the
// classification fields carry no meaning.
type BulkScanItem struct {
	URL        string     `json:"url"`
	IsPhishing bool       `json:"is_phishing,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
	Features   FeatureMap `json:"features,omitempty"`
	CheckedAt  time.Time  `json:"-"`
	Error      string     `json:"error,omitempty"`
}

// HasVerdict reports whether the backend classified this item.
func (i BulkScanItem) HasVerdict() bool {
	return i.Error == ""
}

// Label returns "Phishing", "Safe" or "Error".
func (i BulkScanItem) Label() string {
	if !i.HasVerdict() {
		return LabelError
	}
	if i.IsPhishing {
		return LabelPhishing
	}
	return LabelSafe
}

// Result converts a classified item into a ScanResult.
func (i BulkScanItem) Result() (ScanResult, bool) {
	if !i.HasVerdict() {
		return ScanResult{}, false
	}
	return ScanResult{
		URL:        i.URL,
		IsPhishing: i.IsPhishing,
		Confidence: i.Confidence,
		Features:   i.Features,
		CheckedAt:  i.CheckedAt,
	}, true
}

// ItemFromResult wraps a ScanResult as a classified bulk item.
func ItemFromResult(r ScanResult) BulkScanItem {
	return BulkScanItem{
		URL:        r.URL,
		IsPhishing: r.IsPhishing,
		Confidence: r.Confidence,
		Features:   r.Features,
		CheckedAt:  r.CheckedAt,
	}
}

// ItemsFromResults wraps every result as a bulk item.
func ItemsFromResults(results []ScanResult) []BulkScanItem {
	items := make([]BulkScanItem, 0, len(results))
	for _, r := range results {
		items = append(items, ItemFromResult(r))
	}
	return items
}

// BulkScanResponse is the body of a successful bulk request.
type BulkScanResponse struct {
	Results    []BulkScanItem `json:"results"`
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
}

// NormalizedURL is an absolute https address whose host contains a dot.
// Only the URL normalizer should construct one.
type NormalizedURL string

func (u NormalizedURL) String() string {
	return string(u)
}
