package summary

import (
	"fmt"
	"time"
)

// VerdictStats tallies a bulk result list. Errored items count toward
// neither Phishing nor Safe.
type VerdictStats struct {
	Total    int `json:"total"`
	Phishing int `json:"phishing"`
	Safe     int `json:"safe"`
	Errors   int `json:"errors"`
}

// Successful returns the number of items that got a verdict.
func (v VerdictStats) Successful() int {
	return v.Phishing + v.Safe
}

// ScanSummaryData describes one bulk run.
type ScanSummaryData struct {
	RunID         string        `json:"run_id"`
	Source        string        `json:"source"`
	Stats         VerdictStats  `json:"stats"`
	Batches       int           `json:"batches"`
	ScanDuration  time.Duration `json:"scan_duration"`
	Status        ScanStatus    `json:"status"`
	ErrorMessages []string      `json:"error_messages,omitempty"`
}

// GetDefaultScanSummaryData initializes a ScanSummaryData with unknown status.
func GetDefaultScanSummaryData() ScanSummaryData {
	return ScanSummaryData{
		Source: "Unknown",
		Status: ScanStatusUnknown,
	}
}

// String renders a one-line tally for terminal output.
func (s ScanSummaryData) String() string {
	return fmt.Sprintf("%d scanned: %d phishing, %d safe, %d errors (%s)",
		s.Stats.Total, s.Stats.Phishing, s.Stats.Safe, s.Stats.Errors, s.Status)
}
