package summary

import "github.com/aleister1102/phishscan/internal/common"

// ScanSummaryValidator checks that a summary is internally consistent
type ScanSummaryValidator struct{}

// NewScanSummaryValidator creates a new validator
func NewScanSummaryValidator() *ScanSummaryValidator {
	return &ScanSummaryValidator{}
}

// ValidateSummary validates the scan summary data
func (ssv *ScanSummaryValidator) ValidateSummary(summaryData ScanSummaryData) error {
	if summaryData.Status == "" {
		return common.NewValidationError("status", summaryData.Status, "status is required")
	}

	stats := summaryData.Stats
	if stats.Total < 0 || stats.Phishing < 0 || stats.Safe < 0 || stats.Errors < 0 {
		return common.NewValidationError("stats", stats, "counts cannot be negative")
	}

	if stats.Phishing+stats.Safe+stats.Errors != stats.Total {
		return common.NewValidationError("stats", stats, "phishing, safe and error counts must add up to total")
	}

	if summaryData.ScanDuration < 0 {
		return common.NewValidationError("scan_duration", summaryData.ScanDuration, "scan duration cannot be negative")
	}

	if summaryData.Status == ScanStatusFailed && stats.Total != 0 {
		return common.NewValidationError("stats", stats, "a failed run carries no items")
	}

	return nil
}
