package summary

// ScanStatus defines the possible outcomes of a bulk run.
type ScanStatus string

const (
	ScanStatusStarted             ScanStatus = "STARTED"
	ScanStatusCompleted           ScanStatus = "COMPLETED"
	ScanStatusCompletedWithIssues ScanStatus = "COMPLETED_WITH_ISSUES"
	ScanStatusFailed              ScanStatus = "FAILED"
	ScanStatusInterrupted         ScanStatus = "INTERRUPTED"
	ScanStatusNoTargets           ScanStatus = "NO_TARGETS"
	ScanStatusUnknown             ScanStatus = "UNKNOWN"
)

// IsSuccess checks if scan status indicates every item got a verdict
func (ss ScanStatus) IsSuccess() bool {
	return ss == ScanStatusCompleted
}

// IsFailure checks if scan status indicates the run produced no items
func (ss ScanStatus) IsFailure() bool {
	return ss == ScanStatusFailed || ss == ScanStatusInterrupted
}

// IsInProgress checks if scan status indicates in progress
func (ss ScanStatus) IsInProgress() bool {
	return ss == ScanStatusStarted
}
