package scanner

import (
	"errors"

	"github.com/aleister1102/phishscan/internal/models"
)

// ErrScanInProgress is returned when a scan is started while another is loading.
var ErrScanInProgress = errors.New("a scan is already in progress")

// Status is the controller's current phase.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is exactly one of idle, loading, success(Result) or error(Message).
type State struct {
	Status  Status
	Target  models.NormalizedURL
	Result  *models.ScanResult
	Message string
	Err     error
}
