package progress

import "time"

// ProgressType names what is being tracked
type ProgressType string

const (
	ProgressTypeBulk ProgressType = "BULK"
)

// ProgressStatus is the lifecycle phase of a progress indicator
type ProgressStatus string

const (
	ProgressStatusIdle      ProgressStatus = "IDLE"
	ProgressStatusRunning   ProgressStatus = "RUNNING"
	ProgressStatusComplete  ProgressStatus = "COMPLETE"
	ProgressStatusError     ProgressStatus = "ERROR"
	ProgressStatusCancelled ProgressStatus = "CANCELLED"
)

// BatchProgressInfo tracks batches and addresses of a bulk run
type BatchProgressInfo struct {
	CurrentBatch  int `json:"current_batch"`
	TotalBatches  int `json:"total_batches"`
	TotalURLs     int `json:"total_urls"`
	ProcessedURLs int `json:"processed_urls"`
}

// ProgressInfo is a snapshot of a progress indicator. Current and Total count
// completed and planned batches.
type ProgressInfo struct {
	Type           ProgressType       `json:"type"`
	Status         ProgressStatus     `json:"status"`
	Current        int64              `json:"current"`
	Total          int64              `json:"total"`
	Stage          string             `json:"stage"`
	Message        string             `json:"message"`
	StartTime      time.Time          `json:"start_time"`
	LastUpdateTime time.Time          `json:"last_update_time"`
	EstimatedETA   time.Duration      `json:"estimated_eta"`
	BatchInfo      *BatchProgressInfo `json:"batch_info,omitempty"`
}

// UpdateETA estimates the remaining time from the rate observed so far
func (pi *ProgressInfo) UpdateETA() {
	if pi.Total <= 0 || pi.Current <= 0 || pi.Status != ProgressStatusRunning {
		pi.EstimatedETA = 0
		return
	}

	elapsed := time.Since(pi.StartTime)
	if elapsed <= 0 {
		pi.EstimatedETA = 0
		return
	}

	rate := float64(pi.Current) / elapsed.Seconds()
	if rate <= 0 {
		pi.EstimatedETA = 0
		return
	}

	remaining := float64(pi.Total - pi.Current)
	if remaining <= 0 {
		pi.EstimatedETA = 0
		return
	}

	pi.EstimatedETA = time.Duration(remaining / rate * float64(time.Second))
}

// GetPercentage returns completion in percent, capped at 100
func (pi *ProgressInfo) GetPercentage() float64 {
	if pi.Total <= 0 {
		return 0.0
	}
	percentage := float64(pi.Current) * 100 / float64(pi.Total)
	if percentage > 100 {
		return 100.0
	}
	return percentage
}
