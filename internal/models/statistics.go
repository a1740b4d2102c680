package models

// ActivityPoint is one day of the recent-activity series.
type ActivityPoint struct {
	Date  string `json:"date"`
	Scans int    `json:"scans"`
}

// Statistics aggregates the user's scan history. AverageConfidence is a percentage.
type Statistics struct {
	TotalScans        int             `json:"total_scans"`
	SafeCount         int             `json:"safe_count"`
	PhishingCount     int             `json:"phishing_count"`
	AverageConfidence float64         `json:"average_confidence"`
	RecentActivity    []ActivityPoint `json:"recent_activity"`
	LatestScans       []ScanResult    `json:"latest_scans"`
}

// PhishingRate returns the share of phishing verdicts in percent.
func (s Statistics) PhishingRate() float64 {
	if s.TotalScans == 0 {
		return 0
	}
	return float64(s.PhishingCount) * 100 / float64(s.TotalScans)
}

// HealthStatus is the body of the backend health probe.
type HealthStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Healthy reports whether the backend can classify.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}
