package reporter

import (
	"fmt"
	"time"

	"github.com/aleister1102/phishscan/internal/config"
)

// Options controls how timestamps are rendered in exports.
type Options struct {
	// TimeLayout defaults to config.DefaultExportTimeLayout.
	TimeLayout string
	// Location defaults to time.Local.
	Location *time.Location
	// GeneratedAt is stamped into preambles and footers; defaults to time.Now().
	GeneratedAt time.Time
}

// OptionsFromConfig takes the timestamp layout from the export section.
func OptionsFromConfig(cfg config.ExportConfig) Options {
	return Options{TimeLayout: cfg.TimeLayout}
}

func (o Options) withDefaults() Options {
	if o.TimeLayout == "" {
		o.TimeLayout = config.DefaultExportTimeLayout
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	return o
}

// formatTime renders t in the configured zone, or "" when t is unset.
func (o Options) formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(o.Location).Format(o.TimeLayout)
}

// FormatConfidence renders a 0-1 confidence as a percentage with one decimal.
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.1f%%", confidence*100)
}
