package datastore

import (
	"encoding/json"
	"time"

	"github.com/aleister1102/phishscan/internal/models"
)

// ParquetScanRecord is one archived verdict. Features are stored as a JSON
// object string so their order survives the round trip.
type ParquetScanRecord struct {
	URL          string   `parquet:"url"`
	IsPhishing   bool     `parquet:"is_phishing"`
	Confidence   float64  `parquet:"confidence"`
	FeaturesJSON *string  `parquet:"features_json,optional"`
	ItemError    *string  `parquet:"item_error,optional"`
	CheckedAt    *int64   `parquet:"checked_at,optional"` // Unix milliseconds
	RunID        *string  `parquet:"run_id,optional"`
	Source       *string  `parquet:"source,optional"`
	ArchivedAt   int64    `parquet:"archived_at"`
	FeatureNames []string `parquet:"feature_names,list"`
}

// TimeToUnixMilliOptional returns nil for the zero time.
func TimeToUnixMilliOptional(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	millis := t.UnixMilli()
	return &millis
}

// ToBulkScanItem converts an archived record back into a bulk item.
func (r *ParquetScanRecord) ToBulkScanItem() (models.BulkScanItem, error) {
	item := models.BulkScanItem{
		URL:        r.URL,
		IsPhishing: r.IsPhishing,
		Confidence: r.Confidence,
	}
	if r.ItemError != nil {
		item.Error = *r.ItemError
	}
	if r.CheckedAt != nil {
		item.CheckedAt = time.UnixMilli(*r.CheckedAt)
	}
	if r.FeaturesJSON != nil && *r.FeaturesJSON != "" {
		if err := json.Unmarshal([]byte(*r.FeaturesJSON), &item.Features); err != nil {
			return models.BulkScanItem{}, err
		}
	}
	return item, nil
}
