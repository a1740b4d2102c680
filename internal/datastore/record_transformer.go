package datastore

import (
	"encoding/json"
	"time"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/rs/zerolog"
)

// RecordTransformer handles transformation of records
type RecordTransformer struct {
	logger zerolog.Logger
}

// NewRecordTransformer creates a new RecordTransformer
func NewRecordTransformer(logger zerolog.Logger) *RecordTransformer {
	return &RecordTransformer{
		logger: logger.With().Str("component", "RecordTransformer").Logger(),
	}
}

// TransformToParquetRecord converts a bulk item into its archived form.
// Items without a verdict keep only their address and error.
func (rt *RecordTransformer) TransformToParquetRecord(item models.BulkScanItem, runID, source string, archivedAt time.Time) ParquetScanRecord {
	record := ParquetScanRecord{
		URL:        item.URL,
		ItemError:  StringPtrOrNil(item.Error),
		CheckedAt:  TimeToUnixMilliOptional(item.CheckedAt),
		RunID:      StringPtrOrNil(runID),
		Source:     StringPtrOrNil(source),
		ArchivedAt: archivedAt.UnixMilli(),
	}
	if !item.HasVerdict() {
		return record
	}

	record.IsPhishing = item.IsPhishing
	record.Confidence = item.Confidence
	record.FeaturesJSON = rt.marshalFeatures(item.Features, item.URL)
	record.FeatureNames = item.Features.Names()
	return record
}

// marshalFeatures converts the feature map to a JSON string pointer
func (rt *RecordTransformer) marshalFeatures(features models.FeatureMap, url string) *string {
	if len(features) == 0 {
		return nil
	}

	jsonData, err := json.Marshal(features)
	if err != nil {
		rt.logger.Error().Err(err).Str("url", url).Msg("Failed to marshal features")
		return nil
	}

	strData := string(jsonData)
	return &strData
}
