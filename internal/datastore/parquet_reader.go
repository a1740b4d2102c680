package datastore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ParquetReader handles reading archived scan results.
type ParquetReader struct {
	logger zerolog.Logger
}

// NewParquetReader creates a new ParquetReader.
func NewParquetReader(logger zerolog.Logger) *ParquetReader {
	return &ParquetReader{
		logger: logger.With().Str("component", "ParquetReader").Logger(),
	}
}

// ReadFile loads every item archived in path.
func (pr *ParquetReader) ReadFile(path string) ([]models.BulkScanItem, error) {
	file, err := os.Open(path)
	if err != nil {
		pr.logger.Error().Err(err).Str("file", path).Msg("Failed to open parquet file")
		return nil, fmt.Errorf("failed to open parquet file %s: %w", path, err)
	}
	defer file.Close()

	items, err := pr.Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	pr.logger.Debug().Int("record_count", len(items)).Str("file", path).Msg("Read records from Parquet file")
	return items, nil
}

// Read decodes every record in r in file order.
func (pr *ParquetReader) Read(r io.ReaderAt) ([]models.BulkScanItem, error) {
	reader := parquet.NewReader(r)
	defer reader.Close()

	var items []models.BulkScanItem
	for {
		row := ParquetScanRecord{}
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		item, err := row.ToBulkScanItem()
		if err != nil {
			pr.logger.Warn().Err(err).Str("url", row.URL).Msg("Archived features are not valid JSON, dropping them")
			item = models.BulkScanItem{URL: row.URL, IsPhishing: row.IsPhishing, Confidence: row.Confidence, Error: models.StringValue(row.ItemError)}
		}
		items = append(items, item)
	}
	return items, nil
}
