package datastore

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.BulkScanItem {
	var features models.FeatureMap
	features.Set("url_length", int64(19))
	features.Set("has_ip", false)
	features.Set("tld", "com")

	return []models.BulkScanItem{
		{
			URL:        "https://example.com",
			Confidence: 0.92,
			Features:   features,
			CheckedAt:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			URL:        "https://bad-site.net",
			IsPhishing: true,
			Confidence: 0.97,
			CheckedAt:  time.Date(2024, 1, 15, 10, 30, 1, 0, time.UTC),
		},
		{URL: "https://broken", Error: "Invalid URL format"},
	}
}

func TestNewParquetWriter(t *testing.T) {
	writer, err := NewParquetWriter(DefaultParquetWriterConfig(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "zstd", writer.writerConfig.CompressionType)

	_, err = NewParquetWriter(ParquetWriterConfig{CompressionType: "lz77"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestParquetWriterConfigFromExport(t *testing.T) {
	wc := ParquetWriterConfigFromExport(config.ExportConfig{OutputDir: "out", ParquetCompression: "GZIP"})
	assert.Equal(t, ParquetWriterConfig{CompressionType: "gzip", OutputDir: "out"}, wc)

	assert.Equal(t, DefaultParquetWriterConfig(), ParquetWriterConfigFromExport(config.ExportConfig{}))
}

func TestParquetWriter_RoundTrip(t *testing.T) {
	for _, codec := range []string{"zstd", "snappy", "gzip", "none"} {
		t.Run(codec, func(t *testing.T) {
			writer, err := NewParquetWriter(ParquetWriterConfig{CompressionType: codec}, zerolog.Nop())
			require.NoError(t, err)

			var buf bytes.Buffer
			n, err := writer.WriteTo(context.Background(), &buf, WriteRequest{Items: sampleItems(), RunID: "run-1"})
			require.NoError(t, err)
			assert.Equal(t, 3, n)

			items, err := NewParquetReader(zerolog.Nop()).Read(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			require.Len(t, items, 3)

			assert.Equal(t, "https://example.com", items[0].URL)
			assert.False(t, items[0].IsPhishing)
			assert.InDelta(t, 0.92, items[0].Confidence, 1e-9)
			assert.Equal(t, []string{"url_length", "has_ip", "tld"}, items[0].Features.Names())
			assert.True(t, items[0].CheckedAt.Equal(sampleItems()[0].CheckedAt))

			assert.True(t, items[1].IsPhishing)
			assert.Empty(t, items[1].Features)

			assert.Equal(t, "Invalid URL format", items[2].Error)
			assert.False(t, items[2].HasVerdict())
			assert.True(t, items[2].CheckedAt.IsZero())
		})
	}
}

func TestParquetWriter_WriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	writer, err := NewParquetWriterBuilder(zerolog.Nop()).
		WithExportConfig(config.ExportConfig{OutputDir: dir, ParquetCompression: "zstd"}).
		Build()
	require.NoError(t, err)

	result, err := writer.Write(context.Background(), "phishscan-bulk-1700000000000.parquet", WriteRequest{Items: sampleItems()})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "phishscan-bulk-1700000000000.parquet"), result.FilePath)
	assert.Equal(t, 3, result.RecordsWritten)
	assert.Positive(t, result.FileSize)

	items, err := NewParquetReader(zerolog.Nop()).ReadFile(result.FilePath)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestParquetWriter_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewParquetWriter(ParquetWriterConfig{CompressionType: "zstd", OutputDir: dir}, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = writer.Write(ctx, "x.parquet", WriteRequest{Items: sampleItems()})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "x.parquet"))
}

func TestParquetReader_MissingFile(t *testing.T) {
	_, err := NewParquetReader(zerolog.Nop()).ReadFile(filepath.Join(t.TempDir(), "missing.parquet"))
	assert.Error(t, err)
}
