package reporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/datastore"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()
	cfg := config.NewDefaultExportConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")

	e, err := NewExporter(cfg, zerolog.Nop())
	require.NoError(t, err)
	e.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return e
}

func TestNewExporter_CreatesOutputDir(t *testing.T) {
	e := newTestExporter(t)
	assert.DirExists(t, e.OutputDir())
}

func TestExporter_Files(t *testing.T) {
	e := newTestExporter(t)

	bulkPath, err := e.ExportBulk([]models.BulkScanItem{models.ItemFromResult(exampleResult())})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(e.OutputDir(), "phishscan-bulk-1700000000000.csv"), bulkPath)

	historyPath, err := e.ExportHistory([]models.ScanResult{exampleResult()})
	require.NoError(t, err)
	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), HistoryExportTitle)

	reportPath, err := e.ExportReport(exampleResult(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", filepath.Ext(reportPath))
	assert.FileExists(t, reportPath)

	archivePath, err := e.ExportArchive(context.Background(), "bulk", "run-1", []models.BulkScanItem{models.ItemFromResult(exampleResult())})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(e.OutputDir(), "phishscan-bulk-1700000000000.parquet"), archivePath)

	items, err := datastore.NewParquetReader(zerolog.Nop()).ReadFile(archivePath)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "https://example.com", items[0].URL)
}
