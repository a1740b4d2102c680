package reporter

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/datastore"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/rs/zerolog"
)

// Exporter writes reports into the configured output directory.
type Exporter struct {
	cfg          config.ExportConfig
	logger       zerolog.Logger
	directoryMgr *DirectoryManager
	archive      *datastore.ParquetWriter
	now          func() time.Time
}

// NewExporter creates an Exporter and makes sure its output directory exists.
func NewExporter(cfg config.ExportConfig, appLogger zerolog.Logger) (*Exporter, error) {
	moduleLogger := appLogger.With().Str("component", "Exporter").Logger()

	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultExportOutputDir
		moduleLogger.Info().Str("default_dir", cfg.OutputDir).Msg("OutputDir not specified, using default.")
	}

	archive, err := datastore.NewParquetWriterBuilder(appLogger).WithExportConfig(cfg).Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create parquet writer")
	}

	e := &Exporter{
		cfg:          cfg,
		logger:       moduleLogger,
		directoryMgr: NewDirectoryManager(moduleLogger),
		archive:      archive,
		now:          time.Now,
	}
	if err := e.directoryMgr.EnsureOutputDirectory(cfg.OutputDir); err != nil {
		return nil, err
	}
	return e, nil
}

// OutputDir is where exported files are written.
func (e *Exporter) OutputDir() string {
	return e.cfg.OutputDir
}

func (e *Exporter) options(now time.Time) Options {
	opts := OptionsFromConfig(e.cfg)
	opts.GeneratedAt = now
	return opts
}

// ExportBulk writes a bulk run's items as a tabular file and returns its path.
func (e *Exporter) ExportBulk(items []models.BulkScanItem) (string, error) {
	now := e.now()
	path := e.path(FileName("bulk", FormatCSV, now))
	return e.writeFile(path, func(f *os.File) error {
		return WriteTabular(f, items, e.options(now))
	})
}

// ExportHistory writes history results as a titled tabular file.
func (e *Exporter) ExportHistory(results []models.ScanResult) (string, error) {
	now := e.now()
	path := e.path(FileName("history", FormatCSV, now))
	return e.writeFile(path, func(f *os.File) error {
		return WriteTitledTabular(f, HistoryExportTitle, models.ItemsFromResults(results), e.options(now))
	})
}

// ExportReport writes a single-result document.
func (e *Exporter) ExportReport(result models.ScanResult, sourceURL string) (string, error) {
	now := e.now()
	path := e.path(FileName("report", FormatPDF, now))
	return e.writeFile(path, func(f *os.File) error {
		return WriteDocument(f, result, sourceURL, e.options(now))
	})
}

// ExportArchive stores items as a Parquet file for later analysis.
func (e *Exporter) ExportArchive(ctx context.Context, kind, runID string, items []models.BulkScanItem) (string, error) {
	now := e.now()
	result, err := e.archive.Write(ctx, FileName(kind, FormatParquet, now), datastore.WriteRequest{
		Items:      items,
		RunID:      runID,
		Source:     kind,
		ArchivedAt: now,
	})
	if err != nil {
		return "", err
	}
	return result.FilePath, nil
}

func (e *Exporter) path(name string) string {
	return filepath.Join(e.cfg.OutputDir, name)
}

func (e *Exporter) writeFile(path string, render func(f *os.File) error) (string, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return "", common.WrapError(err, "failed to create export file: "+path)
	}

	renderErr := render(f)
	closeErr := f.Close()
	if renderErr != nil {
		_ = os.Remove(path)
		e.logger.Error().Err(renderErr).Str("path", path).Msg("Failed to write export")
		return "", common.WrapError(renderErr, "failed to write export: "+path)
	}
	if closeErr != nil {
		return "", common.WrapError(closeErr, "failed to close export file: "+path)
	}

	e.logger.Info().Str("path", path).Msg("Export written")
	return path, nil
}
