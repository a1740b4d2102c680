package datastore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

var compressionCodecs = map[string]parquet.WriterOption{
	"zstd":   parquet.Compression(&parquet.Zstd),
	"gzip":   parquet.Compression(&parquet.Gzip),
	"snappy": parquet.Compression(&parquet.Snappy),
	"none":   parquet.Compression(&parquet.Uncompressed),
}

// ParquetWriter archives scan results as Parquet files.
type ParquetWriter struct {
	logger       zerolog.Logger
	writerConfig ParquetWriterConfig
	transformer  *RecordTransformer
}

// NewParquetWriter creates a new ParquetWriter using builder pattern
func NewParquetWriter(cfg ParquetWriterConfig, logger zerolog.Logger) (*ParquetWriter, error) {
	return NewParquetWriterBuilder(logger).
		WithWriterConfig(cfg).
		Build()
}

// WriteRequest encapsulates a write request
type WriteRequest struct {
	Items      []models.BulkScanItem
	RunID      string
	Source     string
	ArchivedAt time.Time
}

// WriteResult contains the result of a write operation
type WriteResult struct {
	FilePath       string
	RecordsWritten int
	FileSize       int64
	WriteTime      time.Duration
}

// Write archives request into fileName under the configured output directory.
func (pw *ParquetWriter) Write(ctx context.Context, fileName string, request WriteRequest) (*WriteResult, error) {
	startTime := time.Now()

	if err := pw.checkCancellation(ctx, "write start"); err != nil {
		return nil, err
	}

	filePath, err := pw.prepareOutputFile(fileName)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to create parquet file: "+filePath)
	}

	recordsWritten, err := pw.WriteTo(ctx, file, request)
	closeErr := file.Close()
	if err != nil {
		_ = os.Remove(filePath)
		return nil, err
	}
	if closeErr != nil {
		return nil, common.WrapError(closeErr, "failed to close parquet file: "+filePath)
	}

	fileSize := int64(0)
	if fileInfo, statErr := os.Stat(filePath); statErr == nil {
		fileSize = fileInfo.Size()
	}

	result := &WriteResult{
		FilePath:       filePath,
		RecordsWritten: recordsWritten,
		FileSize:       fileSize,
		WriteTime:      time.Since(startTime),
	}

	pw.logger.Info().
		Str("file_path", result.FilePath).
		Int("records_written", result.RecordsWritten).
		Dur("write_time", result.WriteTime).
		Msg("Wrote scan results to Parquet file")

	return result, nil
}

// WriteTo encodes request as a single Parquet file on w.
func (pw *ParquetWriter) WriteTo(ctx context.Context, w io.Writer, request WriteRequest) (int, error) {
	archivedAt := request.ArchivedAt
	if archivedAt.IsZero() {
		archivedAt = time.Now()
	}

	records := make([]ParquetScanRecord, 0, len(request.Items))
	for _, item := range request.Items {
		if err := pw.checkCancellation(ctx, "during record transformation"); err != nil {
			return 0, err
		}
		records = append(records, pw.transformer.TransformToParquetRecord(item, request.RunID, request.Source, archivedAt))
	}

	writer := parquet.NewGenericWriter[ParquetScanRecord](w, pw.compressionOption())
	written, err := writer.Write(records)
	if err != nil {
		_ = writer.Close()
		return 0, common.WrapError(err, "failed to write scan records")
	}
	if err := writer.Close(); err != nil {
		return 0, common.WrapError(err, "failed to finalize parquet data")
	}
	return written, nil
}

func (pw *ParquetWriter) checkCancellation(ctx context.Context, operation string) error {
	if result := CheckCancellationWithLog(ctx, pw.logger, operation); result.Cancelled {
		return result.Error
	}
	return nil
}

func (pw *ParquetWriter) prepareOutputFile(fileName string) (string, error) {
	dir := pw.writerConfig.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", common.WrapError(err, "failed to create parquet output directory: "+dir)
	}
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

func (pw *ParquetWriter) compressionOption() parquet.WriterOption {
	if opt, ok := compressionCodecs[pw.writerConfig.CompressionType]; ok {
		return opt
	}
	return compressionCodecs["zstd"]
}
