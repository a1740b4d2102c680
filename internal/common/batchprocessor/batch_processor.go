package batchprocessor

import (
	"context"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/rs/zerolog"
)

// BatchProcessorConfig holds configuration for batch processing
type BatchProcessorConfig struct {
	BatchSize    int           // Max items per batch (default: 100)
	BatchTimeout time.Duration // Timeout per batch; zero leaves it to the caller's context
}

// DefaultBatchProcessorConfig returns default configuration
func DefaultBatchProcessorConfig() BatchProcessorConfig {
	return BatchProcessorConfig{
		BatchSize: 100,
	}
}

// BatchResult holds the result of a batch processing
type BatchResult struct {
	BatchIndex int
	Success    bool
	Error      error
	Processed  int
	Duration   time.Duration
}

// BatchProcessor runs batches one after another and stops at the first failure
type BatchProcessor struct {
	config BatchProcessorConfig
	logger zerolog.Logger
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(config BatchProcessorConfig, logger zerolog.Logger) *BatchProcessor {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchProcessorConfig().BatchSize
	}
	return &BatchProcessor{
		config: config,
		logger: logger.With().Str("component", "BatchProcessor").Logger(),
	}
}

// ProcessFunc defines the function signature for processing a batch
type ProcessFunc func(ctx context.Context, batch []string, batchIndex int) error

// Split cuts input into consecutive chunks of at most size items, preserving order.
func Split[T any](input []T, size int) [][]T {
	if len(input) == 0 {
		return nil
	}
	if size <= 0 || len(input) <= size {
		return [][]T{input}
	}

	batches := make([][]T, 0, (len(input)+size-1)/size)
	for i := 0; i < len(input); i += size {
		end := i + size
		if end > len(input) {
			end = len(input)
		}
		batches = append(batches, input[i:end])
	}
	return batches
}

// SplitIntoBatches splits a slice of strings into batches of the configured size
func (bp *BatchProcessor) SplitIntoBatches(input []string) [][]string {
	return Split(input, bp.config.BatchSize)
}

// GetBatchingStats returns the batch count and the size of the last batch
func (bp *BatchProcessor) GetBatchingStats(inputSize int) (batches int, lastBatchSize int) {
	if inputSize <= 0 {
		return 0, 0
	}

	batches = (inputSize + bp.config.BatchSize - 1) / bp.config.BatchSize
	lastBatchSize = inputSize % bp.config.BatchSize
	if lastBatchSize == 0 {
		lastBatchSize = bp.config.BatchSize
	}
	return batches, lastBatchSize
}

// ProcessBatches processes batches sequentially. The first failing batch ends
// the run; its error is returned together with the results gathered so far.
func (bp *BatchProcessor) ProcessBatches(
	ctx context.Context,
	input []string,
	processFunc ProcessFunc,
) ([]BatchResult, error) {
	batches := bp.SplitIntoBatches(input)
	results := make([]BatchResult, 0, len(batches))

	if len(batches) > 1 {
		bp.logger.Info().
			Int("total_items", len(input)).
			Int("batch_count", len(batches)).
			Int("batch_size", bp.config.BatchSize).
			Msg("Starting batch processing")
	}

	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			bp.logger.Info().
				Int("completed_batches", i).
				Int("total_batches", len(batches)).
				Msg("Batch processing interrupted by context cancellation")
			return results, err
		}

		batchCtx, cancel := bp.batchContext(ctx)
		start := time.Now()
		err := processFunc(batchCtx, batch, i)
		cancel()

		result := BatchResult{
			BatchIndex: i,
			Success:    err == nil,
			Error:      err,
			Processed:  len(batch),
			Duration:   time.Since(start),
		}
		results = append(results, result)

		bp.logger.Debug().
			Int("batch_index", i).
			Bool("success", err == nil).
			Dur("duration", result.Duration).
			Int("processed", len(batch)).
			Msg("Batch processing completed")

		if err != nil {
			bp.logger.Error().
				Err(err).
				Int("batch_index", i).
				Msg("Batch processing failed")
			return results, common.WrapErrorf(err, "batch %d of %d", i+1, len(batches))
		}
	}

	return results, nil
}

func (bp *BatchProcessor) batchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if bp.config.BatchTimeout > 0 {
		return context.WithTimeout(ctx, bp.config.BatchTimeout)
	}
	return context.WithCancel(ctx)
}
