// Package bulk scans a list of addresses in as few backend requests as the
// per-request limit allows.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/common/batchprocessor"
	"github.com/aleister1102/phishscan/internal/common/summary"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/progress"
	"github.com/aleister1102/phishscan/internal/session"
	"github.com/aleister1102/phishscan/internal/urlhandler"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrBulkInProgress is returned when Run is called while another run is loading.
	ErrBulkInProgress = errors.New("a bulk scan is already in progress")
	// ErrNoAddresses is returned when Run is called with an empty list.
	ErrNoAddresses = common.NewValidationError("urls", 0, common.MsgBulkEmpty)
	// ErrResultMismatch means the backend answered a batch with the wrong number of items.
	ErrResultMismatch = errors.New("bulk response does not match submitted addresses")
)

// Predictor classifies one batch of addresses.
type Predictor interface {
	PredictBulk(ctx context.Context, urls []string, sess session.Session) (models.BulkScanResponse, error)
}

// Snapshot is the observable state of the controller.
type Snapshot struct {
	Addresses []string
	Results   []models.BulkScanItem
	Message   string
	Running   bool
	Progress  progress.ProgressInfo
}

// Controller owns one bulk workflow: ingest, run, clear.
type Controller struct {
	predictor Predictor
	processor *batchprocessor.BatchProcessor
	summaries *summary.SummaryBuilder
	progress  *progress.Progress
	logger    zerolog.Logger

	mu          sync.Mutex
	addresses   []string
	source      string
	results     []models.BulkScanItem
	message     string
	running     bool
	generation  uint64
	lastSummary summary.ScanSummaryData
}

// NewController creates an empty controller.
func NewController(predictor Predictor, cfg config.BulkConfig, logger zerolog.Logger) *Controller {
	batchSize := cfg.MaxBatchSize
	if batchSize <= 0 {
		batchSize = config.DefaultBulkMaxBatchSize
	}

	return &Controller{
		predictor: predictor,
		processor: batchprocessor.NewBatchProcessor(batchprocessor.BatchProcessorConfig{BatchSize: batchSize}, logger),
		summaries: summary.NewSummaryBuilder(logger),
		progress:  progress.NewProgress(progress.ProgressTypeBulk),
		logger:    logger.With().Str("component", "BulkController").Logger(),
	}
}

// Progress exposes the run's progress indicator for display.
func (c *Controller) Progress() *progress.Progress {
	return c.progress
}

// Ingest extracts addresses from src and makes them the pending list.
// Blank and dot-less lines are dropped silently; order is preserved.
func (c *Controller) Ingest(src Source) ([]string, error) {
	addresses, err := src.read(c.logger)
	if err != nil {
		c.mu.Lock()
		c.message = common.MsgFileRead
		c.mu.Unlock()
		c.logger.Warn().Err(err).Str("source", src.label()).Msg("Failed to ingest addresses")
		return nil, err
	}

	c.mu.Lock()
	c.addresses = append([]string(nil), addresses...)
	c.source = src.label()
	c.message = ""
	c.mu.Unlock()

	c.logger.Debug().Str("source", src.label()).Int("addresses", len(addresses)).Msg("Addresses ingested")
	return addresses, nil
}

// Addresses returns the pending list.
func (c *Controller) Addresses() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.addresses...)
}

// Run canonicalizes addresses and submits them in batches of at most the
// configured size. Any failing batch fails the whole run with zero items.
// On success the result has exactly one item per address, in order.
func (c *Controller) Run(ctx context.Context, addresses []string, sess session.Session) ([]models.BulkScanItem, error) {
	if len(addresses) == 0 {
		c.setMessage(common.MsgBulkEmpty)
		return nil, ErrNoAddresses
	}
	if err := sess.Require(); err != nil {
		c.setMessage(common.UserMessage(err, common.MsgBulkFailed))
		return nil, err
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil, ErrBulkInProgress
	}
	c.running = true
	c.generation++
	gen := c.generation
	c.results = nil
	c.message = ""
	source := c.source
	c.mu.Unlock()

	runID := uuid.NewString()
	runLogger := c.logger.With().Str("run_id", runID).Logger()
	submitted := urlhandler.CanonicalizeAll(addresses)
	batches, _ := c.processor.GetBatchingStats(len(submitted))

	c.progress.Reset()
	c.progress.Start(batches, len(submitted), "Scanning")
	runLogger.Info().Int("addresses", len(submitted)).Int("batches", batches).Msg("Bulk scan started")

	start := time.Now()
	collected := make([]models.BulkScanItem, 0, len(submitted))
	_, runErr := c.processor.ProcessBatches(ctx, submitted, func(ctx context.Context, batch []string, batchIndex int) error {
		resp, err := c.predictor.PredictBulk(ctx, batch, sess)
		if err != nil {
			return err
		}
		if len(resp.Results) != len(batch) {
			return fmt.Errorf("%w: sent %d, received %d", ErrResultMismatch, len(batch), len(resp.Results))
		}
		for i := range resp.Results {
			if resp.Results[i].URL == "" {
				resp.Results[i].URL = batch[i]
			}
		}
		collected = append(collected, resp.Results...)
		if c.isCurrent(gen) {
			c.progress.CompleteBatch(len(batch), fmt.Sprintf("%d/%d addresses", len(collected), len(submitted)))
		}
		return nil
	})

	if runErr != nil {
		collected = nil
	}
	result := c.summaries.BuildSummary(&summary.SummaryInput{
		RunID:     runID,
		Source:    source,
		Submitted: len(submitted),
		Batches:   batches,
		StartTime: start,
		Items:     collected,
		RunError:  runErr,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		runLogger.Debug().Msg("Discarding bulk results after reset")
		if runErr != nil {
			return nil, runErr
		}
		return collected, nil
	}

	c.running = false
	c.lastSummary = result

	if runErr != nil {
		c.message = common.UserMessage(runErr, common.MsgBulkFailed)
		c.progress.SetStatus(progress.ProgressStatusError, c.message)
		runLogger.Warn().Err(runErr).Msg("Bulk scan failed")
		return nil, runErr
	}

	c.results = collected
	c.progress.SetStatus(progress.ProgressStatusComplete, result.String())
	runLogger.Info().
		Int("phishing", result.Stats.Phishing).
		Int("safe", result.Stats.Safe).
		Int("errors", result.Stats.Errors).
		Dur("duration", result.ScanDuration).
		Msg("Bulk scan completed")
	return append([]models.BulkScanItem(nil), collected...), nil
}

// RunPending runs the addresses collected by Ingest.
func (c *Controller) RunPending(ctx context.Context, sess session.Session) ([]models.BulkScanItem, error) {
	return c.Run(ctx, c.Addresses(), sess)
}

func (c *Controller) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation
}

func (c *Controller) setMessage(msg string) {
	c.mu.Lock()
	c.message = msg
	c.mu.Unlock()
}

// Results returns the items of the last successful run.
func (c *Controller) Results() []models.BulkScanItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.BulkScanItem(nil), c.results...)
}

// Message returns the controller-level error message, or "".
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Summary returns the tallies of the last finished run.
func (c *Controller) Summary() summary.ScanSummaryData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSummary
}

// Busy reports whether a run is loading.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Snapshot returns a copy of everything the controller shows.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Addresses: append([]string(nil), c.addresses...),
		Results:   append([]models.BulkScanItem(nil), c.results...),
		Message:   c.message,
		Running:   c.running,
		Progress:  c.progress.Info(),
	}
}

// ClearAll resets addresses, results, message and progress in one step. A run
// still in flight is orphaned and its results are dropped.
func (c *Controller) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.addresses = nil
	c.source = ""
	c.results = nil
	c.message = ""
	c.running = false
	c.lastSummary = summary.ScanSummaryData{}
	c.progress.Reset()
}
