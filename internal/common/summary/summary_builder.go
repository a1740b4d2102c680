package summary

import (
	"context"
	"errors"
	"time"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/rs/zerolog"
)

// SummaryBuilder turns the outcome of a bulk run into ScanSummaryData
type SummaryBuilder struct {
	logger zerolog.Logger
}

// NewSummaryBuilder creates a new SummaryBuilder instance
func NewSummaryBuilder(logger zerolog.Logger) *SummaryBuilder {
	return &SummaryBuilder{
		logger: logger.With().Str("component", "SummaryBuilder").Logger(),
	}
}

// SummaryInput contains data needed to build a summary
type SummaryInput struct {
	RunID     string
	Source    string
	Submitted int
	Batches   int
	StartTime time.Time
	Items     []models.BulkScanItem
	RunError  error
}

// Tally counts verdicts in items.
func Tally(items []models.BulkScanItem) VerdictStats {
	stats := VerdictStats{Total: len(items)}
	for _, item := range items {
		switch {
		case !item.HasVerdict():
			stats.Errors++
		case item.IsPhishing:
			stats.Phishing++
		default:
			stats.Safe++
		}
	}
	return stats
}

// BuildSummary creates the summary of a finished run
func (sb *SummaryBuilder) BuildSummary(input *SummaryInput) ScanSummaryData {
	summary := GetDefaultScanSummaryData()
	summary.RunID = input.RunID
	if input.Source != "" {
		summary.Source = input.Source
	}
	summary.Batches = input.Batches
	summary.Stats = Tally(input.Items)

	if !input.StartTime.IsZero() {
		summary.ScanDuration = time.Since(input.StartTime)
	}

	sb.determineStatus(&summary, input)

	sb.logger.Debug().
		Str("run_id", summary.RunID).
		Str("status", string(summary.Status)).
		Int("total", summary.Stats.Total).
		Int("errors", summary.Stats.Errors).
		Msg("Bulk summary built")
	return summary
}

func (sb *SummaryBuilder) determineStatus(summary *ScanSummaryData, input *SummaryInput) {
	switch {
	case input.RunError != nil && errors.Is(input.RunError, context.Canceled):
		summary.Status = ScanStatusInterrupted
		summary.ErrorMessages = append(summary.ErrorMessages, input.RunError.Error())
	case input.RunError != nil:
		summary.Status = ScanStatusFailed
		summary.ErrorMessages = append(summary.ErrorMessages, input.RunError.Error())
	case input.Submitted == 0:
		summary.Status = ScanStatusNoTargets
	case summary.Stats.Errors > 0:
		summary.Status = ScanStatusCompletedWithIssues
	default:
		summary.Status = ScanStatusCompleted
	}
}
