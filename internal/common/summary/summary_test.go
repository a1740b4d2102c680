package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.BulkScanItem {
	return []models.BulkScanItem{
		{URL: "https://bad-site.net", IsPhishing: true, Confidence: 0.97},
		{URL: "https://good-site.org", Confidence: 0.88},
		{URL: "https://broken", Error: "Invalid URL format"},
		{URL: "https://also-good.com", Confidence: 0.6},
	}
}

func TestTally(t *testing.T) {
	stats := Tally(sampleItems())

	assert.Equal(t, VerdictStats{Total: 4, Phishing: 1, Safe: 2, Errors: 1}, stats)
	assert.Equal(t, 3, stats.Successful())
	assert.Equal(t, VerdictStats{}, Tally(nil))
}

func TestSummaryBuilder_Statuses(t *testing.T) {
	sb := NewSummaryBuilder(zerolog.Nop())

	tests := []struct {
		name   string
		input  SummaryInput
		status ScanStatus
	}{
		{
			name:   "clean run",
			input:  SummaryInput{Submitted: 2, Items: sampleItems()[:2]},
			status: ScanStatusCompleted,
		},
		{
			name:   "item errors",
			input:  SummaryInput{Submitted: 4, Items: sampleItems()},
			status: ScanStatusCompletedWithIssues,
		},
		{
			name:   "batch failure",
			input:  SummaryInput{Submitted: 4, RunError: errors.New("backend unavailable")},
			status: ScanStatusFailed,
		},
		{
			name:   "cancelled",
			input:  SummaryInput{Submitted: 4, RunError: common.WrapError(context.Canceled, "batch 1")},
			status: ScanStatusInterrupted,
		},
		{
			name:   "nothing submitted",
			input:  SummaryInput{},
			status: ScanStatusNoTargets,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			summary := sb.BuildSummary(&input)
			assert.Equal(t, tt.status, summary.Status)
			require.NoError(t, NewScanSummaryValidator().ValidateSummary(summary))
		})
	}
}

func TestSummaryBuilder_Fields(t *testing.T) {
	sb := NewSummaryBuilder(zerolog.Nop())

	summary := sb.BuildSummary(&SummaryInput{
		RunID:     "run-1",
		Source:    "urls.csv",
		Submitted: 4,
		Batches:   1,
		StartTime: time.Now().Add(-time.Second),
		Items:     sampleItems(),
	})

	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, "urls.csv", summary.Source)
	assert.Equal(t, 1, summary.Batches)
	assert.GreaterOrEqual(t, summary.ScanDuration, time.Second)
	assert.Equal(t, "4 scanned: 1 phishing, 2 safe, 1 errors (COMPLETED_WITH_ISSUES)", summary.String())
}

func TestScanSummaryValidator_Inconsistent(t *testing.T) {
	v := NewScanSummaryValidator()

	err := v.ValidateSummary(ScanSummaryData{Status: ScanStatusCompleted, Stats: VerdictStats{Total: 3, Safe: 1}})
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	err = v.ValidateSummary(ScanSummaryData{})
	assert.Error(t, err)

	err = v.ValidateSummary(ScanSummaryData{Status: ScanStatusFailed, Stats: VerdictStats{Total: 1, Safe: 1}})
	assert.Error(t, err)
}
