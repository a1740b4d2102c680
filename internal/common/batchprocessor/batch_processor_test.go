package batchprocessor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInput(n int) []string {
	input := make([]string, n)
	for i := range input {
		input[i] = fmt.Sprintf("https://site-%d.com", i)
	}
	return input
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		batchSize int
		expected  []int
	}{
		{name: "empty", size: 0, batchSize: 100, expected: nil},
		{name: "single batch", size: 3, batchSize: 100, expected: []int{3}},
		{name: "exact limit", size: 100, batchSize: 100, expected: []int{100}},
		{name: "one over", size: 101, batchSize: 100, expected: []int{100, 1}},
		{name: "several", size: 250, batchSize: 100, expected: []int{100, 100, 50}},
		{name: "non-positive size", size: 5, batchSize: 0, expected: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := makeInput(tt.size)
			batches := Split(input, tt.batchSize)

			var sizes []int
			var flat []string
			for _, b := range batches {
				sizes = append(sizes, len(b))
				flat = append(flat, b...)
			}
			assert.Equal(t, tt.expected, sizes)
			if tt.size > 0 {
				assert.Equal(t, input, flat)
			}
		})
	}
}

func TestBatchProcessor_GetBatchingStats(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 100}, zerolog.Nop())

	batches, last := bp.GetBatchingStats(250)
	assert.Equal(t, 3, batches)
	assert.Equal(t, 50, last)

	batches, last = bp.GetBatchingStats(200)
	assert.Equal(t, 2, batches)
	assert.Equal(t, 100, last)

	batches, last = bp.GetBatchingStats(0)
	assert.Zero(t, batches)
	assert.Zero(t, last)
}

func TestBatchProcessor_ProcessBatchesInOrder(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 2}, zerolog.Nop())
	input := makeInput(5)

	var seen []string
	var indexes []int
	results, err := bp.ProcessBatches(context.Background(), input, func(ctx context.Context, batch []string, batchIndex int) error {
		seen = append(seen, batch...)
		indexes = append(indexes, batchIndex)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, input, seen)
	assert.Equal(t, []int{0, 1, 2}, indexes)
	require.Len(t, results, 3)
	assert.Equal(t, 1, results[2].Processed)
	for _, r := range results {
		assert.True(t, r.Success)
	}
}

func TestBatchProcessor_StopsAtFirstFailure(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 2}, zerolog.Nop())
	boom := errors.New("boom")

	calls := 0
	results, err := bp.ProcessBatches(context.Background(), makeInput(6), func(ctx context.Context, batch []string, batchIndex int) error {
		calls++
		if batchIndex == 1 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "batch 2 of 3")
	assert.Equal(t, 2, calls)
	require.Len(t, results, 2)
	assert.False(t, results[1].Success)
}

func TestBatchProcessor_ContextCancellation(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 1}, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	results, err := bp.ProcessBatches(ctx, makeInput(3), func(ctx context.Context, batch []string, batchIndex int) error {
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
}

func TestBatchProcessor_BatchTimeout(t *testing.T) {
	bp := NewBatchProcessor(BatchProcessorConfig{BatchSize: 10, BatchTimeout: 10 * time.Millisecond}, zerolog.Nop())

	_, err := bp.ProcessBatches(context.Background(), makeInput(1), func(ctx context.Context, batch []string, batchIndex int) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
