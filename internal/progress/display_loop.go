package progress

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (pdm *ProgressDisplayManager) displayLoop(ctx context.Context, ticker *time.Ticker, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pdm.displayProgress()
		case <-pdm.triggerDisplay:
			pdm.displayProgress()
		}
	}
}

// displayProgress logs the current line unless it repeats the previous one
func (pdm *ProgressDisplayManager) displayProgress() {
	output := pdm.formatProgress(pdm.progress.Info())

	pdm.mutex.Lock()
	defer pdm.mutex.Unlock()
	if output != "" && output != pdm.lastDisplayed {
		pdm.logger.Info().Msg(output)
		pdm.lastDisplayed = output
	}
}

func (pdm *ProgressDisplayManager) formatProgress(info ProgressInfo) string {
	if info.Status == ProgressStatusIdle || info.Total <= 0 {
		return ""
	}

	var builder strings.Builder
	percentage := info.GetPercentage()
	icon := getStatusIcon(info.Status)
	progressBar := createProgressBar(percentage, 20)

	if info.BatchInfo != nil && info.BatchInfo.TotalBatches > 1 {
		builder.WriteString(fmt.Sprintf("Bulk scan [Batch %d/%d]: %s %s %.1f%% | URLs: %d/%d",
			info.BatchInfo.CurrentBatch, info.BatchInfo.TotalBatches, icon, progressBar, percentage,
			info.BatchInfo.ProcessedURLs, info.BatchInfo.TotalURLs))
	} else if info.BatchInfo != nil {
		builder.WriteString(fmt.Sprintf("Bulk scan: %s %s %.1f%% | URLs: %d/%d",
			icon, progressBar, percentage, info.BatchInfo.ProcessedURLs, info.BatchInfo.TotalURLs))
	} else {
		builder.WriteString(fmt.Sprintf("Bulk scan: %s %s %.1f%% (%d/%d)",
			icon, progressBar, percentage, info.Current, info.Total))
	}

	if info.Stage != "" {
		builder.WriteString(fmt.Sprintf(" | %s", info.Stage))
	}

	if pdm.config.ShowETAEstimation && info.EstimatedETA > 0 && info.Status == ProgressStatusRunning {
		builder.WriteString(fmt.Sprintf(" | ETA: %s", formatDuration(info.EstimatedETA)))
	}

	if info.Message != "" {
		builder.WriteString(fmt.Sprintf(" | %s", info.Message))
	}

	return builder.String()
}

func getStatusIcon(status ProgressStatus) string {
	switch status {
	case ProgressStatusRunning:
		return "⏳"
	case ProgressStatusComplete:
		return "✅"
	case ProgressStatusError:
		return "❌"
	case ProgressStatusCancelled:
		return "🚫"
	default:
		return "💤"
	}
}

func createProgressBar(percentage float64, width int) string {
	if width <= 0 {
		return ""
	}

	filled := int((percentage / 100.0) * float64(width))
	if filled > width {
		filled = width
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%.0fm", d.Minutes())
	default:
		return fmt.Sprintf("%.1fh", d.Hours())
	}
}
