package progress

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ProgressDisplayConfig configures the periodic progress log line
type ProgressDisplayConfig struct {
	DisplayInterval   time.Duration
	EnableProgress    bool
	ShowETAEstimation bool
}

// ProgressDisplayManager logs a bulk run's progress while it is running
type ProgressDisplayManager struct {
	progress       *Progress
	mutex          sync.Mutex
	logger         zerolog.Logger
	displayTicker  *time.Ticker
	isRunning      bool
	ctx            context.Context
	cancel         context.CancelFunc
	lastDisplayed  string
	config         *ProgressDisplayConfig
	triggerDisplay chan struct{}
	done           chan struct{}
}

// NewProgressDisplayManager creates a display for progress. A nil config
// uses a three second interval.
func NewProgressDisplayManager(progress *Progress, logger zerolog.Logger, config *ProgressDisplayConfig) *ProgressDisplayManager {
	if config == nil {
		config = &ProgressDisplayConfig{
			DisplayInterval:   3 * time.Second,
			EnableProgress:    true,
			ShowETAEstimation: true,
		}
	}

	pdm := &ProgressDisplayManager{
		progress:       progress,
		logger:         logger.With().Str("component", "ProgressDisplay").Logger(),
		config:         config,
		triggerDisplay: make(chan struct{}, 1),
	}
	progress.Subscribe(func(ProgressInfo) { pdm.triggerImmediateDisplay() })
	return pdm
}

// Start launches the display loop
func (pdm *ProgressDisplayManager) Start() {
	pdm.mutex.Lock()
	defer pdm.mutex.Unlock()

	if pdm.isRunning {
		return
	}

	if !pdm.config.EnableProgress {
		pdm.logger.Debug().Msg("Progress display disabled in configuration")
		return
	}

	pdm.ctx, pdm.cancel = context.WithCancel(context.Background())
	pdm.done = make(chan struct{})
	pdm.isRunning = true
	pdm.displayTicker = time.NewTicker(pdm.config.DisplayInterval)

	go pdm.displayLoop(pdm.ctx, pdm.displayTicker, pdm.done)
}

// Stop ends the display loop after printing the final state
func (pdm *ProgressDisplayManager) Stop() {
	pdm.mutex.Lock()
	if !pdm.isRunning {
		pdm.mutex.Unlock()
		return
	}
	pdm.isRunning = false
	pdm.cancel()
	pdm.displayTicker.Stop()
	done := pdm.done
	pdm.mutex.Unlock()

	<-done
	pdm.displayProgress()
}

func (pdm *ProgressDisplayManager) triggerImmediateDisplay() {
	select {
	case pdm.triggerDisplay <- struct{}{}:
	default:
	}
}
