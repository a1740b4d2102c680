package progress

import (
	"sync"
	"time"
)

// Progress encapsulates a single progress indicator.
type Progress struct {
	mu        sync.RWMutex
	info      ProgressInfo
	observers []func(ProgressInfo)
}

// NewProgress creates a new Progress indicator.
func NewProgress(progressType ProgressType) *Progress {
	return &Progress{
		info: ProgressInfo{
			Type:   progressType,
			Status: ProgressStatusIdle,
		},
	}
}

// Info returns a copy of the ProgressInfo.
func (p *Progress) Info() ProgressInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.copyLocked()
}

func (p *Progress) copyLocked() ProgressInfo {
	info := p.info
	if info.BatchInfo != nil {
		batch := *info.BatchInfo
		info.BatchInfo = &batch
	}
	return info
}

// Subscribe registers fn to receive a snapshot after every change.
func (p *Progress) Subscribe(fn func(ProgressInfo)) {
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

// publish must be called with the write lock held; observers run after it is released.
func (p *Progress) publish() func() {
	if len(p.observers) == 0 {
		return func() {}
	}
	snapshot := p.copyLocked()
	observers := append([]func(ProgressInfo){}, p.observers...)
	return func() {
		for _, fn := range observers {
			fn(snapshot)
		}
	}
}

// Start begins a run of totalBatches batches covering totalURLs addresses.
func (p *Progress) Start(totalBatches, totalURLs int, stage string) {
	p.mu.Lock()
	now := time.Now()
	p.info = ProgressInfo{
		Type:           p.info.Type,
		Status:         ProgressStatusRunning,
		Total:          int64(totalBatches),
		Stage:          stage,
		StartTime:      now,
		LastUpdateTime: now,
		BatchInfo: &BatchProgressInfo{
			CurrentBatch: 1,
			TotalBatches: totalBatches,
			TotalURLs:    totalURLs,
		},
	}
	notify := p.publish()
	p.mu.Unlock()
	notify()
}

// CompleteBatch records one finished batch of batchURLs addresses.
func (p *Progress) CompleteBatch(batchURLs int, message string) {
	p.mu.Lock()
	if p.info.BatchInfo == nil {
		p.info.BatchInfo = &BatchProgressInfo{}
	}
	p.info.Current++
	p.info.BatchInfo.ProcessedURLs += batchURLs
	if p.info.Current < p.info.Total {
		p.info.BatchInfo.CurrentBatch = int(p.info.Current) + 1
	}
	p.info.Message = message
	p.info.LastUpdateTime = time.Now()
	p.info.UpdateETA()
	notify := p.publish()
	p.mu.Unlock()
	notify()
}

// Update sets the counters directly.
func (p *Progress) Update(current, total int64, stage, message string) {
	p.mu.Lock()
	now := time.Now()

	if p.info.Status == ProgressStatusIdle || current == 0 {
		p.info.StartTime = now
		p.info.Status = ProgressStatusRunning
	}

	p.info.Current = current
	p.info.Total = total
	p.info.Stage = stage
	p.info.Message = message
	p.info.LastUpdateTime = now
	p.info.UpdateETA()
	notify := p.publish()
	p.mu.Unlock()
	notify()
}

// SetStatus sets the progress status.
func (p *Progress) SetStatus(status ProgressStatus, message string) {
	p.mu.Lock()
	p.info.Status = status
	p.info.Message = message
	p.info.LastUpdateTime = time.Now()
	if status != ProgressStatusRunning {
		p.info.EstimatedETA = 0
	}
	notify := p.publish()
	p.mu.Unlock()
	notify()
}

// Reset returns the indicator to idle at zero.
func (p *Progress) Reset() {
	p.mu.Lock()
	p.info = ProgressInfo{Type: p.info.Type, Status: ProgressStatusIdle}
	notify := p.publish()
	p.mu.Unlock()
	notify()
}
