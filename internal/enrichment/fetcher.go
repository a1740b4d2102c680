// Package enrichment looks up page metadata for the address being typed,
// firing only once the input has been stable for the debounce delay.
package enrichment

import (
	"context"
	"sync"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/session"
	"github.com/aleister1102/phishscan/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Lookup fetches metadata for one address.
type Lookup interface {
	Enrich(ctx context.Context, target models.NormalizedURL, sess session.Session) (models.EnrichmentInfo, error)
}

// State is what an observer sees after every transition.
type State struct {
	Input   models.NormalizedURL
	Info    *models.EnrichmentInfo
	Loading bool
}

// Fetcher debounces input changes into lookups and applies a response only
// when it belongs to the latest input.
type Fetcher struct {
	lookup Lookup
	delay  time.Duration
	cache  *snapshotCache
	logger zerolog.Logger

	ctx  context.Context
	stop context.CancelFunc

	mu             sync.Mutex
	timer          *time.Timer
	armed          bool
	generation     uint64
	latest         models.NormalizedURL
	info           *models.EnrichmentInfo
	loading        bool
	cancelInFlight context.CancelFunc
	subscribers    []func(State)
	closed         bool
}

// NewFetcher creates a fetcher. A non-positive cache TTL disables the snapshot cache.
func NewFetcher(lookup Lookup, cfg config.EnrichmentConfig, logger zerolog.Logger) *Fetcher {
	delay := cfg.DebounceDelay
	if delay <= 0 {
		delay = config.DefaultEnrichmentDebounceDelay
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Fetcher{
		lookup: lookup,
		delay:  delay,
		cache:  newSnapshotCache(cfg.CacheTTL),
		logger: logger.With().Str("component", "EnrichmentFetcher").Logger(),
		ctx:    ctx,
		stop:   stop,
	}
}

// Subscribe registers fn for every state transition. Subscribers run with the
// fetcher locked and must not call back into it.
func (f *Fetcher) Subscribe(fn func(State)) {
	f.mu.Lock()
	f.subscribers = append(f.subscribers, fn)
	f.mu.Unlock()
}

// OnInputChange is called for every edit of the address field.
func (f *Fetcher) OnInputChange(raw string, sess session.Session) {
	normalized, ok := urlhandler.Normalize(raw)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}

	f.invalidateLocked()

	if !ok {
		f.latest = ""
		f.info = nil
		f.notifyLocked()
		return
	}

	f.latest = normalized
	gen := f.generation
	f.armed = true
	f.timer = time.AfterFunc(f.delay, func() {
		f.fire(gen, normalized, sess)
	})
	f.notifyLocked()
}

// invalidateLocked stops the pending timer and orphans any in-flight lookup.
func (f *Fetcher) invalidateLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.armed = false
	f.generation++
	if f.cancelInFlight != nil {
		f.cancelInFlight()
		f.cancelInFlight = nil
	}
	f.loading = false
}

func (f *Fetcher) fire(gen uint64, target models.NormalizedURL, sess session.Session) {
	f.mu.Lock()
	if f.closed || gen != f.generation {
		f.mu.Unlock()
		return
	}
	f.armed = false
	f.timer = nil

	if cached, ok := f.cache.get(target); ok {
		f.info = &cached
		f.notifyLocked()
		f.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(f.ctx)
	f.cancelInFlight = cancel
	f.loading = true
	f.notifyLocked()
	f.mu.Unlock()

	info, err := f.lookup.Enrich(ctx, target, sess)

	f.mu.Lock()
	defer f.mu.Unlock()
	cancel()

	if gen != f.generation || target != f.latest {
		f.logger.Debug().Str("url", target.String()).Msg("Discarding stale enrichment response")
		return
	}

	f.cancelInFlight = nil
	f.loading = false
	if err != nil {
		f.logger.Debug().Err(err).Str("url", target.String()).Msg("Enrichment lookup failed")
		placeholder := Placeholder(target)
		f.info = &placeholder
	} else {
		if !info.Failed() {
			f.cache.set(target, info)
		}
		f.info = &info
	}
	f.notifyLocked()
}

// Placeholder is the snapshot shown when the lookup itself failed.
func Placeholder(target models.NormalizedURL) models.EnrichmentInfo {
	return models.EnrichmentInfo{
		Domain: urlhandler.Host(target),
		Error:  common.MsgEnrichFailed,
	}
}

func (f *Fetcher) stateLocked() State {
	st := State{Input: f.latest, Loading: f.loading}
	if f.info != nil {
		info := *f.info
		st.Info = &info
	}
	return st
}

func (f *Fetcher) notifyLocked() {
	if len(f.subscribers) == 0 {
		return
	}
	st := f.stateLocked()
	for _, fn := range f.subscribers {
		fn(st)
	}
}

// State returns a copy of the current state.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

// Info returns the current snapshot, or nil.
func (f *Fetcher) Info() *models.EnrichmentInfo {
	return f.State().Info
}

// Loading reports whether a lookup is in flight.
func (f *Fetcher) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Pending reports whether a lookup is scheduled or in flight.
func (f *Fetcher) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.armed || f.loading
}

// Reset drops the pending timer, orphans in-flight lookups and clears the
// snapshot and cache.
func (f *Fetcher) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.invalidateLocked()
	f.latest = ""
	f.info = nil
	f.cache.flush()
	f.notifyLocked()
}

// Close resets the fetcher and ignores all further input.
func (f *Fetcher) Close() {
	f.Reset()

	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.stop()
}
