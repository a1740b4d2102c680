// Package scanner drives a single classification request and tracks its state.
package scanner

import (
	"context"
	"sync"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/session"
	"github.com/aleister1102/phishscan/internal/urlhandler"
	"github.com/rs/zerolog"
)

// DefaultRecentLimit bounds the session-local list of successful scans.
const DefaultRecentLimit = 50

// Predictor classifies a single address.
type Predictor interface {
	Predict(ctx context.Context, target models.NormalizedURL, sess session.Session) (models.ScanResult, error)
}

// Controller allows one outstanding scan at a time.
type Controller struct {
	predictor Predictor
	logger    zerolog.Logger

	mu          sync.Mutex
	state       State
	generation  uint64
	recent      []models.ScanResult
	recentLimit int
}

// NewController creates an idle controller.
func NewController(predictor Predictor, logger zerolog.Logger) *Controller {
	return &Controller{
		predictor:   predictor,
		logger:      logger.With().Str("component", "ScanController").Logger(),
		state:       State{Status: StatusIdle},
		recentLimit: DefaultRecentLimit,
	}
}

// ScanInput normalizes raw and scans it. Input that does not normalize moves
// the controller to the error state without a request.
func (c *Controller) ScanInput(ctx context.Context, raw string, sess session.Session) (models.ScanResult, error) {
	target, ok := urlhandler.Normalize(raw)
	if !ok {
		return models.ScanResult{}, c.reject("", common.ErrInvalidURL)
	}
	return c.Scan(ctx, target, sess)
}

// Scan classifies target. Starting a scan always re-enters loading and clears
// the previous result; a response that arrives after Reset is dropped.
func (c *Controller) Scan(ctx context.Context, target models.NormalizedURL, sess session.Session) (models.ScanResult, error) {
	if target == "" {
		return models.ScanResult{}, c.reject(target, common.ErrInvalidURL)
	}
	if err := sess.Require(); err != nil {
		return models.ScanResult{}, c.reject(target, err)
	}

	c.mu.Lock()
	if c.state.Status == StatusLoading {
		c.mu.Unlock()
		return models.ScanResult{}, ErrScanInProgress
	}
	c.generation++
	gen := c.generation
	c.state = State{Status: StatusLoading, Target: target}
	c.mu.Unlock()

	c.logger.Debug().Str("url", target.String()).Msg("Scan started")
	result, err := c.predictor.Predict(ctx, target, sess)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug().Str("url", target.String()).Msg("Discarding scan response after reset")
		if err != nil {
			return models.ScanResult{}, err
		}
		return result, nil
	}

	if err != nil {
		c.state = State{
			Status:  StatusError,
			Target:  target,
			Message: common.UserMessage(err, common.MsgScanFailed),
			Err:     err,
		}
		c.logger.Warn().Err(err).Str("url", target.String()).Msg("Scan failed")
		return models.ScanResult{}, err
	}

	stored := result
	c.state = State{Status: StatusSuccess, Target: target, Result: &stored}
	c.appendRecentLocked(result)
	c.logger.Info().
		Str("url", result.URL).
		Bool("is_phishing", result.IsPhishing).
		Float64("confidence", result.Confidence).
		Msg("Scan completed")
	return result, nil
}

func (c *Controller) reject(target models.NormalizedURL, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status == StatusLoading {
		return ErrScanInProgress
	}
	c.state = State{
		Status:  StatusError,
		Target:  target,
		Message: common.UserMessage(err, common.MsgScanFailed),
		Err:     err,
	}
	return err
}

func (c *Controller) appendRecentLocked(result models.ScanResult) {
	c.recent = append(c.recent, result)
	if over := len(c.recent) - c.recentLimit; over > 0 {
		c.recent = append([]models.ScanResult(nil), c.recent[over:]...)
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.state
	if st.Result != nil {
		r := *st.Result
		st.Result = &r
	}
	return st
}

// Busy reports whether a scan is loading.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Status == StatusLoading
}

// Recent returns the successful scans of this session, oldest first.
func (c *Controller) Recent() []models.ScanResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ScanResult(nil), c.recent...)
}

// Reset returns to idle, forgets recent results and orphans any in-flight scan.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = State{Status: StatusIdle}
	c.recent = nil
}
