// Package orchestrator wires the scan pipeline together around one login session.
package orchestrator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aleister1102/phishscan/internal/backend"
	"github.com/aleister1102/phishscan/internal/bulk"
	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/config"
	"github.com/aleister1102/phishscan/internal/enrichment"
	"github.com/aleister1102/phishscan/internal/history"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/reporter"
	"github.com/aleister1102/phishscan/internal/scanner"
	"github.com/aleister1102/phishscan/internal/session"
	"github.com/rs/zerolog"
)

// Orchestrator owns the backend client, the session and every controller.
type Orchestrator struct {
	globalConfig *config.GlobalConfig
	logger       zerolog.Logger

	client   *backend.Client
	store    *session.Store
	sessions *session.Holder

	fetcher  *enrichment.Fetcher
	scanner  *scanner.Controller
	bulk     *bulk.Controller
	exporter *reporter.Exporter

	opMu     sync.Mutex
	opCtx    context.Context
	opCancel context.CancelFunc
}

// NewOrchestrator builds the pipeline from cfg and restores a saved session.
func NewOrchestrator(cfg *config.GlobalConfig, logger zerolog.Logger) (*Orchestrator, error) {
	client, err := backend.NewClientFromConfig(cfg.APIConfig, logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to create backend client")
	}

	exporter, err := reporter.NewExporter(cfg.ExportConfig, logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to create exporter")
	}

	return New(cfg, client, exporter, session.NewStore(cfg.SessionConfig.Path, logger), logger), nil
}

// New assembles an orchestrator from already-built parts.
func New(cfg *config.GlobalConfig, client *backend.Client, exporter *reporter.Exporter, store *session.Store, logger zerolog.Logger) *Orchestrator {
	o := &Orchestrator{
		globalConfig: cfg,
		logger:       logger.With().Str("component", "Orchestrator").Logger(),
		client:       client,
		store:        store,
		fetcher:      enrichment.NewFetcher(client, cfg.EnrichmentConfig, logger),
		scanner:      scanner.NewController(client, logger),
		bulk:         bulk.NewController(client, cfg.BulkConfig, logger),
		exporter:     exporter,
	}
	o.opCtx, o.opCancel = context.WithCancel(context.Background())

	o.sessions = session.NewHolder(o.restoreSession())
	o.sessions.OnLogout(o.resetControllers)
	return o
}

// restoreSession loads the saved session, discarding it when its token has expired.
func (o *Orchestrator) restoreSession() session.Session {
	sess, err := o.store.Load()
	if err != nil {
		if !errors.Is(err, common.ErrNoSession) {
			o.logger.Warn().Err(err).Msg("Failed to restore session")
		}
		return session.Session{}
	}

	if sess.Expired(time.Now()) {
		o.logger.Info().Str("username", sess.Username).Msg("Saved session has expired")
		if err := o.store.Clear(); err != nil {
			o.logger.Warn().Err(err).Msg("Failed to remove expired session")
		}
		return session.Session{}
	}
	return sess
}

// resetControllers returns every controller to its logged-out state and
// cancels operations started under the previous session.
func (o *Orchestrator) resetControllers() {
	o.opMu.Lock()
	o.opCancel()
	o.opCtx, o.opCancel = context.WithCancel(context.Background())
	o.opMu.Unlock()

	o.fetcher.Reset()
	o.scanner.Reset()
	o.bulk.ClearAll()
	o.logger.Debug().Msg("Controllers reset")
}

// operationContext derives a context from parent that is also cancelled at logout.
func (o *Orchestrator) operationContext(parent context.Context) (context.Context, context.CancelFunc) {
	o.opMu.Lock()
	opCtx := o.opCtx
	o.opMu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(opCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// Config returns the effective configuration.
func (o *Orchestrator) Config() *config.GlobalConfig { return o.globalConfig }

// Session returns the current session, which may be empty.
func (o *Orchestrator) Session() session.Session { return o.sessions.Get() }

// Fetcher exposes the enrichment fetcher.
func (o *Orchestrator) Fetcher() *enrichment.Fetcher { return o.fetcher }

// Scanner exposes the single-scan controller.
func (o *Orchestrator) Scanner() *scanner.Controller { return o.scanner }

// Bulk exposes the bulk-scan controller.
func (o *Orchestrator) Bulk() *bulk.Controller { return o.bulk }

// Exporter exposes the report exporter.
func (o *Orchestrator) Exporter() *reporter.Exporter { return o.exporter }

// Login authenticates, persists the session and makes it current.
func (o *Orchestrator) Login(ctx context.Context, creds models.Credentials) (session.Session, error) {
	resp, err := o.client.Login(ctx, creds)
	if err != nil {
		return session.Session{}, err
	}
	return o.adopt(resp)
}

// Register creates an account and logs into it.
func (o *Orchestrator) Register(ctx context.Context, creds models.Credentials) (session.Session, error) {
	resp, err := o.client.Register(ctx, creds)
	if err != nil {
		return session.Session{}, err
	}
	return o.adopt(resp)
}

func (o *Orchestrator) adopt(resp models.AuthResponse) (session.Session, error) {
	sess := session.FromAuth(resp)
	if err := sess.Require(); err != nil {
		return session.Session{}, common.WrapError(err, "backend returned no token")
	}
	if err := o.store.Save(sess); err != nil {
		return session.Session{}, err
	}
	o.sessions.Set(sess)
	return sess, nil
}

// Logout drops the token, resets every controller and removes the saved session.
func (o *Orchestrator) Logout() error {
	username := o.sessions.Get().Username
	o.sessions.Clear()
	if err := o.store.Clear(); err != nil {
		return err
	}
	o.logger.Info().Str("username", username).Msg("Logged out")
	return nil
}

// Health probes the backend.
func (o *Orchestrator) Health(ctx context.Context) (models.HealthStatus, error) {
	return o.client.Health(ctx)
}

// InputChanged feeds one edit of the address field to the enrichment fetcher.
func (o *Orchestrator) InputChanged(raw string) {
	o.fetcher.OnInputChange(raw, o.sessions.Get())
}

// Scan classifies one free-form address with the current session.
func (o *Orchestrator) Scan(ctx context.Context, raw string) (models.ScanResult, error) {
	ctx, cancel := o.operationContext(ctx)
	defer cancel()
	return o.scanner.ScanInput(ctx, raw, o.sessions.Get())
}

// IngestBulk makes the addresses read from src the pending bulk list.
func (o *Orchestrator) IngestBulk(src bulk.Source) ([]string, error) {
	return o.bulk.Ingest(src)
}

// RunBulk scans the pending bulk list with the current session.
func (o *Orchestrator) RunBulk(ctx context.Context) ([]models.BulkScanItem, error) {
	ctx, cancel := o.operationContext(ctx)
	defer cancel()
	return o.bulk.RunPending(ctx, o.sessions.Get())
}

// History fetches the user's past scans and applies q.
func (o *Orchestrator) History(ctx context.Context, q models.HistoryQuery) ([]models.ScanResult, error) {
	ctx, cancel := o.operationContext(ctx)
	defer cancel()

	items, err := o.client.History(ctx, o.sessions.Get())
	if err != nil {
		return nil, err
	}
	return history.Apply(items, q), nil
}

// Statistics fetches the dashboard aggregates.
func (o *Orchestrator) Statistics(ctx context.Context) (models.Statistics, error) {
	ctx, cancel := o.operationContext(ctx)
	defer cancel()
	return o.client.Statistics(ctx, o.sessions.Get())
}

// Profile fetches the account profile.
func (o *Orchestrator) Profile(ctx context.Context) (models.Profile, error) {
	ctx, cancel := o.operationContext(ctx)
	defer cancel()
	return o.client.Profile(ctx, o.sessions.Get())
}

// UpdateProfile changes the username or display name. A new username is
// carried into the saved session.
func (o *Orchestrator) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.ProfileUpdateResponse, error) {
	ctx, cancel := o.operationContext(ctx)
	defer cancel()

	sess := o.sessions.Get()
	resp, err := o.client.UpdateProfile(ctx, sess, update)
	if err != nil {
		return models.ProfileUpdateResponse{}, err
	}

	if resp.Username != "" && resp.Username != sess.Username {
		renamed, ok := o.sessions.Rename(sess.Token, resp.Username)
		if !ok {
			o.logger.Debug().Msg("Session changed during profile update, not persisting rename")
			return resp, nil
		}
		if err := o.store.Save(renamed); err != nil {
			o.logger.Warn().Err(err).Msg("Failed to persist renamed session")
		}
	}
	return resp, nil
}

// Close stops background work.
func (o *Orchestrator) Close() {
	o.fetcher.Close()
	o.opMu.Lock()
	o.opCancel()
	o.opMu.Unlock()
}
