// Package garden is the entry point used by the CLI. It loads a classroom
// from storage, gates gameplay behind activation, runs ledger operations and
// writes back the keys each operation changed.
package garden

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/petgarden/internal/activation"
	"github.com/julianstephens/petgarden/internal/catalog"
	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/ids"
	"github.com/julianstephens/petgarden/internal/ledger"
	"github.com/julianstephens/petgarden/internal/logger"
	"github.com/julianstephens/petgarden/internal/models"
	"github.com/julianstephens/petgarden/internal/records"
	"github.com/julianstephens/petgarden/internal/state"
	"github.com/julianstephens/petgarden/internal/storage"
)

type Garden struct {
	state     *state.Adapter
	ledger    *ledger.Ledger
	settings  models.Settings
	activated bool
	evicted   int
	opts      options
}

type options struct {
	ids         ids.Source
	now         func() time.Time
	recordLimit int
}

type Option func(*options)

// WithIDs replaces the id source, mostly for tests.
func WithIDs(src ids.Source) Option {
	return func(o *options) { o.ids = src }
}

// WithClock replaces the clock used to stamp growth records.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRecordLimit overrides the growth log cap.
func WithRecordLimit(n int) Option {
	return func(o *options) { o.recordLimit = n }
}

// Open loads the classroom held by store. The store must already be loaded.
func Open(store storage.Provider, opts ...Option) (*Garden, error) {
	o := options{ids: ids.New(), now: time.Now, recordLimit: constants.MaxGrowthRecords}
	for _, opt := range opts {
		opt(&o)
	}

	adapter := state.New(store)
	snap, err := adapter.Load()
	if err != nil {
		return nil, err
	}

	g := &Garden{state: adapter, opts: o}
	if err := g.restore(snap); err != nil {
		return nil, err
	}
	logger.Debug("Garden loaded", "students", len(snap.Students), "records", len(snap.Records), "activated", snap.Activated)
	return g, nil
}

func (g *Garden) restore(snap state.Snapshot) error {
	roster, err := ledger.NewRoster(snap.Students)
	if err != nil {
		return fmt.Errorf("stored roster is invalid: %w", err)
	}
	cat, err := catalog.New(snap.Rules, snap.Items)
	if err != nil {
		return fmt.Errorf("stored catalog is invalid: %w", err)
	}
	log := records.New(
		records.WithIDs(g.opts.ids),
		records.WithClock(g.opts.now),
		records.WithLimit(g.opts.recordLimit),
	)
	log.Restore(snap.Records)
	g.evicted = len(snap.Records) - log.Len()

	g.ledger = ledger.New(roster, cat, log, g.opts.ids)
	g.settings = snap.Settings
	g.activated = snap.Activated
	return nil
}

func (g *Garden) snapshot() state.Snapshot {
	return state.Snapshot{
		Students:  g.ledger.Roster().All(),
		Rules:     g.ledger.Catalog().Rules(),
		Items:     g.ledger.Catalog().Items(),
		Records:   g.ledger.Log().Snapshot(),
		Settings:  g.settings,
		Activated: g.activated,
	}
}

// persist writes the changed keys. The in-memory change is already
// committed, so a failure here is reported but not rolled back.
func (g *Garden) persist(keys ...string) error {
	if err := g.state.SaveKeys(g.snapshot(), keys...); err != nil {
		logger.Warn("Failed to save state", "keys", keys, "error", err)
		return err
	}
	return nil
}

func (g *Garden) requireActive() error {
	if !g.activated {
		return errs.ErrSystemNotActivated
	}
	return nil
}

// IsActivated reports whether gameplay is unlocked.
func (g *Garden) IsActivated() bool {
	return g.activated
}

// Activate verifies code against src and unlocks the garden.
func (g *Garden) Activate(ctx context.Context, code string, src activation.Source) error {
	if err := activation.Verify(ctx, code, src); err != nil {
		return err
	}
	g.activated = true
	logger.Info("Garden activated")
	return g.persist(constants.KeyActivated)
}

// Reset wipes the roster, the catalog, the growth log and the settings.
// Activation survives. With seed the default catalog is installed.
func (g *Garden) Reset(seed bool) error {
	snap := state.Snapshot{Settings: models.DefaultSettings(), Activated: g.activated}
	if seed {
		snap.Rules = catalog.DefaultRules()
		snap.Items = catalog.DefaultItems()
	}
	if err := g.restore(snap); err != nil {
		return err
	}
	return g.state.Save(g.snapshot())
}

// Settings returns the display configuration.
func (g *Garden) Settings() models.Settings {
	return g.settings
}

// SettingsUpdate changes only the fields that are set.
type SettingsUpdate struct {
	SystemName   *string
	ClassName    *string
	SoundEnabled *bool
}

func (g *Garden) UpdateSettings(u SettingsUpdate) (models.Settings, error) {
	next := g.settings
	if u.SystemName != nil {
		next.SystemName = strings.TrimSpace(*u.SystemName)
	}
	if u.ClassName != nil {
		next.ClassName = strings.TrimSpace(*u.ClassName)
	}
	if u.SoundEnabled != nil {
		next.SoundEnabled = *u.SoundEnabled
	}
	models.ApplyDefaultSettings(&next)
	g.settings = next
	return next, g.persist(constants.KeyConfig)
}
