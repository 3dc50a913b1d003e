// Package state maps the garden onto storage blobs. Each key holds a JSON
// envelope carrying a schema version so later releases can migrate old data.
package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/models"
	"github.com/julianstephens/petgarden/internal/storage"
)

// Snapshot is everything persisted for one classroom. Records are kept
// oldest first.
type Snapshot struct {
	Students  []models.Student
	Rules     []models.PointRule
	Items     []models.ShopItem
	Records   []models.GrowthRecord
	Settings  models.Settings
	Activated bool
}

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Data          json.RawMessage `json:"data"`
}

type Adapter struct {
	store storage.Provider
}

func New(store storage.Provider) *Adapter {
	return &Adapter{store: store}
}

// Load reads every key. Keys that were never written leave their field at
// the zero value, except settings which fall back to the defaults.
func (a *Adapter) Load() (Snapshot, error) {
	snap := Snapshot{Settings: models.DefaultSettings()}
	targets := map[string]any{
		constants.KeyStudents:  &snap.Students,
		constants.KeyRules:     &snap.Rules,
		constants.KeyShop:      &snap.Items,
		constants.KeyRecords:   &snap.Records,
		constants.KeyConfig:    &snap.Settings,
		constants.KeyActivated: &snap.Activated,
	}
	for _, key := range constants.StateKeys {
		if err := a.read(key, targets[key]); err != nil {
			return Snapshot{}, err
		}
	}
	models.ApplyDefaultSettings(&snap.Settings)
	return snap, nil
}

func (a *Adapter) read(key string, into any) error {
	raw, err := a.store.Get(key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return Decode(key, raw, into)
}

// Decode unwraps an envelope into into.
func Decode(key string, raw []byte, into any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to parse %q: %w", key, err)
	}
	if env.SchemaVersion > constants.SchemaVersion {
		return fmt.Errorf("%w: %q has schema version %d, this build reads up to %d",
			errs.ErrUnsupportedSchema, key, env.SchemaVersion, constants.SchemaVersion)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		return fmt.Errorf("failed to parse %q: %w", key, err)
	}
	return nil
}

// Encode wraps v in an envelope at the current schema version.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{SchemaVersion: constants.SchemaVersion, Data: data})
}

// Save writes every key in one batch.
func (a *Adapter) Save(snap Snapshot) error {
	return a.SaveKeys(snap, constants.StateKeys...)
}

// SaveKeys writes only the named keys in one batch.
func (a *Adapter) SaveKeys(snap Snapshot, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	entries := make(map[string][]byte, len(keys))
	for _, key := range keys {
		v, err := field(&snap, key)
		if err != nil {
			return err
		}
		raw, err := Encode(v)
		if err != nil {
			return fmt.Errorf("failed to serialize %q: %w", key, err)
		}
		entries[key] = raw
	}
	if err := a.store.PutMany(entries); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

func field(snap *Snapshot, key string) (any, error) {
	switch key {
	case constants.KeyStudents:
		return nonNil(snap.Students), nil
	case constants.KeyRules:
		return nonNil(snap.Rules), nil
	case constants.KeyShop:
		return nonNil(snap.Items), nil
	case constants.KeyRecords:
		return nonNil(snap.Records), nil
	case constants.KeyConfig:
		return snap.Settings, nil
	case constants.KeyActivated:
		return snap.Activated, nil
	}
	return nil, fmt.Errorf("unknown state key %q", key)
}

// nonNil keeps empty lists as [] rather than null in the stored JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Versions reports the schema version of every stored key.
func (a *Adapter) Versions() (map[string]int, error) {
	keys, err := a.store.Keys()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(keys))
	for _, key := range keys {
		raw, err := a.store.Get(key)
		if err != nil {
			return nil, err
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", key, err)
		}
		out[key] = env.SchemaVersion
	}
	return out, nil
}
