package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type fileLayout struct {
	Version int                        `json:"version"`
	Blobs   map[string]json.RawMessage `json:"blobs"`
}

// JSONStore keeps every blob in a single JSON document. Blobs must be
// valid JSON themselves.
type JSONStore struct {
	path  string
	store *fileLayout
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}
	s.store = &fileLayout{Version: 1, Blobs: map[string]json.RawMessage{}}
	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	store := &fileLayout{}
	if err := json.Unmarshal(data, store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if store.Blobs == nil {
		store.Blobs = map[string]json.RawMessage{}
	}
	s.store = store
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling file first so a crash never leaves a torn document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	v, ok := s.store.Blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	// MarshalIndent re-indents nested blobs on save.
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return buf.Bytes(), nil
}

func (s *JSONStore) Put(key string, value []byte) error {
	return s.PutMany(map[string][]byte{key: value})
}

func (s *JSONStore) PutMany(entries map[string][]byte) error {
	if err := s.Load(); err != nil {
		return err
	}
	for k, v := range entries {
		if !json.Valid(v) {
			return fmt.Errorf("value for %q is not valid JSON", k)
		}
	}
	for k, v := range entries {
		s.store.Blobs[k] = append(json.RawMessage(nil), v...)
	}
	return s.save()
}

func (s *JSONStore) Delete(key string) error {
	if err := s.Load(); err != nil {
		return err
	}
	if _, ok := s.store.Blobs[key]; !ok {
		return nil
	}
	delete(s.store.Blobs, key)
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.store.Blobs))
	for k := range s.store.Blobs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
