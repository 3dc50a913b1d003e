// Package storage defines the key-value contract every backend implements.
package storage

import "errors"

// ErrKeyNotFound is returned by Get for a key that was never written.
var ErrKeyNotFound = errors.New("key not found")

// ErrNotInitialized is returned by Load when the backing store does not exist yet.
var ErrNotInitialized = errors.New("storage not initialized, run 'petgarden init' first")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Blobs
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	// PutMany writes every entry or none of them.
	PutMany(entries map[string][]byte) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utility
	GetConfigPath() string
}
