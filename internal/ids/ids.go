// Package ids generates identities for garden entities.
//
// Students, pets, rules and shop items get random UUIDv4 ids (122 random
// bits, collisions are not checked). Growth records get ULIDs drawn from a
// monotonic entropy source, so ids created by one process are strictly
// increasing and sort by creation time.
package ids

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Source hands out new identities.
type Source interface {
	EntityID() string
	RecordID(t time.Time) string
}

type defaultSource struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New returns a Source backed by uuid and monotonic ulid.
func New() Source {
	return &defaultSource{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (s *defaultSource) EntityID() string {
	return uuid.New().String()
}

func (s *defaultSource) RecordID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}
