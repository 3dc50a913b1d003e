// Package records keeps the capped, append-only growth log.
package records

import (
	"time"

	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/ids"
	"github.com/julianstephens/petgarden/internal/models"
)

// Log stores growth records oldest first. Once the cap is reached the
// oldest entries are evicted.
type Log struct {
	entries []models.GrowthRecord
	limit   int
	ids     ids.Source
	now     func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithLimit overrides the maximum number of records kept.
func WithLimit(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.limit = n
		}
	}
}

// WithClock overrides the clock used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// WithIDs overrides the id source.
func WithIDs(src ids.Source) Option {
	return func(l *Log) {
		l.ids = src
	}
}

// New returns an empty log.
func New(opts ...Option) *Log {
	l := &Log{
		limit: constants.MaxGrowthRecords,
		ids:   ids.New(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewRecord builds a stamped record without appending it, so callers can
// stage records and commit them together with the rest of a transaction.
func (l *Log) NewRecord(studentName string, typ models.RecordType, description, valueChange string) models.GrowthRecord {
	ts := l.now()
	return models.GrowthRecord{
		ID:          l.ids.RecordID(ts),
		StudentName: studentName,
		Timestamp:   ts,
		Type:        typ,
		Description: description,
		ValueChange: valueChange,
	}
}

// Append commits records in the given order.
func (l *Log) Append(recs ...models.GrowthRecord) {
	l.entries = append(l.entries, recs...)
	l.trim()
}

// Records returns every record, newest first.
func (l *Log) Records() []models.GrowthRecord {
	return l.Recent(0)
}

// Recent returns up to n records, newest first. n <= 0 means all.
func (l *Log) Recent(n int) []models.GrowthRecord {
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]models.GrowthRecord, 0, n)
	for i := len(l.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// Len reports how many records are held.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear drops every record.
func (l *Log) Clear() {
	l.entries = nil
}

// Snapshot returns the records oldest first, the order they are persisted in.
func (l *Log) Snapshot() []models.GrowthRecord {
	return append([]models.GrowthRecord(nil), l.entries...)
}

// Restore replaces the log contents with recs given oldest first.
func (l *Log) Restore(recs []models.GrowthRecord) {
	l.entries = append([]models.GrowthRecord(nil), recs...)
	l.trim()
}

func (l *Log) trim() {
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append([]models.GrowthRecord(nil), l.entries[over:]...)
	}
}
