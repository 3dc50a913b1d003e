package ids

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIDIsUUID(t *testing.T) {
	src := New()
	id := src.EntityID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, src.EntityID())
}

func TestRecordIDsAreMonotonic(t *testing.T) {
	src := New()
	now := time.Now()

	prev := src.RecordID(now)
	for i := 0; i < 1000; i++ {
		next := src.RecordID(now)
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestRecordIDsSortByTime(t *testing.T) {
	src := New()
	earlier := src.RecordID(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	later := src.RecordID(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
}
