package postgres

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real server only when POSTGRES_TEST_URL is set.
func TestPostgresIntegration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	store := New(connStr)
	require.NoError(t, store.Init())
	defer store.Close()

	require.NoError(t, store.Put("integration", []byte(`{"ok":true}`)))
	got, err := store.Get("integration")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(got))
	require.NoError(t, store.Delete("integration"))
}
