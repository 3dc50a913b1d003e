package activation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/julianstephens/petgarden/internal/errors"
)

func TestParseAllowList(t *testing.T) {
	codes, err := ParseAllowList(strings.NewReader("  abc-123 \n\nXyZ\r\n   \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC-123", "XYZ"}, codes)
}

func TestMatch(t *testing.T) {
	allow := []string{"ABC-123", "XYZ"}

	assert.True(t, Match(" abc-123 ", allow))
	assert.True(t, Match("xyz", allow))
	assert.False(t, Match("abc", allow))
	assert.False(t, Match("   ", []string{""}))
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte("garden-2026\n"), 0600))

	require.NoError(t, Verify(context.Background(), "GARDEN-2026", File(path)))

	err := Verify(context.Background(), "nope", File(path))
	assert.ErrorIs(t, err, errs.ErrInvalidActivation)

	_, err = File(filepath.Join(t.TempDir(), "missing.txt")).AllowList(context.Background())
	assert.Error(t, err)
}

func TestFetcher(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("t")
		_, _ = w.Write([]byte("class-a\nclass-b\n"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL + "/codes.txt")
	f.now = func() time.Time { return time.UnixMilli(1700000000123) }

	codes, err := f.AllowList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CLASS-A", "CLASS-B"}, codes)
	assert.Equal(t, "1700000000123", gotQuery)

	assert.NoError(t, Verify(context.Background(), "Class-B", f))
}

func TestFetcherHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewFetcher(srv.URL).AllowList(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.NotErrorIs(t, err, errs.ErrInvalidActivation)
}

func TestVerifyEmptyCodeSkipsFetch(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	err := Verify(context.Background(), "  ", NewFetcher(srv.URL))
	assert.ErrorIs(t, err, errs.ErrInvalidActivation)
	assert.False(t, called)
}
