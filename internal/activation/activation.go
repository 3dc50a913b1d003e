// Package activation checks an activation code against a plain-text allow
// list, one code per line, fetched over HTTP or read from a file.
package activation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/logger"
)

// Source provides the current allow list.
type Source interface {
	AllowList(ctx context.Context) ([]string, error)
}

// Normalize trims and upper-cases a code so comparison ignores case.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseAllowList reads one code per line, skipping blank lines.
func ParseAllowList(r io.Reader) ([]string, error) {
	var codes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if c := Normalize(sc.Text()); c != "" {
			codes = append(codes, c)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read code list: %w", err)
	}
	return codes, nil
}

// Match reports whether code appears in allow.
func Match(code string, allow []string) bool {
	c := Normalize(code)
	if c == "" {
		return false
	}
	for _, a := range allow {
		if Normalize(a) == c {
			return true
		}
	}
	return false
}

// Verify fetches the allow list and checks code against it.
func Verify(ctx context.Context, code string, src Source) error {
	if Normalize(code) == "" {
		return errs.ErrInvalidActivation
	}
	allow, err := src.AllowList(ctx)
	if err != nil {
		return err
	}
	if !Match(code, allow) {
		logger.Info("Activation code rejected")
		return errs.ErrInvalidActivation
	}
	return nil
}

// File reads the allow list from a local file.
type File string

func (f File) AllowList(context.Context) ([]string, error) {
	fh, err := os.Open(string(f))
	if err != nil {
		return nil, fmt.Errorf("failed to open code list: %w", err)
	}
	defer fh.Close()
	return ParseAllowList(fh)
}

// Fetcher downloads the allow list from URL.
type Fetcher struct {
	URL    string
	Client *http.Client
	now    func() time.Time
}

func NewFetcher(rawURL string) *Fetcher {
	return &Fetcher{
		URL:    rawURL,
		Client: &http.Client{Timeout: constants.ActivationFetchTimeout},
		now:    time.Now,
	}
}

func (f *Fetcher) AllowList(ctx context.Context) ([]string, error) {
	u, err := url.Parse(f.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid code list URL: %w", err)
	}
	// Cache-bust so a freshly uploaded list is seen immediately.
	q := u.Query()
	q.Set("t", strconv.FormatInt(f.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach the activation service, check your connection and try again: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("activation service returned %s, make sure the code list has been uploaded", resp.Status)
	}
	return ParseAllowList(io.LimitReader(resp.Body, 1<<20))
}
