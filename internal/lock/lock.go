// Package lock keeps a second petgarden process from writing to the same
// data directory. The lockfile holds "<pid>|<executable>" and is treated as
// stale when that process is gone or is no longer petgarden.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/logger"
)

// ErrLocked is returned when another live petgarden process holds the lock.
var ErrLocked = errors.New("another petgarden process is using this data directory")

var (
	findProcessFunc = ps.FindProcess
	getpid          = os.Getpid
)

type Lock struct {
	path string
	pid  int
}

// Path returns the lockfile location for a data directory.
func Path(dir string) string {
	return filepath.Join(dir, constants.LockfileName)
}

// Holder describes the process recorded in a lockfile.
type Holder struct {
	PID        int
	Executable string
	Alive      bool
}

// Inspect reads the lockfile in dir. It returns nil when there is none.
func Inspect(dir string) (*Holder, error) {
	content, err := os.ReadFile(Path(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read lockfile: %w", err)
	}

	pidStr, exe, ok := strings.Cut(strings.TrimSpace(string(content)), "|")
	if !ok {
		return nil, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil || pid <= 0 {
		return nil, errors.New("invalid process ID in lockfile")
	}

	h := &Holder{PID: pid, Executable: exe}
	proc, err := findProcessFunc(pid)
	if err == nil && proc != nil && strings.HasPrefix(proc.Executable(), constants.AppName) {
		h.Alive = true
	}
	return h, nil
}

// Acquire takes the lock for dir, replacing a stale or malformed lockfile.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	path := Path(dir)
	self := getpid()

	h, err := Inspect(dir)
	switch {
	case err != nil:
		logger.Warn("Replacing unreadable lockfile", "path", path, "error", err)
		_ = os.Remove(path)
	case h != nil && h.Alive && h.PID != self:
		return nil, fmt.Errorf("%w (pid %d)", ErrLocked, h.PID)
	case h != nil:
		if h.PID != self {
			logger.Warn("Removing stale lockfile", "path", path, "pid", h.PID)
		}
		_ = os.Remove(path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if errors.Is(err, os.ErrExist) {
		// Lost a race with another process starting at the same moment.
		return nil, ErrLocked
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create lockfile: %w", err)
	}
	defer f.Close()

	exe, _ := os.Executable()
	if _, err := fmt.Fprintf(f, "%d|%s", self, filepath.Base(exe)); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}
	return &Lock{path: path, pid: self}, nil
}

// Release removes the lockfile if it still belongs to this process.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	content, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	pidStr, _, _ := strings.Cut(string(content), "|")
	if pidStr != strconv.Itoa(l.pid) {
		return nil
	}
	return os.Remove(l.path)
}
