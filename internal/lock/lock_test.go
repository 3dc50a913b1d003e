package lock

import (
	"errors"
	"os"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

// withProcesses swaps the process table and our own pid for the test.
func withProcesses(t *testing.T, self int, procs map[int]string) {
	t.Helper()
	oldFind, oldPid := findProcessFunc, getpid
	t.Cleanup(func() { findProcessFunc, getpid = oldFind, oldPid })

	getpid = func() int { return self }
	findProcessFunc = func(pid int) (ps.Process, error) {
		exe, ok := procs[pid]
		if !ok {
			return nil, nil
		}
		return &mockProcess{pid: pid, executable: exe}, nil
	}
}

func writeLockfile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(Path(dir), []byte(content), 0600))
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, 100, map[int]string{100: "petgarden"})

	l, err := Acquire(dir)
	require.NoError(t, err)

	h, err := Inspect(dir)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, 100, h.PID)
	assert.True(t, h.Alive)

	require.NoError(t, l.Release())
	_, err = os.Stat(Path(dir))
	assert.True(t, os.IsNotExist(err))
}

func TestAcquireHeldByLiveProcess(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, 100, map[int]string{200: "petgarden"})
	writeLockfile(t, dir, "200|petgarden")

	_, err := Acquire(dir)
	assert.ErrorIs(t, err, ErrLocked)
}

func TestAcquireReplacesStaleLock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		procs   map[int]string
	}{
		{"dead process", "200|petgarden", map[int]string{}},
		{"pid reused by other program", "200|petgarden", map[int]string{200: "bash"}},
		{"malformed", "garbage", map[int]string{}},
		{"bad pid", "abc|petgarden", map[int]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			withProcesses(t, 100, tt.procs)
			writeLockfile(t, dir, tt.content)

			l, err := Acquire(dir)
			require.NoError(t, err)
			defer l.Release()

			h, err := Inspect(dir)
			require.NoError(t, err)
			assert.Equal(t, 100, h.PID)
		})
	}
}

func TestReleaseLeavesForeignLock(t *testing.T) {
	dir := t.TempDir()
	withProcesses(t, 100, map[int]string{})

	l, err := Acquire(dir)
	require.NoError(t, err)
	writeLockfile(t, dir, "300|petgarden")

	require.NoError(t, l.Release())
	_, err = os.Stat(Path(dir))
	assert.NoError(t, err, "lock taken over by another process must survive")
}

func TestInspectNoLockfile(t *testing.T) {
	h, err := Inspect(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, h)
}

func TestInspectMalformed(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, "12345")
	_, err := Inspect(dir)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrLocked))
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	assert.NoError(t, l.Release())
}
