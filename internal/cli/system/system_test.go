package system

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "garden.db"))
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out, DataDir: dir}, &out
}

func writeCodes(t *testing.T, codes string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte(codes), 0o600))
	return path
}

func TestInitSeedsCatalog(t *testing.T) {
	ctx, out := setupTestContext(t)

	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Initialized petgarden storage")

	g, err := ctx.Garden()
	require.NoError(t, err)
	require.NoError(t, (&ActivateCmd{Code: "abc", CodesFile: writeCodes(t, "ABC\n")}).Run(ctx))
	rules, err := g.Rules()
	require.NoError(t, err)
	assert.Len(t, rules, 7)
}

func TestInitWithoutForceKeepsData(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&InitCmd{}).Run(ctx))
	g, _ := ctx.Garden()
	require.NoError(t, (&ActivateCmd{Code: "abc", CodesFile: writeCodes(t, "ABC")}).Run(ctx))
	_, err := g.AddStudent("Ann")
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, (&InitCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "already initialized")

	students, err := g.Students("")
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestInitForceDeclined(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&InitCmd{}).Run(ctx))

	orig := cli.Confirm
	cli.Confirm = func(string, string) (bool, error) { return false, nil }
	defer func() { cli.Confirm = orig }()

	out.Reset()
	require.NoError(t, (&InitCmd{Force: true}).Run(ctx))
	assert.Contains(t, out.String(), "Init cancelled.")
}

func TestInitForceResetsAndBacksUp(t *testing.T) {
	ctx, _ := setupTestContext(t)
	require.NoError(t, (&InitCmd{}).Run(ctx))
	require.NoError(t, (&ActivateCmd{Code: "abc", CodesFile: writeCodes(t, "ABC")}).Run(ctx))
	g, _ := ctx.Garden()
	_, err := g.AddStudent("Ann")
	require.NoError(t, err)

	require.NoError(t, (&InitCmd{Force: true, Yes: true, NoSeed: true}).Run(ctx))

	students, err := g.Students("")
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.True(t, g.IsActivated())

	mgr, err := ctx.Backups()
	require.NoError(t, err)
	backups, err := mgr.List()
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestActivateRejectsUnknownCode(t *testing.T) {
	ctx, _ := setupTestContext(t)
	require.NoError(t, (&InitCmd{}).Run(ctx))

	err := (&ActivateCmd{Code: "nope", CodesFile: writeCodes(t, "ABC")}).Run(ctx)
	assert.Error(t, err)

	err = (&ActivateCmd{Code: "nope"}).Run(ctx)
	assert.ErrorContains(t, err, "--codes-url")
}

func TestDoctorHealthy(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&InitCmd{}).Run(ctx))
	require.NoError(t, (&ActivateCmd{Code: "abc", CodesFile: writeCodes(t, "ABC")}).Run(ctx))

	err := (&DoctorCmd{}).Run(ctx)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Schema version: OK")
	assert.Contains(t, out.String(), "⚠ Backups present: WARNING")
	assert.Contains(t, out.String(), "✓ Data integrity: OK")
}

func TestDoctorWarnsWhenNotActivated(t *testing.T) {
	ctx, out := setupTestContext(t)
	require.NoError(t, (&InitCmd{}).Run(ctx))

	require.NoError(t, (&DoctorCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "⚠ Activation: WARNING")
}
