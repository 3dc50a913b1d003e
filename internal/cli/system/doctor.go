package system

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/lock"
	"github.com/julianstephens/petgarden/internal/state"
	"github.com/julianstephens/petgarden/internal/storage/sqlite"
)

type DoctorCmd struct{}

type checkResult int

const (
	checkOK checkResult = iota
	checkWarn
	checkFail
	checkSkipped
)

type check struct {
	name string
	run  func(ctx *cli.Context) (checkResult, string)
	// needsStore checks are skipped when storage is unreachable
	needsStore bool
}

var doctorChecks = []check{
	{"Storage reachable", checkStorage, false},
	{"Schema version", checkSchemaVersion, true},
	{"Activation", checkActivation, true},
	{"Process lock", checkLock, false},
	{"Backups present", checkBackups, false},
	{"Data integrity", checkIntegrity, true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	failed := 0
	reachable := true
	for _, c := range doctorChecks {
		result, detail := checkSkipped, "storage not reachable"
		if reachable || !c.needsStore {
			result, detail = c.run(ctx)
		}
		switch result {
		case checkOK:
			ctx.Printf("✓ %s: OK\n", c.name)
		case checkWarn:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
		case checkFail:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			failed++
			if c.name == "Storage reachable" {
				reachable = false
			}
		case checkSkipped:
			ctx.Printf("⊘ %s: SKIPPED\n", c.name)
		}
		if detail != "" {
			for _, line := range strings.Split(detail, "\n") {
				ctx.Printf("   %s\n", line)
			}
		}
	}

	ctx.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkStorage(ctx *cli.Context) (checkResult, string) {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return checkFail, err.Error()
	}
	return checkOK, fmt.Sprintf("%s (%d keys)", ctx.Store.GetConfigPath(), len(keys))
}

func checkSchemaVersion(ctx *cli.Context) (checkResult, string) {
	if s, ok := ctx.Store.(*sqlite.Store); ok {
		current, latest, err := s.SchemaVersion()
		if err != nil {
			return checkFail, err.Error()
		}
		if current > latest {
			return checkFail, fmt.Sprintf("database schema version %d is newer than supported version %d", current, latest)
		}
		if current < latest {
			return checkFail, fmt.Sprintf("migrations incomplete: current version %d, latest version %d", current, latest)
		}
	}

	versions, err := state.New(ctx.Store).Versions()
	if err != nil {
		return checkFail, err.Error()
	}
	var newer []string
	for key, v := range versions {
		if v > constants.SchemaVersion {
			newer = append(newer, fmt.Sprintf("%s is version %d", key, v))
		}
	}
	if len(newer) > 0 {
		return checkFail, strings.Join(newer, "\n")
	}
	return checkOK, ""
}

func checkActivation(ctx *cli.Context) (checkResult, string) {
	g, err := ctx.Garden()
	if err != nil {
		return checkFail, err.Error()
	}
	if !g.IsActivated() {
		return checkWarn, "not activated, run 'petgarden activate <code>'"
	}
	return checkOK, ""
}

func checkLock(ctx *cli.Context) (checkResult, string) {
	if ctx.DataDir == "" {
		return checkSkipped, "network storage is not locked"
	}
	holder, err := lock.Inspect(ctx.DataDir)
	if err != nil {
		return checkWarn, err.Error()
	}
	switch {
	case holder == nil:
		return checkOK, "no lockfile"
	case holder.PID == os.Getpid():
		return checkOK, "held by this process"
	case holder.Alive:
		return checkWarn, fmt.Sprintf("held by running process %d (%s)", holder.PID, holder.Executable)
	default:
		return checkWarn, fmt.Sprintf("stale lockfile from process %d, it is replaced on the next run", holder.PID)
	}
}

func checkBackups(ctx *cli.Context) (checkResult, string) {
	mgr, err := ctx.Backups()
	if errors.Is(err, cli.ErrBackupsUnsupported) {
		return checkSkipped, "backups are only kept for SQLite storage"
	}
	if err != nil {
		return checkWarn, err.Error()
	}
	backups, err := mgr.List()
	if err != nil {
		return checkWarn, fmt.Sprintf("failed to list backups: %v", err)
	}
	if len(backups) == 0 {
		return checkWarn, "no backups found, consider creating one with 'petgarden backup create'"
	}
	return checkOK, fmt.Sprintf("%d backup(s), newest %s", len(backups), backups[0].Timestamp.Format(constants.ExportTimeFormat))
}

func checkIntegrity(ctx *cli.Context) (checkResult, string) {
	if s, ok := ctx.Store.(*sqlite.Store); ok {
		result, err := s.IntegrityCheck()
		if err != nil {
			return checkFail, err.Error()
		}
		if result != "ok" {
			return checkFail, "sqlite integrity check: " + result
		}
	}
	g, err := ctx.Garden()
	if err != nil {
		return checkFail, err.Error()
	}
	if problems := g.Check(); len(problems) > 0 {
		return checkFail, strings.Join(problems, "\n")
	}
	return checkOK, ""
}
