package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/petgarden/internal/backup"
	"github.com/julianstephens/petgarden/internal/garden"
	"github.com/julianstephens/petgarden/internal/logger"
	"github.com/julianstephens/petgarden/internal/storage"
	"github.com/julianstephens/petgarden/internal/storage/sqlite"
)

// ErrBackupsUnsupported is returned by backup commands on non-SQLite stores.
var ErrBackupsUnsupported = errors.New("backups are only available for the SQLite backend")

type Context struct {
	Store storage.Provider
	Out   io.Writer

	// DataDir holds the lockfile; empty for network stores.
	DataDir string

	// Options are passed to garden.Open.
	Options []garden.Option

	garden *garden.Garden
}

// Garden opens the classroom held by the store on first use.
func (c *Context) Garden() (*garden.Garden, error) {
	if c.garden != nil {
		return c.garden, nil
	}
	g, err := garden.Open(c.Store, c.Options...)
	if err != nil {
		return nil, err
	}
	c.garden = g
	return g, nil
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Backups returns the backup manager for the SQLite database.
func (c *Context) Backups() (*backup.Manager, error) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return nil, ErrBackupsUnsupported
	}
	return backup.NewManager(c.Store.GetConfigPath()), nil
}

// PerformAutomaticBackup backs up the SQLite database before a destructive
// command. Failures are logged and otherwise ignored.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.Backups()
	if err != nil {
		return
	}
	if _, err := os.Stat(c.Store.GetConfigPath()); err != nil {
		return
	}
	info, err := mgr.Create()
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	logger.Info("Automatic backup created", "path", info.Path)
}

// Confirm asks a yes/no question on the terminal.
var Confirm = func(title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
