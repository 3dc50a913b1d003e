package records

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/render"
	errs "github.com/julianstephens/petgarden/internal/errors"
)

type RecordsListCmd struct {
	Limit int `short:"n" default:"20" help:"Number of records to show, 0 for all."`
}

func (c *RecordsListCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	recs, err := g.Records(c.Limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		ctx.Println("No growth records yet.")
		return nil
	}
	render.Records(ctx.Stdout(), recs)
	if total := g.RecordCount(); total > len(recs) {
		render.Muted(ctx.Stdout(), fmt.Sprintf("Showing %d of %d records.", len(recs), total))
	}
	return nil
}

type RecordsClearCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *RecordsClearCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	if g.RecordCount() == 0 {
		ctx.Println("No growth records to clear.")
		return nil
	}
	if !c.Yes {
		ok, err := cli.Confirm("Clear all growth records?",
			fmt.Sprintf("%d records will be removed. Students, pets and the shop are not touched.", g.RecordCount()))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Clear cancelled.")
			return nil
		}
	}
	ctx.PerformAutomaticBackup()

	n, err := g.ClearRecords()
	if err != nil {
		return err
	}
	ctx.Printf("✓ Cleared %d growth records\n", n)
	return nil
}

type RecordsExportCmd struct {
	Out string `short:"o" type:"path" help:"Write the CSV to this file instead of stdout."`
}

func (c *RecordsExportCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Garden()
	if err != nil {
		return err
	}
	if c.Out == "" {
		_, err := g.ExportRecords(ctx.Stdout())
		return err
	}
	if g.RecordCount() == 0 {
		// no file is created for an empty log
		return errs.ErrNothingToExport
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.Out), ".export-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	n, err := g.ExportRecords(tmp)
	if err == nil {
		// CreateTemp opens 0600; exports are meant to be shared
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), c.Out); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write export file: %w", err)
	}
	ctx.Printf("✓ Exported %d records to %s\n", n, c.Out)
	return nil
}
