package system

import (
	"fmt"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/constants"
)

type InitCmd struct {
	Force  bool `help:"Reset an existing classroom. A backup is taken first on SQLite."`
	NoSeed bool `help:"Start with an empty rule and shop catalog."`
	Yes    bool `short:"y" help:"Do not ask for confirmation."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to inspect storage: %w", err)
	}
	g, err := ctx.Garden()
	if err != nil {
		return err
	}

	if hasClassroom(keys) {
		if !c.Force {
			ctx.Printf("Storage is already initialized at: %s\n", ctx.Store.GetConfigPath())
			ctx.Println("Use --force to reset the classroom.")
			return nil
		}
		if !c.Yes {
			ok, err := cli.Confirm("Reset the classroom?",
				"Every student, pet, rule, shop item and growth record will be removed. Activation is kept.")
			if err != nil {
				return err
			}
			if !ok {
				ctx.Println("Init cancelled.")
				return nil
			}
		}
		ctx.PerformAutomaticBackup()
	}

	if err := g.Reset(!c.NoSeed); err != nil {
		return fmt.Errorf("failed to write initial state: %w", err)
	}
	ctx.Printf("Initialized petgarden storage at: %s\n", ctx.Store.GetConfigPath())
	if !c.NoSeed {
		ctx.Println("Installed the default point rules and shop items.")
	}
	if !g.IsActivated() {
		ctx.Println("Next: run 'petgarden activate <code>' to unlock the garden.")
	}
	return nil
}

// hasClassroom reports whether anything beyond the activation flag is stored.
func hasClassroom(keys []string) bool {
	for _, k := range keys {
		if k != constants.KeyActivated {
			return true
		}
	}
	return false
}
