package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/cli/backups"
	"github.com/julianstephens/petgarden/internal/cli/records"
	"github.com/julianstephens/petgarden/internal/cli/rules"
	"github.com/julianstephens/petgarden/internal/cli/settings"
	"github.com/julianstephens/petgarden/internal/cli/shop"
	"github.com/julianstephens/petgarden/internal/cli/students"
	"github.com/julianstephens/petgarden/internal/cli/system"
	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
	"github.com/julianstephens/petgarden/internal/lock"
	"github.com/julianstephens/petgarden/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file, JSON file, postgres:// or redis:// URL, or 'keyring' to use the URL stored in the OS keyring. Never put passwords in URLs." env:"PETGARDEN_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Log debug output to stderr." env:"PETGARDEN_DEBUG"`

	Init     system.InitCmd     `cmd:"" help:"Initialize petgarden storage."`
	Activate system.ActivateCmd `cmd:"" help:"Unlock the garden with an activation code."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Student  struct {
		Add    students.StudentAddCmd    `cmd:"" help:"Add students."`
		List   students.StudentListCmd   `cmd:"" help:"List students." default:"1"`
		Rename students.StudentRenameCmd `cmd:"" help:"Rename a student."`
		Show   students.StudentShowCmd   `cmd:"" help:"Show a student and their pet."`
	} `cmd:"" help:"Manage students."`
	Adopt students.AdoptCmd `cmd:"" help:"Adopt a pet for a student."`
	Award students.AwardCmd `cmd:"" help:"Apply a point rule to students."`
	Honor students.HonorCmd `cmd:"" help:"Show the honor roll."`
	Shop  struct {
		List   shop.ShopListCmd   `cmd:"" help:"List shop items." default:"1"`
		Redeem shop.ShopRedeemCmd `cmd:"" help:"Spend medals on an item."`
	} `cmd:"" help:"Browse and use the shop."`
	Item struct {
		Add      shop.ItemAddCmd      `cmd:"" help:"Add a shop item."`
		Remove   shop.ItemRemoveCmd   `cmd:"" help:"Remove a shop item."`
		Restock  shop.ItemRestockCmd  `cmd:"" help:"Change an item's stock by a delta."`
		SetStock shop.ItemSetStockCmd `cmd:"" name:"set-stock" help:"Set an item's stock."`
	} `cmd:"" help:"Manage shop items."`
	Rule struct {
		List   rules.RuleListCmd   `cmd:"" help:"List point rules." default:"1"`
		Add    rules.RuleAddCmd    `cmd:"" help:"Add a point rule."`
		Remove rules.RuleRemoveCmd `cmd:"" help:"Remove a point rule."`
	} `cmd:"" help:"Manage point rules."`
	Catalog struct {
		Import shop.CatalogImportCmd `cmd:"" help:"Replace rules and/or items from a YAML file."`
		Export shop.CatalogExportCmd `cmd:"" help:"Write rules and items as YAML."`
	} `cmd:"" help:"Import and export the rule and shop catalog."`
	Records struct {
		List   records.RecordsListCmd   `cmd:"" help:"Show recent growth records." default:"1"`
		Clear  records.RecordsClearCmd  `cmd:"" help:"Delete every growth record."`
		Export records.RecordsExportCmd `cmd:"" help:"Export growth records as CSV."`
	} `cmd:"" help:"Browse the growth log."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change display settings."`
	Keyring  struct {
		Set         system.KeyringSetCmd         `cmd:"" help:"Store a storage URL in the OS keyring."`
		SetPassword system.KeyringSetPasswordCmd `cmd:"" name:"set-password" help:"Store the database password in the OS keyring."`
		Delete      system.KeyringDeleteCmd      `cmd:"" help:"Remove stored credentials."`
		Status      system.KeyringStatusCmd      `cmd:"" help:"Check the OS keyring." default:"1"`
	} `cmd:"" help:"Manage credentials in the OS keyring."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups (SQLite only)."`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Classroom pet garden: points, pets and a medal shop"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)
	os.Exit(run(ctx))
}

func run(ctx *kong.Context) int {
	command := ctx.Command()

	if strings.HasPrefix(command, "keyring") || (strings.HasPrefix(command, "adopt") && CLI.Adopt.ListBreeds) {
		return report(ctx.Run(&cli.Context{}))
	}

	target, err := resolveTarget(CLI.Config)
	if err != nil {
		return report(err)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: target.logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	logger.Debug("Starting", "command", command, "storage", target.kind)

	store, err := target.open()
	if err != nil {
		return report(err)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store, DataDir: target.dataDir}

	if target.dataDir != "" && command != "doctor" {
		if err := os.MkdirAll(target.dataDir, 0700); err != nil {
			return report(fmt.Errorf("failed to create data directory: %w", err))
		}
		l, err := lock.Acquire(target.dataDir)
		if err != nil {
			return report(err)
		}
		defer func() {
			if err := l.Release(); err != nil {
				logger.Warn("Failed to release lock", "error", err)
			}
		}()
	}

	// init loads the store itself
	if !strings.HasPrefix(command, "init") {
		if err := store.Load(); err != nil {
			return report(err)
		}
	}

	return report(ctx.Run(appCtx))
}

func report(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errs.ErrNothingToExport):
		fmt.Fprintln(os.Stderr, "Nothing to export: the growth log is empty.")
		return 0
	default:
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, errs.Format(err))
		return 1
	}
}
