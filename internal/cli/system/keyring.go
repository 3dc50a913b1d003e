package system

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/petgarden/internal/cli"
	"github.com/julianstephens/petgarden/internal/keyring"
	"github.com/julianstephens/petgarden/internal/storage/postgres"
)

// KeyringSetCmd stores the storage URL used by --config keyring.
type KeyringSetCmd struct {
	URL string `arg:"" help:"postgres:// or redis:// URL without a password."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	switch {
	case strings.HasPrefix(cmd.URL, "postgres://"), strings.HasPrefix(cmd.URL, "postgresql://"):
		if err := postgres.ValidateConnString(cmd.URL); err != nil {
			return fmt.Errorf("invalid connection string: %w", err)
		}
	case strings.HasPrefix(cmd.URL, "redis://"), strings.HasPrefix(cmd.URL, "rediss://"):
		u, err := url.Parse(cmd.URL)
		if err != nil {
			return fmt.Errorf("invalid redis URL: %w", err)
		}
		if _, set := u.User.Password(); set {
			return errors.New("redis URLs must not carry credentials, store the password with 'petgarden keyring set-password'")
		}
	default:
		return errors.New("storage URL must start with postgres:// or redis://")
	}

	if err := keyring.SetStorageURL(cmd.URL); err != nil {
		return err
	}
	ctx.Println("✓ Storage URL stored in OS keyring")
	ctx.Println("  Use it with: petgarden --config keyring <command>")
	return nil
}

// KeyringSetPasswordCmd stores the database password.
type KeyringSetPasswordCmd struct {
	Password string `arg:"" help:"Database password."`
}

func (cmd *KeyringSetPasswordCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetPassword(cmd.Password); err != nil {
		return err
	}
	ctx.Println("✓ Database password stored in OS keyring")
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	urlErr := keyring.DeleteStorageURL()
	pwErr := keyring.DeletePassword()
	if errors.Is(urlErr, keyring.ErrNotFound) && errors.Is(pwErr, keyring.ErrNotFound) {
		return errors.New("nothing stored in keyring")
	}
	for _, err := range []error{urlErr, pwErr} {
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return err
		}
	}
	ctx.Println("✓ Credentials deleted from OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	ctx.Println("✓ OS keyring is available")
	if _, err := keyring.GetStorageURL(); err == nil {
		ctx.Println("✓ Storage URL is stored")
	} else {
		ctx.Println("ℹ No storage URL stored")
	}
	if _, err := keyring.GetPassword(); err == nil {
		ctx.Println("✓ Database password is stored")
	}
	return nil
}
