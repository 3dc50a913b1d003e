package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/keyring"
	"github.com/julianstephens/petgarden/internal/logger"
	"github.com/julianstephens/petgarden/internal/storage"
	"github.com/julianstephens/petgarden/internal/storage/postgres"
	"github.com/julianstephens/petgarden/internal/storage/redis"
	"github.com/julianstephens/petgarden/internal/storage/sqlite"
)

const passwordEnv = "PETGARDEN_DB_PASSWORD"

type storageKind string

const (
	kindSQLite   storageKind = "sqlite"
	kindJSON     storageKind = "json"
	kindPostgres storageKind = "postgres"
	kindRedis    storageKind = "redis"
)

// target is a parsed --config value.
type target struct {
	kind    storageKind
	path    string // file path or URL
	dataDir string // lockfile directory, empty for network stores
	logDir  string
}

func resolveTarget(config string) (target, error) {
	if config == constants.KeyringConfigValue {
		u, err := keyring.GetStorageURL()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return target{}, errors.New("no storage URL in keyring, store one with 'petgarden keyring set <url>'")
			}
			return target{}, err
		}
		config = u
	}

	switch {
	case strings.HasPrefix(config, "postgres://"), strings.HasPrefix(config, "postgresql://"):
		if err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return target{}, fmt.Errorf("%w: use 'petgarden keyring set-password', %s, or .pgpass instead", err, passwordEnv)
			}
			return target{}, err
		}
		return target{kind: kindPostgres, path: config, logDir: userConfigDir()}, nil
	case strings.HasPrefix(config, "redis://"), strings.HasPrefix(config, "rediss://"):
		return target{kind: kindRedis, path: config, logDir: userConfigDir()}, nil
	}

	path, err := expandHome(config)
	if err != nil {
		return target{}, err
	}
	kind := kindSQLite
	if strings.EqualFold(filepath.Ext(path), ".json") {
		kind = kindJSON
	}
	dir := filepath.Dir(path)
	return target{kind: kind, path: path, dataDir: dir, logDir: dir}, nil
}

func (t target) open() (storage.Provider, error) {
	switch t.kind {
	case kindPostgres:
		// lib/pq reads PGPASSWORD when the URL has no password
		if pw := password(); pw != "" && os.Getenv("PGPASSWORD") == "" {
			if err := os.Setenv("PGPASSWORD", pw); err != nil {
				return nil, err
			}
		}
		return postgres.New(t.path), nil
	case kindRedis:
		return redis.New(t.path, password()), nil
	case kindJSON:
		return storage.NewJSONStore(t.path), nil
	default:
		return sqlite.NewStore(t.path), nil
	}
}

// password prefers the environment over the keyring.
func password() string {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw
	}
	pw, err := keyring.GetPassword()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring password lookup failed", "error", err)
		}
		return ""
	}
	return pw
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), constants.AppName)
	}
	return filepath.Join(dir, constants.AppName)
}
