// Package keyring keeps storage credentials in the OS keyring so they never
// appear in a connection string or a shell history.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/petgarden/internal/constants"
)

var (
	// ErrNotFound is returned when nothing is stored under the requested entry
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func get(user string) (string, error) {
	v, err := keyring.Get(constants.AppName, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return v, nil
}

func set(user, value, what string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", what)
	}
	if err := keyring.Set(constants.AppName, user, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", what, err)
	}
	return nil
}

func del(user string) error {
	err := keyring.Delete(constants.AppName, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// GetStorageURL returns the storage URL selected with --config keyring.
func GetStorageURL() (string, error) { return get(constants.DefaultKeyringUser) }

func SetStorageURL(url string) error {
	return set(constants.DefaultKeyringUser, url, "storage URL")
}

func DeleteStorageURL() error { return del(constants.DefaultKeyringUser) }

// GetPassword returns the database password used for Postgres and Redis.
func GetPassword() (string, error) { return get(constants.PasswordKeyringUser) }

func SetPassword(password string) error {
	return set(constants.PasswordKeyringUser, password, "password")
}

func DeletePassword() error { return del(constants.PasswordKeyringUser) }

// IsAvailable is a best-effort probe: a read that fails with anything other
// than "not found" means there is no usable keyring.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
