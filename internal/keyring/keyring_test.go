package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestStorageURLRoundTrip(t *testing.T) {
	gokeyring.MockInit()

	want := "postgres://teacher@localhost:5432/garden?sslmode=disable"
	if err := SetStorageURL(want); err != nil {
		t.Fatalf("SetStorageURL() failed: %v", err)
	}

	got, err := GetStorageURL()
	if err != nil {
		t.Fatalf("GetStorageURL() failed: %v", err)
	}
	if got != want {
		t.Errorf("GetStorageURL() = %q, want %q", got, want)
	}
}

func TestSetEmptyValues(t *testing.T) {
	gokeyring.MockInit()

	if err := SetStorageURL(""); err == nil {
		t.Error("SetStorageURL(\"\") should return an error")
	}
	if err := SetPassword(""); err == nil {
		t.Error("SetPassword(\"\") should return an error")
	}
}

func TestEntriesAreIndependent(t *testing.T) {
	gokeyring.MockInit()

	if err := SetPassword("hunter2"); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	if _, err := GetStorageURL(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetStorageURL() error = %v, want ErrNotFound", err)
	}

	pw, err := GetPassword()
	if err != nil || pw != "hunter2" {
		t.Errorf("GetPassword() = %q, %v", pw, err)
	}
}

func TestDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := SetPassword("hunter2"); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	if err := DeletePassword(); err != nil {
		t.Fatalf("DeletePassword() failed: %v", err)
	}
	if _, err := GetPassword(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPassword() after delete error = %v, want ErrNotFound", err)
	}
	if err := DeletePassword(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeletePassword() error = %v, want ErrNotFound", err)
	}
	if err := DeleteStorageURL(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteStorageURL() error = %v, want ErrNotFound", err)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
