package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "nested", "petgarden.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStoreLoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestJSONStorePutGet(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.Put("students", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// A second handle must see the persisted blob.
	reopened := NewJSONStore(store.GetConfigPath())
	got, err := reopened.Get("students")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("unexpected blob %s", got)
	}

	if _, err := reopened.Get("nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestJSONStorePutManyRejectsInvalidJSON(t *testing.T) {
	store := newTestJSONStore(t)

	err := store.PutMany(map[string][]byte{
		"good": []byte(`true`),
		"bad":  []byte(`{`),
	})
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if _, err := store.Get("good"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("partial write happened: %v", err)
	}
}

func TestJSONStoreKeysAndDelete(t *testing.T) {
	store := newTestJSONStore(t)
	for _, k := range []string{"shop", "rules"} {
		if err := store.Put(k, []byte(`[]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "rules" || keys[1] != "shop" {
		t.Errorf("unexpected keys %v", keys)
	}

	if err := store.Delete("rules"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete("rules"); err != nil {
		t.Errorf("deleting a missing key should be a no-op: %v", err)
	}
	keys, _ = store.Keys()
	if len(keys) != 1 {
		t.Errorf("expected 1 key, got %v", keys)
	}
}

func TestJSONStoreInitKeepsExistingData(t *testing.T) {
	store := newTestJSONStore(t)
	if err := store.Put("config", []byte(`{}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	again := NewJSONStore(store.GetConfigPath())
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if _, err := again.Get("config"); err != nil {
		t.Errorf("Init must not wipe data: %v", err)
	}
	if _, err := os.Stat(store.GetConfigPath() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind")
	}
}
