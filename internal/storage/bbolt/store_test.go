package bbolt

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestLoadBeforeFirstSave(t *testing.T) {
	store := openTestStore(t)

	data, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found || data != nil {
		t.Fatalf("expected empty first load, got found=%v data=%q", found, data)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := openTestStore(t)
	payload := []byte(`{"campaigns":[]}`)

	if err := store.Save(context.Background(), payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found || !bytes.Equal(data, payload) {
		t.Fatalf("expected stored payload back, got found=%v data=%q", found, data)
	}
}

func TestSavePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Save(context.Background(), []byte("v1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	data, found, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if !found || string(data) != "v1" {
		t.Fatalf("expected persisted payload, got found=%v data=%q", found, data)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
