package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("parent directory not created: %v", err)
	}
}

func TestStoreEmptyBest(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best 0 on empty database, got %d", best)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, best := range []int{100, 2048, 64} {
		if err := store.SaveBest(best); err != nil {
			t.Fatalf("SaveBest(%d) failed: %v", best, err)
		}
		got, err := store.LoadBest()
		if err != nil {
			t.Fatalf("LoadBest() failed: %v", err)
		}
		if got != best {
			t.Errorf("LoadBest() = %d, want %d", got, best)
		}
	}

	entry, err := store.Entry()
	if err != nil {
		t.Fatalf("Entry() failed: %v", err)
	}
	if entry.GameID != DefaultGameID {
		t.Errorf("Entry().GameID = %q, want %q", entry.GameID, DefaultGameID)
	}
	if entry.UpdatedAt.IsZero() {
		t.Error("Entry().UpdatedAt should be set after a save")
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBest(512); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 512 {
		t.Errorf("Expected best 512 after reopen, got %d", best)
	}
}

func TestStoreRejectsNegative(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.SaveBest(-1); err == nil {
		t.Error("SaveBest(-1) should fail")
	}
}
