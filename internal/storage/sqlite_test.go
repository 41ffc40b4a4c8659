package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rapidroll/internal/highscore"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Path() != dbPath {
		t.Errorf("Path() = %q, expected %q", store.Path(), dbPath)
	}
}

func TestStoreEmptyLoad(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty list, got %v", entries)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	want := []highscore.Entry{
		{Name: "ann", Score: 300, DateTime: "2024-03-09 14:05:07"},
		{Name: "bob", Score: 200, DateTime: "2024-03-09 15:00:00"},
		{Name: "cy", Score: 200, DateTime: "2024-03-10 08:30:00"},
	}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save([]highscore.Entry{{Name: "old", Score: 1, DateTime: "2024-01-01 00:00:00"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]highscore.Entry{{Name: "new", Score: 2, DateTime: "2024-01-02 00:00:00"}}); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "new" {
		t.Errorf("Load() = %v, expected only the latest list", got)
	}

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}
	if got, _ := store.Load(); len(got) != 0 {
		t.Errorf("Save(nil) should clear the table, got %v", got)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Count != 0 || stats.HighScore != 0 || stats.LastPlayed != "" {
		t.Errorf("empty stats = %+v", stats)
	}

	if err := store.Save([]highscore.Entry{
		{Name: "ann", Score: 300, DateTime: "2024-03-09 14:05:07"},
		{Name: "bob", Score: 100, DateTime: "2024-03-11 09:00:00"},
	}); err != nil {
		t.Fatal(err)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Count != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed != "2024-03-11 09:00:00" {
		t.Errorf("LastPlayed = %q", stats.LastPlayed)
	}
}

func TestStoreBacksBoard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}

	board := highscore.NewBoard(store, nil, nil)
	if err := board.Add("ann", 42); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got := highscore.NewBoard(reopened, nil, nil).Entries()
	if len(got) != 1 || got[0].Name != "ann" || got[0].Score != 42 {
		t.Errorf("reopened board = %v", got)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.rapidroll/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join(".rapidroll", "scores.db")) {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("relative/path.db"); got != "relative/path.db" {
		t.Errorf("ExpandHome() changed a plain path: %q", got)
	}
}
