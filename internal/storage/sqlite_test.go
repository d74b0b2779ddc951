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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	results := []Result{
		{Outcome: OutcomeWon, Width: 20, Height: 20, Mines: 66},
		{Outcome: OutcomeLost, Width: 20, Height: 20, Mines: 66},
		{Outcome: OutcomeWon, Width: 9, Height: 9, Mines: 10},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}

	// Newest first
	if recent[0].Width != 9 || recent[0].Outcome != OutcomeWon {
		t.Errorf("Expected newest result to be the 9x9 win, got %+v", recent[0])
	}
	if recent[2].Outcome != OutcomeWon || recent[2].Width != 20 {
		t.Errorf("Expected oldest result to be the 20x20 win, got %+v", recent[2])
	}
}

func TestRecentResultsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(Result{Outcome: OutcomeLost, Width: 8, Height: 8, Mines: 10}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 results with limit 3, got %d", len(recent))
	}
}

func TestGetStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 0 || stats.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, o := range []Outcome{OutcomeWon, OutcomeWon, OutcomeWon, OutcomeLost} {
		if _, err := store.SaveResult(Result{Outcome: o, Width: 10, Height: 10, Mines: 16}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 4 || stats.Wins != 3 || stats.Losses != 1 {
		t.Errorf("Expected 4 games / 3 wins / 1 loss, got %+v", stats)
	}
	if stats.WinRate() != 0.75 {
		t.Errorf("Expected win rate 0.75, got %f", stats.WinRate())
	}
}

func TestClearResults(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveResult(Result{Outcome: OutcomeWon, Width: 5, Height: 5, Mines: 4}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Games != 0 {
		t.Errorf("Expected no games after clear, got %d", stats.Games)
	}
}
