package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Cave: 1, Difficulty: 1, Diamonds: 5, Score: 100, Ticks: 800},
		{Cave: 1, Difficulty: 1, Diamonds: 2, Score: 50, Ticks: 300},
		{Cave: 1, Difficulty: 2, Diamonds: 12, Score: 200, Ticks: 1200, Cleared: true},
		{Cave: 2, Difficulty: 1, Diamonds: 9, Score: 500, Ticks: 900, Cleared: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns(1, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 runs for cave 1, got %d", len(got))
	}

	// Sorted by score descending
	if got[0].Score != 200 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Runs not in score order: %v %v %v", got[0].Score, got[1].Score, got[2].Score)
	}
	if !got[0].Cleared {
		t.Error("cleared flag lost in round trip")
	}
	if got[0].Difficulty != 2 || got[0].Diamonds != 12 || got[0].Ticks != 1200 {
		t.Errorf("run fields lost in round trip: %+v", got[0])
	}

	other, err := store.TopRuns(2, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for cave 2, got %d", len(other))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Cave: 3, Difficulty: 1, Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns(3, 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(1)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for unplayed cave, got %d", high)
	}

	store.SaveRun(RunEntry{Cave: 1, Difficulty: 1, Score: 100})
	store.SaveRun(RunEntry{Cave: 1, Difficulty: 1, Score: 300})
	store.SaveRun(RunEntry{Cave: 1, Difficulty: 1, Score: 200})

	high, err = store.HighScore(1)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Cave: 1, Score: 100})
	store.SaveRun(RunEntry{Cave: 1, Score: 200})
	store.SaveRun(RunEntry{Cave: 2, Score: 300})

	if err := store.ClearRuns(1); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	one, _ := store.TopRuns(1, 10)
	if len(one) != 0 {
		t.Errorf("Expected 0 runs for cave 1 after clear, got %d", len(one))
	}

	two, _ := store.TopRuns(2, 10)
	if len(two) != 1 {
		t.Error("Cave 2 runs should not be affected by clearing cave 1")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Cave: 1, Difficulty: 1, Score: 100, Ticks: 700})
	store.SaveRun(RunEntry{Cave: 1, Difficulty: 1, Score: 300, Ticks: 1100, Cleared: true})
	store.SaveRun(RunEntry{Cave: 1, Difficulty: 2, Score: 200, Ticks: 900, Cleared: true})

	stats, err := store.Stats(1)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Clears != 2 {
		t.Errorf("Clears = %d, want 2", stats.Clears)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.BestTicks != 900 {
		t.Errorf("BestTicks = %d, want 900 (fastest clear)", stats.BestTicks)
	}
}

func TestStoreStatsNoClearsHasZeroBestTicks(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Cave: 4, Score: 10, Ticks: 100})

	stats, err := store.Stats(4)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.BestTicks != 0 {
		t.Errorf("BestTicks = %d for cave with no clears", stats.BestTicks)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Cave: 1, Score: 100})
	store.SaveRun(RunEntry{Cave: 2, Score: 200, Cleared: true})

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 caves, got %d", len(stats))
	}
	if stats[2].Clears != 1 {
		t.Errorf("cave 2 clears = %d", stats[2].Clears)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		store.SaveRun(RunEntry{Cave: 1 + i%3, Score: i * 10})
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("Expected 10 recent runs, got %d", len(runs))
	}
	// Most recent insert first.
	if runs[0].Score != 240 {
		t.Errorf("first recent run score = %d, want 240", runs[0].Score)
	}
}

func TestStoreNestedPathCreation(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
