package storage

import (
	"sync"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenEmpty(t *testing.T) {
	store := openTestStore(t)

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty ledger, got %d runs", n)
	}

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best 0 for empty ledger, got %d", best)
	}

	runs, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	runs := []Run{
		{Player: "brave-otter", Score: 100, Rows: 10, Level: 4, EndedAt: base},
		{Player: "quiet-fox", Score: 50, Rows: 5, Level: 2, EndedAt: base.Add(time.Minute)},
		{Player: "brave-otter", Score: 200, Rows: 20, Level: 7, EndedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		id, err := store.RecordRun(r)
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("Expected positive ID, got %d", id)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("TopRuns()[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}

	first := top[0]
	if first.Player != "brave-otter" || first.Rows != 20 || first.Level != 7 {
		t.Errorf("Unexpected top run: %+v", first)
	}
	if !first.EndedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", first.EndedAt, base.Add(2*time.Minute))
	}

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 200 {
		t.Errorf("Expected best 200, got %d", best)
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 runs, got %d", n)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.RecordRun(Run{Player: "p", Score: i * 10}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(top))
	}
	if top[0].Score != 140 {
		t.Errorf("Expected top score 140, got %d", top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreTiesFavorEarlierRun(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	store.RecordRun(Run{Player: "late", Score: 30, EndedAt: base.Add(time.Second)})
	store.RecordRun(Run{Player: "early", Score: 30, EndedAt: base})

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].Player != "early" {
		t.Errorf("Expected earlier run first on tie, got %q", top[0].Player)
	}
}

func TestStoreRecordRunDefaultsEndedAt(t *testing.T) {
	store := openTestStore(t)
	before := time.Now().Add(-time.Second)

	if _, err := store.RecordRun(Run{Player: "p", Score: 10}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	top, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if top[0].EndedAt.Before(before) {
		t.Errorf("EndedAt should default to now, got %v", top[0].EndedAt)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.RecordRun(Run{Player: "p", Score: 10}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	n, err := b.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Separate in-memory stores should not share runs, got %d", n)
	}
}

func TestStoreConcurrentRecord(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.RecordRun(Run{Player: "p", Score: i}); err != nil {
				t.Errorf("RecordRun() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 8 {
		t.Errorf("Expected 8 runs, got %d", n)
	}
}
