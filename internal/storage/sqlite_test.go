package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

func openTest(t *testing.T) *Store {
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTest(t)

	in := Run{
		Scenario:  "landing",
		Level:     "landing",
		Mode:      "single",
		Preset:    "snappy",
		Seed:      42,
		Ticks:     97,
		Actors:    4,
		Grounded:  4,
		Contacts:  12,
		Fallbacks: 1,
		Finished:  true,
	}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}

	in.ID = id
	in.CreatedAt = got.CreatedAt
	if *got != in {
		t.Errorf("RunByID() = %+v, expected %+v", *got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.RunByID(id + 100)
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTest(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Scenario: "stack", Level: "stack", Mode: "single", Ticks: i + 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{Scenario: "pushout", Level: "pushout", Mode: "iterative", Ticks: 40}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	tests := []struct {
		name     string
		scenario string
		limit    int
		expected int
		first    int
	}{
		{"all", "", 10, 6, 40},
		{"one scenario", "stack", 10, 5, 5},
		{"limited", "stack", 3, 3, 5},
		{"default limit", "", 0, 6, 40},
		{"unknown", "nope", 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs, err := store.RecentRuns(tc.scenario, tc.limit)
			if err != nil {
				t.Fatalf("RecentRuns() failed: %v", err)
			}
			if len(runs) != tc.expected {
				t.Fatalf("RecentRuns() returned %d runs, expected %d", len(runs), tc.expected)
			}
			if tc.expected > 0 && runs[0].Ticks != tc.first {
				t.Errorf("newest run has %d ticks, expected %d", runs[0].Ticks, tc.first)
			}
		})
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTest(t)

	store.SaveRun(Run{Scenario: "stack", Level: "stack", Mode: "single"})
	store.SaveRun(Run{Scenario: "stack", Level: "stack", Mode: "single"})
	store.SaveRun(Run{Scenario: "landing", Level: "landing", Mode: "single"})

	n, err := store.ClearRuns("stack")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearRuns(stack) removed %d, expected 2", n)
	}

	runs, _ := store.RecentRuns("", 10)
	if len(runs) != 1 || runs[0].Scenario != "landing" {
		t.Errorf("remaining runs = %+v, expected one landing run", runs)
	}

	if n, _ := store.ClearRuns(""); n != 1 {
		t.Errorf("ClearRuns(\"\") removed %d, expected 1", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTest(t)

	store.SaveRun(Run{Scenario: "landing", Level: "landing", Mode: "single", Ticks: 100, Fallbacks: 2, Finished: true})
	store.SaveRun(Run{Scenario: "landing", Level: "landing", Mode: "single", Ticks: 200, Fallbacks: 0})
	store.SaveRun(Run{Scenario: "stack", Level: "stack", Mode: "iterative", Ticks: 50, Finished: true})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Stats() has %d scenarios, expected 2", len(stats))
	}

	landing := stats["landing"]
	if landing == nil {
		t.Fatal("missing landing stats")
	}
	if landing.Runs != 2 || landing.Finished != 1 {
		t.Errorf("landing runs/finished = %d/%d, expected 2/1", landing.Runs, landing.Finished)
	}
	if landing.AvgTicks != 150 {
		t.Errorf("landing AvgTicks = %v, expected 150", landing.AvgTicks)
	}
	if landing.AvgFallbacks != 1 {
		t.Errorf("landing AvgFallbacks = %v, expected 1", landing.AvgFallbacks)
	}
	if landing.LastRun.IsZero() {
		t.Error("landing LastRun should be set")
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store1.SaveRun(Run{Scenario: "sandbox", Level: "sandbox", Mode: "single", Ticks: 600})
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	runs, err := store2.RecentRuns("sandbox", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Ticks != 600 {
		t.Errorf("runs after reopen = %+v, expected one 600 tick run", runs)
	}
}

func TestNewRun(t *testing.T) {
	st := core.SimState{Tick: 90, Actors: 5, Grounded: 4, Contacts: 30, Fallbacks: 2, Finished: true}
	r := NewRun("stack", "tower", "iterative", st)

	expected := Run{
		Scenario:  "stack",
		Level:     "tower",
		Mode:      "iterative",
		Ticks:     90,
		Actors:    5,
		Grounded:  4,
		Contacts:  30,
		Fallbacks: 2,
		Finished:  true,
	}
	if r != expected {
		t.Errorf("NewRun() = %+v, expected %+v", r, expected)
	}
}
