package persistence

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/talgya/pixel-city/internal/engine"
	"github.com/talgya/pixel-city/internal/tuning"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testSnapshot(t *testing.T) engine.Snapshot {
	t.Helper()
	cfg := tuning.Default()
	cfg.GridSize = 16
	sim := engine.NewSimulation(cfg, 3)
	sim.AdvanceTicks(10)
	return sim.Snapshot()
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	snap := testSnapshot(t)

	if err := db.SaveSlot(1, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := db.LoadSlot(1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Seed != snap.Seed || loaded.CityLevel != snap.CityLevel {
		t.Error("snapshot identity fields did not survive")
	}
	if loaded.Stats.PlayTimeSeconds != snap.Stats.PlayTimeSeconds {
		t.Errorf("play time = %d, want %d", loaded.Stats.PlayTimeSeconds, snap.Stats.PlayTimeSeconds)
	}
	if len(loaded.Grid) != len(snap.Grid) {
		t.Error("grid shape did not survive")
	}
	if len(loaded.RNG) == 0 {
		t.Error("rng state should persist")
	}
}

func TestEmptySlot(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadSlot(2); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("got %v, want ErrSlotEmpty", err)
	}
}

func TestSaveReplacesSlot(t *testing.T) {
	db := openTestDB(t)
	snap := testSnapshot(t)

	snap.CityLevel = 2
	if err := db.SaveSlot(1, snap); err != nil {
		t.Fatal(err)
	}
	snap.CityLevel = 5
	snap.SavedAt = time.Now().UTC()
	if err := db.SaveSlot(1, snap); err != nil {
		t.Fatal(err)
	}

	loaded, err := db.LoadSlot(1)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CityLevel != 5 {
		t.Errorf("city level = %d, want the newer save", loaded.CityLevel)
	}

	slots, err := db.Slots()
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Errorf("slots = %d, replacement must not add rows", len(slots))
	}
}

func TestSlotsListing(t *testing.T) {
	db := openTestDB(t)
	snap := testSnapshot(t)

	db.SaveSlot(3, snap)
	db.SaveSlot(1, snap)

	slots, err := db.Slots()
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 || slots[0].Slot != 1 || slots[1].Slot != 3 {
		t.Errorf("slots = %+v, want slots 1 and 3 in order", slots)
	}
	if slots[0].SessionID == "" {
		t.Error("slot metadata should carry a session id")
	}
}

func TestDeleteSlot(t *testing.T) {
	db := openTestDB(t)
	db.SaveSlot(1, testSnapshot(t))

	if err := db.DeleteSlot(1); err != nil {
		t.Fatal(err)
	}
	if _, err := db.LoadSlot(1); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("got %v, want ErrSlotEmpty after delete", err)
	}
}
