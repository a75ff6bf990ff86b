package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}
	return db
}

func TestMarkerDB_SaveAndLoad(t *testing.T) {
	db := openTestDB(t)

	defaults := DefaultMarkers()
	if err := SaveMarkers(db, defaults); err != nil {
		t.Fatalf("SaveMarkers failed: %v", err)
	}

	markers, err := LoadMarkers(db)
	if err != nil {
		t.Fatalf("LoadMarkers failed: %v", err)
	}

	if len(markers) != len(defaults) {
		t.Fatalf("expected %d markers, got %d", len(defaults), len(markers))
	}
	// Load order must match save order, the engine iterates in table order.
	for i, want := range defaults {
		if markers[i] != want {
			t.Errorf("marker %d = %+v, want %+v", i, markers[i], want)
		}
	}
}

func TestMarkerDB_SaveReplaces(t *testing.T) {
	db := openTestDB(t)

	if err := SaveMarkers(db, DefaultMarkers()); err != nil {
		t.Fatal(err)
	}
	if err := SaveMarkers(db, DefaultMarkers()[:2]); err != nil {
		t.Fatal(err)
	}

	markers, err := LoadMarkers(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(markers) != 2 {
		t.Errorf("SaveMarkers should replace previous rows, got %d", len(markers))
	}
}

func TestMarkerDB_LoadEmpty(t *testing.T) {
	db := openTestDB(t)

	markers, err := LoadMarkers(db)
	if err != nil {
		t.Fatalf("LoadMarkers on empty table failed: %v", err)
	}
	if len(markers) != 0 {
		t.Errorf("expected empty table, got %v", markers)
	}
}
