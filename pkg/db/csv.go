// CSV-backed reference marker table.

package db

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/pchalerm/dnarisk/pkg/model"
)

const markersCSVName = "disease_markers.csv"

var csvHeader = []string{"Marker", "Associated Risk", "Description"}

// MarkerStore owns the data directory holding the reference marker table.
type MarkerStore struct {
	Dir string
}

// DefaultMarkers returns the built-in five-entry reference table used when
// no marker file is available. The engine is always operable with it.
func DefaultMarkers() []model.MarkerRecord {
	return []model.MarkerRecord{
		{Marker: "ATCGT", Risk: 0.8, Description: "High cholesterol risk"},
		{Marker: "GCTAG", Risk: 0.6, Description: "Linked to hypertension"},
		{Marker: "TTAGC", Risk: 0.7, Description: "Heart function irregularity"},
		{Marker: "CCTGA", Risk: 0.9, Description: "Artery blockage risk"},
		{Marker: "AGGCT", Risk: 0.5, Description: "Irregular heartbeat"},
	}
}

func (s *MarkerStore) csvPath() string {
	return path.Join(s.Dir, markersCSVName)
}

// EnsureDefaultCSV writes the default marker table to disk if no marker CSV
// exists yet. This is an explicit startup step, called once from main; the
// store never creates files as an import side effect.
func (s *MarkerStore) EnsureDefaultCSV() error {
	if _, err := os.Stat(s.csvPath()); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat marker csv: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.Create(s.csvPath())
	if err != nil {
		return fmt.Errorf("create marker csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write marker csv header: %w", err)
	}
	for _, rec := range DefaultMarkers() {
		row := []string{rec.Marker, strconv.FormatFloat(rec.Risk, 'g', -1, 64), rec.Description}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write marker csv row: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}

// LoadMarkersCSV reads the marker table from the store's CSV file. A missing
// or unreadable file is returned as an error so the caller can take the
// default-table branch explicitly.
func (s *MarkerStore) LoadMarkersCSV() ([]model.MarkerRecord, error) {
	f, err := os.Open(s.csvPath())
	if err != nil {
		return nil, fmt.Errorf("open marker csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse marker csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("marker csv %s is empty", s.csvPath())
	}

	// First row is the header.
	markers := make([]model.MarkerRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseMarkerRow(row)
		if err != nil {
			return nil, fmt.Errorf("marker csv row %d: %w", i+2, err)
		}
		markers = append(markers, rec)
	}

	return markers, nil
}

func parseMarkerRow(row []string) (model.MarkerRecord, error) {
	marker := strings.ToUpper(strings.TrimSpace(row[0]))
	if marker == "" {
		return model.MarkerRecord{}, fmt.Errorf("empty marker")
	}
	if !model.ValidSequence(marker) {
		return model.MarkerRecord{}, fmt.Errorf("marker %q contains bases outside A, T, C, G", marker)
	}

	risk, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return model.MarkerRecord{}, fmt.Errorf("bad risk value %q: %w", row[1], err)
	}

	return model.MarkerRecord{
		Marker:      marker,
		Risk:        risk,
		Description: strings.TrimSpace(row[2]),
	}, nil
}
