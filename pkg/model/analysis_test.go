package model

import (
	"math"
	"testing"
)

func testTable() []MarkerRecord {
	return []MarkerRecord{
		{Marker: "ATCGT", Risk: 0.8, Description: "High cholesterol risk"},
		{Marker: "GCTAG", Risk: 0.6, Description: "Linked to hypertension"},
		{Marker: "TTAGC", Risk: 0.7, Description: "Heart function irregularity"},
		{Marker: "CCTGA", Risk: 0.9, Description: "Artery blockage risk"},
		{Marker: "AGGCT", Risk: 0.5, Description: "Irregular heartbeat"},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnalyze_SingleMarker(t *testing.T) {
	table := []MarkerRecord{{Marker: "ATCGT", Risk: 0.8, Description: "High cholesterol risk"}}

	result := Analyze("AAATCGTAA", table, 0.5)

	if len(result.Detections) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(result.Detections))
	}
	if result.Detections[0].Marker != "ATCGT" {
		t.Errorf("detected marker = %q, want ATCGT", result.Detections[0].Marker)
	}
	if result.Summary.DetectedCount != 1 {
		t.Errorf("detected_count = %d, want 1", result.Summary.DetectedCount)
	}
	if !almostEqual(result.Summary.TotalRiskScore, 0.8) {
		t.Errorf("total_risk_score = %v, want 0.8", result.Summary.TotalRiskScore)
	}
}

func TestAnalyze_DefaultTableEndToEnd(t *testing.T) {
	// AGGCT and CCTGA both occur in AGGCTACCTGA. AGGCT sits exactly at the
	// threshold and is kept (>= comparison).
	result := Analyze("AGGCTACCTGA", testTable(), 0.5)

	if result.Summary.DetectedCount != 2 {
		t.Fatalf("detected_count = %d, want 2", result.Summary.DetectedCount)
	}
	if !almostEqual(result.Summary.TotalRiskScore, 1.4) {
		t.Errorf("total_risk_score = %v, want 1.4", result.Summary.TotalRiskScore)
	}

	// Table order is preserved: CCTGA comes before AGGCT in the reference.
	if result.Detections[0].Marker != "CCTGA" || result.Detections[1].Marker != "AGGCT" {
		t.Errorf("detections out of table order: %v", result.Detections)
	}
}

func TestAnalyze_ThresholdMonotonicity(t *testing.T) {
	seq := "ATCGTGCTAGTTAGCCCTGAAGGCT" // contains every default marker

	thresholds := []float64{0.0, 0.55, 0.65, 0.75, 0.85, 1.0}

	prev := -1
	var prevSet map[string]bool
	for _, th := range thresholds {
		result := Analyze(seq, testTable(), th)

		set := make(map[string]bool, len(result.Detections))
		for _, d := range result.Detections {
			set[d.Marker] = true
		}

		if prev >= 0 {
			if result.Summary.DetectedCount > prev {
				t.Errorf("detected_count grew from %d to %d as threshold rose to %v", prev, result.Summary.DetectedCount, th)
			}
			for marker := range set {
				if !prevSet[marker] {
					t.Errorf("marker %s appeared at threshold %v but not at the lower one", marker, th)
				}
			}
		}
		prev = result.Summary.DetectedCount
		prevSet = set
	}
}

func TestAnalyze_TotalRiskIgnoresThreshold(t *testing.T) {
	seq := "ATCGTGCTAGTTAGCCCTGAAGGCT"

	loose := Analyze(seq, testTable(), 0.0)
	strict := Analyze(seq, testTable(), 1.0)

	if !almostEqual(loose.Summary.TotalRiskScore, strict.Summary.TotalRiskScore) {
		t.Errorf("total_risk_score changed with threshold: %v vs %v",
			loose.Summary.TotalRiskScore, strict.Summary.TotalRiskScore)
	}
	if loose.Summary.DetectedCount != 5 {
		t.Errorf("threshold 0 should admit all 5 matches, got %d", loose.Summary.DetectedCount)
	}
	if strict.Summary.DetectedCount != 0 {
		t.Errorf("no default marker has risk >= 1.0, got count %d", strict.Summary.DetectedCount)
	}
}

func TestAnalyze_EmptyTable(t *testing.T) {
	result := Analyze("ATCGATCG", nil, 0.5)

	if len(result.Detections) != 0 {
		t.Errorf("expected no detections, got %v", result.Detections)
	}
	if result.Summary.DetectedCount != 0 || result.Summary.TotalRiskScore != 0 {
		t.Errorf("expected zero summary, got %+v", result.Summary)
	}
}

func TestAnalyze_EmptySequence(t *testing.T) {
	result := Analyze("", testTable(), 0.0)

	if len(result.Detections) != 0 || result.Summary.TotalRiskScore != 0 {
		t.Errorf("empty sequence should yield zero result, got %+v", result)
	}
}

func TestAnalyze_InvalidSequenceFailsSoft(t *testing.T) {
	// The defensive path: an unvalidated sequence yields a zero result
	// rather than an error. CleanSequence is the strict entry point.
	result := Analyze("ATCGNATCGT", testTable(), 0.0)

	if len(result.Detections) != 0 {
		t.Errorf("expected no detections for invalid sequence, got %v", result.Detections)
	}
	if result.Summary.DetectedCount != 0 || result.Summary.TotalRiskScore != 0 {
		t.Errorf("expected zero summary, got %+v", result.Summary)
	}
}

func TestAnalyze_DuplicateMarkersProcessedIndependently(t *testing.T) {
	table := []MarkerRecord{
		{Marker: "ATCG", Risk: 0.4, Description: "first copy"},
		{Marker: "ATCG", Risk: 0.4, Description: "second copy"},
	}

	result := Analyze("ATCGATCG", table, 0.0)

	if result.Summary.DetectedCount != 2 {
		t.Errorf("duplicate rows should each match, got count %d", result.Summary.DetectedCount)
	}
	if !almostEqual(result.Summary.TotalRiskScore, 0.8) {
		t.Errorf("total_risk_score = %v, want 0.8", result.Summary.TotalRiskScore)
	}
}

func TestAnalyze_PresenceIsBoolean(t *testing.T) {
	table := []MarkerRecord{{Marker: "AT", Risk: 0.3, Description: "repeated"}}

	result := Analyze("ATATATAT", table, 0.0)

	if result.Summary.DetectedCount != 1 {
		t.Errorf("marker should count once regardless of occurrences, got %d", result.Summary.DetectedCount)
	}
	if !almostEqual(result.Summary.TotalRiskScore, 0.3) {
		t.Errorf("total_risk_score = %v, want 0.3", result.Summary.TotalRiskScore)
	}
}
