// Marker matching and risk aggregation.

package model

import "strings"

// Analyze scans sequence for every marker of the reference table, in table
// order, and returns the detections whose risk meets threshold plus a
// summary.
//
// A marker matches if it occurs at least once as a contiguous substring;
// multiplicity is not counted. Summary.TotalRiskScore sums the risks of ALL
// matched markers, before the threshold filter, while Summary.DetectedCount
// counts the filtered list only. That asymmetry is the historical behavior
// of the analyzer and is kept on purpose.
//
// The sequence is expected to come from CleanSequence. If it contains bases
// outside {A,T,C,G} anyway, Analyze returns an empty result instead of
// erroring; strict callers should validate with CleanSequence first.
func Analyze(sequence string, table []MarkerRecord, threshold float64) AnalysisResult {
	if !ValidSequence(sequence) {
		return AnalysisResult{Detections: []Detection{}}
	}

	var matched []Detection
	var totalRisk float64

	for _, rec := range table {
		if !strings.Contains(sequence, rec.Marker) {
			continue
		}
		matched = append(matched, Detection{
			Marker:      rec.Marker,
			Risk:        rec.Risk,
			Description: rec.Description,
		})
		totalRisk += rec.Risk
	}

	filtered := make([]Detection, 0, len(matched))
	for _, d := range matched {
		if d.Risk >= threshold {
			filtered = append(filtered, d)
		}
	}

	return AnalysisResult{
		Detections: filtered,
		Summary: RiskSummary{
			DetectedCount:  len(filtered),
			TotalRiskScore: totalRisk,
		},
	}
}
