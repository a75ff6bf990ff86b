package model

// MarkerRecord is one entry of the reference marker table: a short
// nucleotide substring over {A,T,C,G} with its associated risk score.
// Risk is conventionally in [0,1] but the engine does not enforce it.
type MarkerRecord struct {
	Marker      string  `json:"marker"`
	Risk        float64 `json:"risk"`
	Description string  `json:"description"`
}

// Detection records that a marker's substring occurs somewhere in the
// analyzed sequence. Fields are copied from the matched MarkerRecord.
type Detection struct {
	Marker      string  `json:"marker"`
	Risk        float64 `json:"risk"`
	Description string  `json:"description"`
}

// RiskSummary aggregates one analysis run. DetectedCount counts only the
// detections that passed the threshold filter, while TotalRiskScore sums
// the risks of every matched marker, filtered or not. See Analyze.
type RiskSummary struct {
	DetectedCount  int     `json:"detected_count"`
	TotalRiskScore float64 `json:"total_risk_score"`
}

// AnalysisResult is the pair a result consumer receives: the filtered
// detections in reference-table order, plus the summary.
type AnalysisResult struct {
	Detections []Detection `json:"detections"`
	Summary    RiskSummary `json:"summary"`
}
