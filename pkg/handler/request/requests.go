package request

// AnalyzeRequest is the JSON body of POST /api/v1/analyze. Threshold is a
// pointer so an absent field falls back to the server default rather than
// being read as 0.
type AnalyzeRequest struct {
	Sequence  string   `json:"sequence"`
	Threshold *float64 `json:"threshold,omitempty"`
}
