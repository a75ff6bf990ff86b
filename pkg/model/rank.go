package model

import "sort"

// TopByRisk returns the n highest-risk detections, highest first. Ties keep
// their original (reference-table) order. The input slice is not modified.
// Ranking is a consumer concern; Analyze itself keeps table order.
func TopByRisk(detections []Detection, n int) []Detection {
	ranked := make([]Detection, len(detections))
	copy(ranked, detections)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Risk > ranked[j].Risk
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	return ranked[:n]
}
