package rank

// Relevance labels, coarse display buckets for a combined score.
const (
	RelevanceVeryHigh = "Very High"
	RelevanceHigh     = "High"
	RelevanceMedium   = "Medium"
	RelevanceLow      = "Low"
)

// Label maps a combined score to its relevance bucket.
func Label(score float64) string {
	switch {
	case score >= 0.8:
		return RelevanceVeryHigh
	case score >= 0.6:
		return RelevanceHigh
	case score >= 0.4:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}
