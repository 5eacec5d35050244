package reports

import "math"

// Maximum persisted list lengths.
const (
	maxListItems = 5
	maxKeywords  = 10
)

// clampScore rounds a raw model score into an integer in [0,100]. The model
// already promises this range but is not trusted to keep it.
func clampScore(raw float64) int {
	return int(math.Round(math.Min(100, math.Max(0, raw))))
}

// truncate keeps the first max items in order.
func truncate(items []string, max int) []string {
	if len(items) <= max {
		return items
	}
	return items[:max]
}
