// Package maturity holds the scoring and recommendation rules of the BCM
// maturity model: level bands, priority thresholds, action selection windows
// and effort/timeline estimation. Everything here is pure computation so the
// rules can be tested without a database.
package maturity

import "math"

// LevelForScore maps a 0.00-5.00 score to the ordinal maturity level.
// The bands are inclusive on the upper end and deliberately uneven: level 5
// ("Optimized") requires a near-perfect score above 4.95.
func LevelForScore(score float64) int {
	switch {
	case score == 0:
		return 0
	case score <= 1.95:
		return 1
	case score <= 2.95:
		return 2
	case score <= 3.95:
		return 3
	case score <= 4.95:
		return 4
	default:
		return 5
	}
}

var levelLabels = map[int]string{
	0: "Not Started",
	1: "Initial",
	2: "Developing/Repeatable",
	3: "Defined",
	4: "Managed",
	5: "Optimized",
}

// LevelLabel returns the display name for a maturity level.
func LevelLabel(level int) string {
	return levelLabels[level]
}

// Round2 rounds to two decimal places, the precision scores and completion
// percentages are stored with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
