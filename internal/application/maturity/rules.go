package maturity

import (
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
)

// Priority thresholds, exclusive upper bounds. A focus area scoring at or
// above thresholdMedium gets no recommendation at all.
const (
	thresholdCritical = 2.0
	thresholdHigh     = 3.0
	thresholdMedium   = 4.0
)

// MaxScore is the ceiling for scores and recommendation targets.
const MaxScore = 5.0

// PriorityForScore returns the recommendation priority for a current score.
// ok is false when the score needs no recommendation (score >= 4.0). The
// engine never returns low; that value is reserved for manual creation.
func PriorityForScore(score float64) (priority string, ok bool) {
	switch {
	case score < thresholdCritical:
		return entities.PriorityCritical, true
	case score < thresholdHigh:
		return entities.PriorityHigh, true
	case score < thresholdMedium:
		return entities.PriorityMedium, true
	default:
		return "", false
	}
}

// SelectActions picks the maturity-appropriate window from a focus area's
// ordered action template list. Less mature areas get the basic actions at the
// front of the list, more mature ones the advanced tail; the windows overlap
// on purpose. A nil or short list yields whatever fits, never a panic.
func SelectActions(actions []string, score float64) []string {
	var lo, hi int
	switch {
	case score < thresholdCritical:
		lo, hi = 0, 2
	case score < thresholdHigh:
		lo, hi = 1, 3
	default:
		lo, hi = 2, len(actions)
	}
	if lo > len(actions) {
		lo = len(actions)
	}
	if hi > len(actions) {
		hi = len(actions)
	}
	return actions[lo:hi]
}

var effortBaseHours = map[string]int{
	entities.PriorityCritical: 40,
	entities.PriorityHigh:     24,
	entities.PriorityMedium:   16,
}

// EstimateEffort returns person-hours: a per-priority base scaled by the focus
// area's complexity factor, truncated to an integer.
func EstimateEffort(priority string, complexity float64) int {
	return int(float64(effortBaseHours[priority]) * complexity)
}

var timelineWeeks = map[string]int{
	entities.PriorityCritical: 4,
	entities.PriorityHigh:     8,
	entities.PriorityMedium:   12,
}

// EstimateTimeline returns the suggested timeline in weeks. The relation is
// inverse to effort: the most urgent work gets the shortest window.
func EstimateTimeline(priority string) int {
	return timelineWeeks[priority]
}

// TargetScore aims one full point above the current score, capped at MaxScore.
func TargetScore(current float64) float64 {
	target := current + 1.0
	if target > MaxScore {
		return MaxScore
	}
	return target
}
