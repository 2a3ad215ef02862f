package maturity

import (
	"reflect"
	"testing"

	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
)

func TestLevelForScoreBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{0.01, 1},
		{1.95, 1},
		{1.96, 2},
		{2.95, 2},
		{2.96, 3},
		{3.95, 3},
		{3.96, 4},
		{4.95, 4},
		{4.96, 5},
		{5.0, 5},
	}
	for _, c := range cases {
		if got := LevelForScore(c.score); got != c.want {
			t.Errorf("LevelForScore(%v) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestLevelForScoreMonotonic(t *testing.T) {
	prev := LevelForScore(0)
	for s := 0.01; s <= 5.0; s += 0.01 {
		cur := LevelForScore(Round2(s))
		if cur < prev {
			t.Fatalf("level decreased at score %.2f: %d -> %d", s, prev, cur)
		}
		prev = cur
	}
}

func TestPriorityForScoreBoundaries(t *testing.T) {
	cases := []struct {
		score    float64
		priority string
		ok       bool
	}{
		{1.99, entities.PriorityCritical, true},
		{2.00, entities.PriorityHigh, true},
		{2.99, entities.PriorityHigh, true},
		{3.00, entities.PriorityMedium, true},
		{3.99, entities.PriorityMedium, true},
		{4.00, "", false},
		{5.00, "", false},
	}
	for _, c := range cases {
		p, ok := PriorityForScore(c.score)
		if p != c.priority || ok != c.ok {
			t.Errorf("PriorityForScore(%v) = (%q, %v), want (%q, %v)", c.score, p, ok, c.priority, c.ok)
		}
	}
}

func TestSelectActionsWindows(t *testing.T) {
	actions := []string{"a", "b", "c", "d"}
	cases := []struct {
		score float64
		want  []string
	}{
		{1.0, []string{"a", "b"}},
		{2.5, []string{"b", "c"}},
		{3.5, []string{"c", "d"}},
	}
	for _, c := range cases {
		if got := SelectActions(actions, c.score); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SelectActions(%v) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestSelectActionsShortList(t *testing.T) {
	if got := SelectActions(nil, 1.0); len(got) != 0 {
		t.Errorf("expected empty selection for nil template, got %v", got)
	}
	if got := SelectActions([]string{"only"}, 2.5); len(got) != 0 {
		t.Errorf("expected empty selection past end of list, got %v", got)
	}
	if got := SelectActions([]string{"only"}, 1.0); !reflect.DeepEqual(got, []string{"only"}) {
		t.Errorf("expected clamped window, got %v", got)
	}
}

func TestEstimateEffort(t *testing.T) {
	if got := EstimateEffort(entities.PriorityCritical, 1.5); got != 60 {
		t.Errorf("critical x1.5 = %d, want 60", got)
	}
	if got := EstimateEffort(entities.PriorityHigh, 1.0); got != 24 {
		t.Errorf("high x1.0 = %d, want 24", got)
	}
	// Truncation, not rounding: 16 * 1.2 = 19.2 -> 19.
	if got := EstimateEffort(entities.PriorityMedium, 1.2); got != 19 {
		t.Errorf("medium x1.2 = %d, want 19", got)
	}
}

func TestEstimateTimeline(t *testing.T) {
	cases := map[string]int{
		entities.PriorityCritical: 4,
		entities.PriorityHigh:     8,
		entities.PriorityMedium:   12,
	}
	for p, want := range cases {
		if got := EstimateTimeline(p); got != want {
			t.Errorf("EstimateTimeline(%s) = %d, want %d", p, got, want)
		}
	}
}

func TestTargetScoreCap(t *testing.T) {
	if got := TargetScore(2.5); got != 3.5 {
		t.Errorf("TargetScore(2.5) = %v, want 3.5", got)
	}
	if got := TargetScore(4.6); got != 5.0 {
		t.Errorf("TargetScore(4.6) = %v, want 5.0", got)
	}
}

func TestTemplatesDefaults(t *testing.T) {
	tpl := DefaultTemplates()
	for _, fa := range []string{"establishing_bcms", "embracing_bc", "analysis", "solution_design", "enabling_solutions", "validation"} {
		if len(tpl.ActionsFor(fa)) != 4 {
			t.Errorf("focus area %s should have 4 template actions", fa)
		}
	}
	if tpl.ComplexityFor("analysis") != 1.5 {
		t.Errorf("analysis complexity = %v, want 1.5", tpl.ComplexityFor("analysis"))
	}
	if tpl.ComplexityFor("unknown_area") != 1.0 {
		t.Errorf("unlisted complexity should default to 1.0")
	}
	if len(tpl.ActionsFor("unknown_area")) != 0 {
		t.Errorf("unlisted focus area should have no actions")
	}
}
