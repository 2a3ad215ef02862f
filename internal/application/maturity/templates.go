package maturity

// ActionTemplates is the per-focus-area improvement playbook: an ordered list
// of four action strings per focus area plus a complexity factor used for
// effort estimation. Loaded once at startup and treated as immutable; tests
// build their own smaller tables.
type ActionTemplates struct {
	actions    map[string][]string
	complexity map[string]float64
}

// NewActionTemplates builds a template table from explicit maps. Either map
// may be nil.
func NewActionTemplates(actions map[string][]string, complexity map[string]float64) *ActionTemplates {
	if actions == nil {
		actions = map[string][]string{}
	}
	if complexity == nil {
		complexity = map[string]float64{}
	}
	return &ActionTemplates{actions: actions, complexity: complexity}
}

// ActionsFor returns the ordered action list for a focus area slug, or an
// empty list when the focus area has no template entry.
func (t *ActionTemplates) ActionsFor(focusArea string) []string {
	return t.actions[focusArea]
}

// ComplexityFor returns the effort complexity factor for a focus area slug,
// defaulting to 1.0 for unlisted areas.
func (t *ActionTemplates) ComplexityFor(focusArea string) float64 {
	if f, ok := t.complexity[focusArea]; ok {
		return f
	}
	return 1.0
}

// DefaultTemplates returns the authored BCM playbook covering the six focus
// areas of the framework.
func DefaultTemplates() *ActionTemplates {
	return NewActionTemplates(
		map[string][]string{
			"establishing_bcms": {
				"Develop and document BCMS policy",
				"Establish management framework and governance",
				"Define roles, responsibilities, and authorities",
				"Secure management commitment and resources",
			},
			"embracing_bc": {
				"Develop business continuity awareness program",
				"Establish competency requirements and training",
				"Implement communication and consultation processes",
				"Create organizational culture of resilience",
			},
			"analysis": {
				"Conduct comprehensive business impact analysis",
				"Identify critical functions and processes",
				"Establish recovery time objectives (RTOs)",
				"Determine resource requirements for recovery",
			},
			"solution_design": {
				"Develop business continuity strategies",
				"Design recovery solutions for critical functions",
				"Establish resource recovery strategies",
				"Implement preventive and mitigation controls",
			},
			"enabling_solutions": {
				"Develop business continuity plans and procedures",
				"Establish incident response structure",
				"Implement crisis management framework",
				"Develop communication and notification procedures",
			},
			"validation": {
				"Establish exercise and testing program",
				"Conduct regular business continuity exercises",
				"Implement maintenance and review processes",
				"Establish continuous improvement framework",
			},
		},
		map[string]float64{
			"establishing_bcms":  1.2,
			"analysis":           1.5,
			"solution_design":    1.3,
			"enabling_solutions": 1.1,
			"validation":         1.0,
			"embracing_bc":       0.9,
		},
	)
}
