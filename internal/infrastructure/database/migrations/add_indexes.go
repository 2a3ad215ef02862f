package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds the indexes the scoring queries depend on.
//
// The two partial unique indexes on maturity_scores back the ledger's
// version invariant: Postgres treats NULLs as distinct, so the overall rows
// (focus_area_id IS NULL) need their own index or duplicate versions would
// slip through. A commit that loses the version race hits one of these and
// retries.
func AddIndexes(db *gorm.DB) error {
	// maturity_scores: version uniqueness per ledger key
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_scores_key_version
		ON maturity_scores (assessment_id, focus_area_id, version)
		WHERE focus_area_id IS NOT NULL`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_scores_overall_version
		ON maturity_scores (assessment_id, version)
		WHERE focus_area_id IS NULL`).Error; err != nil {
		return err
	}

	// maturity_scores: current-record lookups
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_scores_focus_area_score ON maturity_scores (focus_area_id, score)").Error; err != nil {
		return err
	}

	// improvement_recommendations: dashboard filters
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_recommendations_assessment_status ON improvement_recommendations (assessment_id, status)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_recommendations_focus_area_priority ON improvement_recommendations (focus_area_id, priority)").Error; err != nil {
		return err
	}

	// assessment_responses: aggregation scans
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_responses_assessment_question ON assessment_responses (assessment_id, question_id)").Error; err != nil {
		return err
	}

	return nil
}
