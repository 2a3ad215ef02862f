package migrations

import (
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all scoring entities. The
// questionnaire tables (focus areas, questions, responses) are owned by the
// questionnaire service in production; migrating them here keeps local and
// test environments self-contained.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Assessment{},
		&entities.FocusArea{},
		&entities.Question{},
		&entities.AssessmentResponse{},
		&entities.MaturityScore{},
		&entities.ImprovementRecommendation{},
		&entities.ScoreSnapshot{},
	)
}
