package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/PavaniTiago/bcm-maturity-api/internal/application/maturity"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"gorm.io/gorm"
)

// commitRetries bounds how often a commit retries after losing the version
// race to a concurrent commit for the same key.
const commitRetries = 3

// ScoreCommit is the input for one ledger commit: a computed score for a
// focus area (or the overall score when FocusAreaID is nil) with its counts.
type ScoreCommit struct {
	AssessmentID         uint
	FocusAreaID          *uint
	Score                float64
	QuestionCount        int
	AnsweredCount        int
	CompletionPercentage float64
}

// ScoreRepository is the score ledger. Every commit supersedes the previous
// current row for its (assessment, focus area) key and appends a new version;
// history is never deleted. The partial unique indexes created in migrations
// make (assessment, focus area, version) collisions impossible, so a lost race
// surfaces as a duplicate-key error and the whole transaction is retried.
type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// keyScope narrows a query to one (assessment, focus area) ledger key,
// treating a nil focus area as the overall score slot.
func keyScope(tx *gorm.DB, assessmentID uint, focusAreaID *uint) *gorm.DB {
	q := tx.Model(&entities.MaturityScore{}).Where("assessment_id = ?", assessmentID)
	if focusAreaID == nil {
		return q.Where("focus_area_id IS NULL")
	}
	return q.Where("focus_area_id = ?", *focusAreaID)
}

// Commit atomically supersedes the current row for the key and inserts the
// next version. The prior current row is flipped to is_current = false inside
// the same transaction, so readers never observe zero or two current rows.
func (r *ScoreRepository) Commit(in ScoreCommit) (*entities.MaturityScore, error) {
	var committed *entities.MaturityScore
	for attempt := 0; attempt < commitRetries; attempt++ {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			var lastVersion int
			if err := keyScope(tx, in.AssessmentID, in.FocusAreaID).
				Select("COALESCE(MAX(version), 0)").
				Scan(&lastVersion).Error; err != nil {
				return err
			}

			if err := keyScope(tx, in.AssessmentID, in.FocusAreaID).
				Where("is_current = ?", true).
				Update("is_current", false).Error; err != nil {
				return err
			}

			record := &entities.MaturityScore{
				AssessmentID:         in.AssessmentID,
				FocusAreaID:          in.FocusAreaID,
				Score:                maturity.Round2(in.Score),
				Level:                maturity.LevelForScore(in.Score),
				MaxPossibleScore:     maturity.MaxScore,
				QuestionCount:        in.QuestionCount,
				AnsweredCount:        in.AnsweredCount,
				CompletionPercentage: in.CompletionPercentage,
				CalculatedAt:         time.Now().UTC(),
				IsCurrent:            true,
				Version:              lastVersion + 1,
			}
			if err := tx.Create(record).Error; err != nil {
				return err
			}
			committed = record
			return nil
		})
		if err == nil {
			return committed, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("score commit for assessment %d lost the version race %d times", in.AssessmentID, commitRetries)
}

// FindCurrentFocusAreaScores returns the current score row of every focus
// area of the assessment, ordered by the focus areas' display order.
func (r *ScoreRepository) FindCurrentFocusAreaScores(assessmentID uint) ([]entities.MaturityScore, error) {
	var scores []entities.MaturityScore
	err := r.db.
		Joins("JOIN focus_areas ON focus_areas.focus_area_id = maturity_scores.focus_area_id").
		Preload("FocusArea").
		Where("maturity_scores.assessment_id = ? AND maturity_scores.is_current = ?", assessmentID, true).
		Order("focus_areas.order_index").
		Find(&scores).Error
	return scores, err
}

// FindCurrentOverallScore returns the current overall row, or nil when the
// assessment has never been scored.
func (r *ScoreRepository) FindCurrentOverallScore(assessmentID uint) (*entities.MaturityScore, error) {
	var score entities.MaturityScore
	err := r.db.
		Where("assessment_id = ? AND focus_area_id IS NULL AND is_current = ?", assessmentID, true).
		First(&score).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// FindHistory returns all versions for one ledger key, oldest first.
func (r *ScoreRepository) FindHistory(assessmentID uint, focusAreaID *uint) ([]entities.MaturityScore, error) {
	var scores []entities.MaturityScore
	err := keyScope(r.db, assessmentID, focusAreaID).
		Order("version").
		Find(&scores).Error
	return scores, err
}
