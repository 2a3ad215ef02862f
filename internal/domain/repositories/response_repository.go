package repositories

import (
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ResponseRepository is a read-only view over the questionnaire service's
// response and question tables. Role-based visibility scoping is the caller's
// concern; this repository only narrows to active questions.
type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// FindForAssessment returns all responses of an assessment whose question is
// active, with the question (and its focus area id) preloaded.
func (r *ResponseRepository) FindForAssessment(assessmentID uint) ([]entities.AssessmentResponse, error) {
	var responses []entities.AssessmentResponse
	err := r.db.
		Joins("JOIN questions ON questions.question_id = assessment_responses.question_id AND questions.is_active = ?", true).
		Preload("Question").
		Preload("Question.FocusArea").
		Where("assessment_responses.assessment_id = ?", assessmentID).
		Find(&responses).Error
	return responses, err
}

// CountActiveQuestionsByFocusArea returns the number of in-scope (active)
// questions per focus area. Focus areas without active questions are absent
// from the map.
func (r *ResponseRepository) CountActiveQuestionsByFocusArea() (map[uint]int, error) {
	type row struct {
		FocusAreaID uint
		Total       int
	}
	var rows []row
	err := r.db.Model(&entities.Question{}).
		Select("focus_area_id, COUNT(*) AS total").
		Where("is_active = ?", true).
		Group("focus_area_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.FocusAreaID] = row.Total
	}
	return counts, nil
}
