package entities

import (
	"time"
)

// MaturityScore is one computed score row. FocusAreaID nil means the
// assessment-wide overall score. Rows are soft-versioned: every recompute
// inserts a new version and flips the previous row's is_current to false, so
// exactly one row per (assessment, focus area) is current at any time and the
// full history is kept.
type MaturityScore struct {
	ID           uint  `json:"score_id" gorm:"primaryKey;column:score_id"`
	AssessmentID uint  `json:"assessment_id" gorm:"column:assessment_id;index:idx_scores_assessment_current"`
	FocusAreaID  *uint `json:"focus_area_id" gorm:"column:focus_area_id"`

	Score            float64 `json:"score" gorm:"column:score;type:decimal(5,2)"`
	Level            int     `json:"level" gorm:"column:level"`
	MaxPossibleScore float64 `json:"max_possible_score" gorm:"column:max_possible_score;default:5"`

	QuestionCount        int     `json:"question_count" gorm:"column:question_count"`
	AnsweredCount        int     `json:"answered_count" gorm:"column:answered_count"`
	CompletionPercentage float64 `json:"completion_percentage" gorm:"column:completion_percentage;type:decimal(5,2)"`

	CalculatedAt time.Time `json:"calculated_at" gorm:"column:calculated_at"`
	IsCurrent    bool      `json:"is_current" gorm:"column:is_current;index:idx_scores_assessment_current"`
	Version      int       `json:"version" gorm:"column:version"`

	FocusArea *FocusArea `json:"focus_area,omitempty" gorm:"foreignKey:FocusAreaID"`
}

func (MaturityScore) TableName() string {
	return "maturity_scores"
}

// IsOverall reports whether this row is the assessment-wide score.
func (m *MaturityScore) IsOverall() bool {
	return m.FocusAreaID == nil
}
