package entities

import (
	"time"
)

// Assessment represents one maturity self-assessment round for an organization.
// User/organization management lives in the platform service; this API only
// needs the assessment row itself as the owner of scores and recommendations.
type Assessment struct {
	ID             uint      `json:"assessment_id" gorm:"primaryKey;column:assessment_id"`
	Name           string    `json:"name" gorm:"column:name"`
	OrganizationID uint      `json:"organization_id" gorm:"column:organization_id"`
	Status         string    `json:"status" gorm:"column:status"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Assessment) TableName() string {
	return "assessments"
}

// FocusArea is a sub-category of the BCM framework ("Establishing a BCMS",
// "Analysis", ...). Scores and recommendations are computed per focus area.
type FocusArea struct {
	ID          uint   `json:"focus_area_id" gorm:"primaryKey;column:focus_area_id"`
	Name        string `json:"name" gorm:"column:name;uniqueIndex"`
	DisplayName string `json:"display_name" gorm:"column:display_name"`
	OrderIndex  int    `json:"order_index" gorm:"column:order_index"`
	IsActive    bool   `json:"is_active" gorm:"column:is_active;default:true"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:FocusAreaID"`
}

func (FocusArea) TableName() string {
	return "focus_areas"
}

// Question belongs to exactly one focus area. Only active questions are in
// scope for scoring.
type Question struct {
	ID          uint   `json:"question_id" gorm:"primaryKey;column:question_id"`
	FocusAreaID uint   `json:"focus_area_id" gorm:"column:focus_area_id;index"`
	Text        string `json:"text" gorm:"column:text"`
	OrderIndex  int    `json:"order_index" gorm:"column:order_index"`
	IsActive    bool   `json:"is_active" gorm:"column:is_active;default:true"`

	FocusArea FocusArea `json:"focus_area,omitempty" gorm:"foreignKey:FocusAreaID"`
}

func (Question) TableName() string {
	return "questions"
}

// AssessmentResponse is one respondent's answer to one question. MaturityScore
// is nullable: a saved-but-unscored answer does not count as answered.
// Uniqueness per (assessment, question, respondent) is enforced by the
// questionnaire service that writes these rows; this API only reads them.
type AssessmentResponse struct {
	ID            uint      `json:"response_id" gorm:"primaryKey;column:response_id"`
	AssessmentID  uint      `json:"assessment_id" gorm:"column:assessment_id;index"`
	QuestionID    uint      `json:"question_id" gorm:"column:question_id;index"`
	RespondentID  *uint     `json:"respondent_id" gorm:"column:respondent_id"`
	MaturityScore *int      `json:"maturity_score" gorm:"column:maturity_score"`
	IsSubmitted   bool      `json:"is_submitted" gorm:"column:is_submitted"`
	HasEvidence   bool      `json:"has_evidence" gorm:"column:has_evidence"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`

	Question Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

func (AssessmentResponse) TableName() string {
	return "assessment_responses"
}
