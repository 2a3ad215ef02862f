package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation priorities. The engine only ever assigns critical, high or
// medium; low exists for manually created recommendations.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Recommendation workflow states.
const (
	StatusProposed   = "proposed"
	StatusApproved   = "approved"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDeferred   = "deferred"
	StatusRejected   = "rejected"
)

// ImprovementRecommendation is a system-generated (or manually created)
// improvement action derived from an under-threshold focus-area score.
type ImprovementRecommendation struct {
	ID               uint   `json:"id" gorm:"primaryKey;column:id"`
	RecommendationID string `json:"recommendation_id" gorm:"column:recommendation_id;uniqueIndex"`
	AssessmentID     uint   `json:"assessment_id" gorm:"column:assessment_id;index"`
	FocusAreaID      uint   `json:"focus_area_id" gorm:"column:focus_area_id;index"`

	Title        string  `json:"title" gorm:"column:title"`
	Description  string  `json:"description" gorm:"column:description"`
	CurrentScore float64 `json:"current_score" gorm:"column:current_score;type:decimal(5,2)"`
	TargetScore  float64 `json:"target_score" gorm:"column:target_score;type:decimal(5,2)"`
	Priority     string  `json:"priority" gorm:"column:priority;default:medium"`
	Status       string  `json:"status" gorm:"column:status;default:proposed"`

	SuggestedActions string `json:"suggested_actions" gorm:"column:suggested_actions"`
	EstimatedEffort  int    `json:"estimated_effort" gorm:"column:estimated_effort"`
	TimelineWeeks    int    `json:"timeline_weeks" gorm:"column:timeline_weeks"`

	ProgressPercentage float64        `json:"progress_percentage" gorm:"column:progress_percentage;type:decimal(5,2);default:0"`
	Milestones         datatypes.JSON `json:"milestones,omitempty" gorm:"column:milestones"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	FocusArea FocusArea `json:"focus_area,omitempty" gorm:"foreignKey:FocusAreaID"`
}

func (ImprovementRecommendation) TableName() string {
	return "improvement_recommendations"
}

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known workflow states.
func ValidStatus(s string) bool {
	switch s {
	case StatusProposed, StatusApproved, StatusInProgress, StatusCompleted, StatusDeferred, StatusRejected:
		return true
	}
	return false
}
