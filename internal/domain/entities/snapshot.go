package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Snapshot capture types.
const (
	SnapshotManual    = "manual"
	SnapshotAutomatic = "automatic"
	SnapshotPeriodic  = "periodic"
)

// ScoreSnapshot is an immutable point-in-time copy of an assessment's score
// breakdown, used for trend reporting. Snapshots are additive only: they are
// never updated or superseded after creation.
type ScoreSnapshot struct {
	ID           uint      `json:"snapshot_id" gorm:"primaryKey;column:snapshot_id"`
	AssessmentID uint      `json:"assessment_id" gorm:"column:assessment_id;index:idx_snapshots_assessment_taken"`
	SnapshotType string    `json:"snapshot_type" gorm:"column:snapshot_type;default:automatic"`
	TakenAt      time.Time `json:"taken_at" gorm:"column:taken_at;index:idx_snapshots_assessment_taken"`

	OverallScore         *float64 `json:"overall_score" gorm:"column:overall_score;type:decimal(5,2)"`
	OverallLevel         *int     `json:"overall_level" gorm:"column:overall_level"`
	CompletionPercentage float64  `json:"completion_percentage" gorm:"column:completion_percentage;type:decimal(5,2);default:0"`

	// FocusAreaScores maps focus_area_id -> current score at capture time.
	FocusAreaScores datatypes.JSONMap `json:"focus_area_scores" gorm:"column:focus_area_scores"`
	QuestionStats   datatypes.JSONMap `json:"question_stats" gorm:"column:question_stats"`

	Note        string `json:"note" gorm:"column:note"`
	CreatedByID *uint  `json:"created_by_id" gorm:"column:created_by_id"`
	Version     int    `json:"version" gorm:"column:version;default:1"`
}

func (ScoreSnapshot) TableName() string {
	return "score_snapshots"
}

// ValidSnapshotType reports whether t is one of the known capture types.
func ValidSnapshotType(t string) bool {
	switch t {
	case SnapshotManual, SnapshotAutomatic, SnapshotPeriodic:
		return true
	}
	return false
}
