package repositories

import (
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"gorm.io/gorm"
)

// SnapshotRepository stores the additive trend history. Snapshots are
// insert-only; nothing here updates or deletes existing rows.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(snapshot *entities.ScoreSnapshot) error {
	return r.db.Create(snapshot).Error
}

// FindByAssessment returns the snapshot history, newest first.
func (r *SnapshotRepository) FindByAssessment(assessmentID uint) ([]entities.ScoreSnapshot, error) {
	var snapshots []entities.ScoreSnapshot
	err := r.db.
		Where("assessment_id = ?", assessmentID).
		Order("taken_at DESC").
		Find(&snapshots).Error
	return snapshots, err
}
