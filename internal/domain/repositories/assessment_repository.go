package repositories

import (
	"errors"

	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"gorm.io/gorm"
)

type AssessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// FindByID returns the assessment or ErrAssessmentNotFound.
func (r *AssessmentRepository) FindByID(id uint) (*entities.Assessment, error) {
	var assessment entities.Assessment
	err := r.db.First(&assessment, "assessment_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// FindFocusAreaByID returns the focus area or ErrFocusAreaNotFound.
func (r *AssessmentRepository) FindFocusAreaByID(id uint) (*entities.FocusArea, error) {
	var fa entities.FocusArea
	err := r.db.First(&fa, "focus_area_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFocusAreaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fa, nil
}
