package repositories

import (
	"errors"
	"strings"

	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// newRecommendationID mints a globally unique "REC-XXXXXXXX" token.
func newRecommendationID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "REC-" + strings.ToUpper(hex[:8])
}

// CreateBatch stores one generation run atomically: either every
// recommendation gets persisted or none. With replace set, previously
// generated rows still in the proposed state are purged for the assessment in
// the same transaction, giving callers idempotent regeneration.
func (r *RecommendationRepository) CreateBatch(assessmentID uint, recs []*entities.ImprovementRecommendation, replace bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.
				Where("assessment_id = ? AND status = ?", assessmentID, entities.StatusProposed).
				Delete(&entities.ImprovementRecommendation{}).Error; err != nil {
				return err
			}
		}
		for _, rec := range recs {
			if rec.RecommendationID == "" {
				rec.RecommendationID = newRecommendationID()
			}
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Create stores a single manually authored recommendation.
func (r *RecommendationRepository) Create(rec *entities.ImprovementRecommendation) error {
	if rec.RecommendationID == "" {
		rec.RecommendationID = newRecommendationID()
	}
	return r.db.Create(rec).Error
}

// FindByAssessment lists recommendations for an assessment, optionally
// filtered by workflow status, most urgent first.
func (r *RecommendationRepository) FindByAssessment(assessmentID uint, status string) ([]entities.ImprovementRecommendation, error) {
	query := r.db.
		Preload("FocusArea").
		Where("assessment_id = ?", assessmentID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var recs []entities.ImprovementRecommendation
	err := query.
		Order("CASE priority WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END").
		Order("created_at").
		Find(&recs).Error
	return recs, err
}

// UpdateStatus moves a recommendation to a new workflow state, identified by
// its public REC- token.
func (r *RecommendationRepository) UpdateStatus(recommendationID, status string) (*entities.ImprovementRecommendation, error) {
	var rec entities.ImprovementRecommendation
	err := r.db.First(&rec, "recommendation_id = ?", recommendationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecommendationNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.Status = status
	if err := r.db.Model(&rec).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
