package usecases

import (
	"fmt"
	"strings"

	"github.com/PavaniTiago/bcm-maturity-api/internal/application/maturity"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/repositories"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
)

// RecommendationUseCase derives improvement recommendations from the current
// focus-area scores of an assessment.
type RecommendationUseCase struct {
	assessmentRepo *repositories.AssessmentRepository
	scoreRepo      *repositories.ScoreRepository
	recRepo        *repositories.RecommendationRepository
	templates      *maturity.ActionTemplates
	log            *logger.Logger
}

func NewRecommendationUseCase(
	assessmentRepo *repositories.AssessmentRepository,
	scoreRepo *repositories.ScoreRepository,
	recRepo *repositories.RecommendationRepository,
	templates *maturity.ActionTemplates,
	log *logger.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		assessmentRepo: assessmentRepo,
		scoreRepo:      scoreRepo,
		recRepo:        recRepo,
		templates:      templates,
		log:            log,
	}
}

// Generate scans the current focus-area scores below the recommendation
// threshold and stores one recommendation per qualifying focus area as a
// single atomic batch. The overall score never produces a recommendation.
//
// Generation has no built-in duplicate suppression: each run mints fresh rows
// with new IDs. Callers wanting idempotent regeneration pass replace=true,
// which purges the assessment's still-proposed rows in the same transaction.
func (u *RecommendationUseCase) Generate(assessmentID uint, replace bool) ([]entities.ImprovementRecommendation, error) {
	if _, err := u.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}

	scores, err := u.scoreRepo.FindCurrentFocusAreaScores(assessmentID)
	if err != nil {
		return nil, err
	}

	var recs []*entities.ImprovementRecommendation
	for _, score := range scores {
		priority, ok := maturity.PriorityForScore(score.Score)
		if !ok {
			continue
		}
		if score.FocusArea == nil || score.FocusAreaID == nil {
			continue
		}
		fa := score.FocusArea
		actions := maturity.SelectActions(u.templates.ActionsFor(fa.Name), score.Score)

		recs = append(recs, &entities.ImprovementRecommendation{
			AssessmentID: assessmentID,
			FocusAreaID:  *score.FocusAreaID,
			Title:        fmt.Sprintf("Improve %s Maturity", fa.DisplayName),
			Description: fmt.Sprintf("Current score of %.2f indicates need for improvement in %s",
				score.Score, fa.DisplayName),
			CurrentScore:     score.Score,
			TargetScore:      maturity.TargetScore(score.Score),
			Priority:         priority,
			Status:           entities.StatusProposed,
			SuggestedActions: strings.Join(actions, "\n"),
			EstimatedEffort:  maturity.EstimateEffort(priority, u.templates.ComplexityFor(fa.Name)),
			TimelineWeeks:    maturity.EstimateTimeline(priority),
		})
	}

	if err := u.recRepo.CreateBatch(assessmentID, recs, replace); err != nil {
		return nil, err
	}

	u.log.Info("recommendations generated",
		"assessment_id", assessmentID,
		"count", len(recs),
		"replace", replace,
	)

	result := make([]entities.ImprovementRecommendation, 0, len(recs))
	for _, rec := range recs {
		result = append(result, *rec)
	}
	return result, nil
}

// List returns an assessment's recommendations, optionally filtered by
// workflow status.
func (u *RecommendationUseCase) List(assessmentID uint, status string) ([]entities.ImprovementRecommendation, error) {
	if _, err := u.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}
	if status != "" && !entities.ValidStatus(status) {
		return nil, fmt.Errorf("unknown recommendation status %q", status)
	}
	return u.recRepo.FindByAssessment(assessmentID, status)
}

// CreateManual stores a hand-authored recommendation. Unlike the engine, the
// manual path accepts the low priority.
func (u *RecommendationUseCase) CreateManual(rec *entities.ImprovementRecommendation) error {
	if _, err := u.assessmentRepo.FindByID(rec.AssessmentID); err != nil {
		return err
	}
	if _, err := u.assessmentRepo.FindFocusAreaByID(rec.FocusAreaID); err != nil {
		return err
	}
	if rec.Priority == "" {
		rec.Priority = entities.PriorityMedium
	}
	if !entities.ValidPriority(rec.Priority) {
		return fmt.Errorf("unknown recommendation priority %q", rec.Priority)
	}
	if rec.Status == "" {
		rec.Status = entities.StatusProposed
	}
	if !entities.ValidStatus(rec.Status) {
		return fmt.Errorf("unknown recommendation status %q", rec.Status)
	}
	return u.recRepo.Create(rec)
}

// UpdateStatus moves a recommendation through its workflow.
func (u *RecommendationUseCase) UpdateStatus(recommendationID, status string) (*entities.ImprovementRecommendation, error) {
	if !entities.ValidStatus(status) {
		return nil, fmt.Errorf("unknown recommendation status %q", status)
	}
	return u.recRepo.UpdateStatus(recommendationID, status)
}
