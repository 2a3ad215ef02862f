package usecases

import (
	"fmt"
	"time"

	"github.com/PavaniTiago/bcm-maturity-api/internal/application/maturity"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/repositories"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
)

// currentScoresTTL is how long a computed breakdown may be served from cache.
const currentScoresTTL = 30 * time.Second

// FocusAreaScore is one focus area's slice of a score breakdown.
type FocusAreaScore struct {
	FocusAreaID          uint    `json:"focus_area_id"`
	FocusAreaName        string  `json:"focus_area_name,omitempty"`
	Score                float64 `json:"score"`
	Level                int     `json:"level"`
	QuestionCount        int     `json:"question_count"`
	AnsweredCount        int     `json:"answered_count"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Version              int     `json:"version,omitempty"`
}

// ScoreBreakdown is the result of a score calculation or a current-score read.
// Overall is nil when no focus area has any answered question yet.
type ScoreBreakdown struct {
	AssessmentID         uint             `json:"assessment_id"`
	Overall              *float64         `json:"overall"`
	OverallLevel         *int             `json:"overall_level"`
	CompletionPercentage float64          `json:"completion_percentage"`
	FocusAreas           []FocusAreaScore `json:"focus_areas"`
}

// ScoringUseCase aggregates questionnaire responses into focus-area and
// overall maturity scores and commits them to the score ledger.
type ScoringUseCase struct {
	assessmentRepo *repositories.AssessmentRepository
	responseRepo   *repositories.ResponseRepository
	scoreRepo      *repositories.ScoreRepository
	cache          *cache.Cache
	log            *logger.Logger
}

func NewScoringUseCase(
	assessmentRepo *repositories.AssessmentRepository,
	responseRepo *repositories.ResponseRepository,
	scoreRepo *repositories.ScoreRepository,
	scoreCache *cache.Cache,
	log *logger.Logger,
) *ScoringUseCase {
	return &ScoringUseCase{
		assessmentRepo: assessmentRepo,
		responseRepo:   responseRepo,
		scoreRepo:      scoreRepo,
		cache:          scoreCache,
		log:            log,
	}
}

func currentScoresCacheKey(assessmentID uint) string {
	return fmt.Sprintf("scores:current:%d", assessmentID)
}

// CalculateScores recomputes every focus-area score plus the overall score for
// an assessment and commits each one to the ledger.
//
// The overall score is the mean of the focus-area means, not a re-average of
// raw responses: a focus area with one answered question weighs the same as
// one with ten. Focus areas without any answered question produce no row, and
// with zero focus-area scores no overall row is written at all.
func (u *ScoringUseCase) CalculateScores(assessmentID uint) (*ScoreBreakdown, error) {
	if _, err := u.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}

	responses, err := u.responseRepo.FindForAssessment(assessmentID)
	if err != nil {
		return nil, err
	}
	questionCounts, err := u.responseRepo.CountActiveQuestionsByFocusArea()
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]int)
	answered := make(map[uint]int)
	names := make(map[uint]string)
	var order []uint
	for _, resp := range responses {
		if resp.MaturityScore == nil {
			continue
		}
		faID := resp.Question.FocusAreaID
		if _, seen := totals[faID]; !seen {
			order = append(order, faID)
			names[faID] = resp.Question.FocusArea.DisplayName
		}
		totals[faID] += *resp.MaturityScore
		answered[faID]++
	}

	breakdown := &ScoreBreakdown{AssessmentID: assessmentID}

	// Overall completion is measured against the whole in-scope catalog, not
	// only the focus areas that already have answers.
	totalQuestions := 0
	for _, count := range questionCounts {
		totalQuestions += count
	}
	totalAnswered := 0
	for _, resp := range responses {
		if resp.MaturityScore != nil {
			totalAnswered++
		}
	}
	var sumOfAverages float64

	for _, faID := range order {
		questionCount := questionCounts[faID]
		if questionCount == 0 {
			// Focus area has no in-scope questions anymore; skip it rather
			// than writing a zero-question row.
			continue
		}
		faID := faID
		average := maturity.Round2(float64(totals[faID]) / float64(answered[faID]))
		completion := maturity.Round2(float64(answered[faID]) / float64(questionCount) * 100)

		record, err := u.scoreRepo.Commit(repositories.ScoreCommit{
			AssessmentID:         assessmentID,
			FocusAreaID:          &faID,
			Score:                average,
			QuestionCount:        questionCount,
			AnsweredCount:        answered[faID],
			CompletionPercentage: completion,
		})
		if err != nil {
			return nil, fmt.Errorf("committing focus area %d score: %w", faID, err)
		}

		breakdown.FocusAreas = append(breakdown.FocusAreas, FocusAreaScore{
			FocusAreaID:          faID,
			FocusAreaName:        names[faID],
			Score:                record.Score,
			Level:                record.Level,
			QuestionCount:        record.QuestionCount,
			AnsweredCount:        record.AnsweredCount,
			CompletionPercentage: record.CompletionPercentage,
			Version:              record.Version,
		})
		sumOfAverages += average
	}

	completion := 0.0
	if totalQuestions > 0 {
		completion = maturity.Round2(float64(totalAnswered) / float64(totalQuestions) * 100)
	}
	breakdown.CompletionPercentage = completion

	if len(breakdown.FocusAreas) > 0 {
		overall := maturity.Round2(sumOfAverages / float64(len(breakdown.FocusAreas)))
		record, err := u.scoreRepo.Commit(repositories.ScoreCommit{
			AssessmentID:         assessmentID,
			FocusAreaID:          nil,
			Score:                overall,
			QuestionCount:        totalQuestions,
			AnsweredCount:        totalAnswered,
			CompletionPercentage: completion,
		})
		if err != nil {
			return nil, fmt.Errorf("committing overall score: %w", err)
		}
		breakdown.Overall = &record.Score
		level := record.Level
		breakdown.OverallLevel = &level
	}

	u.cache.Delete(currentScoresCacheKey(assessmentID))
	u.log.Info("scores calculated",
		"assessment_id", assessmentID,
		"focus_areas", len(breakdown.FocusAreas),
		"completion", completion,
	)
	return breakdown, nil
}

// GetCurrentScores reads the current ledger rows for an assessment, serving
// from cache when a recent read exists.
func (u *ScoringUseCase) GetCurrentScores(assessmentID uint) (*ScoreBreakdown, error) {
	key := currentScoresCacheKey(assessmentID)
	if cached, found := u.cache.Get(key); found {
		if breakdown, ok := cached.(*ScoreBreakdown); ok {
			return breakdown, nil
		}
	}

	if _, err := u.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}

	faScores, err := u.scoreRepo.FindCurrentFocusAreaScores(assessmentID)
	if err != nil {
		return nil, err
	}
	overall, err := u.scoreRepo.FindCurrentOverallScore(assessmentID)
	if err != nil {
		return nil, err
	}

	breakdown := &ScoreBreakdown{AssessmentID: assessmentID}
	for _, s := range faScores {
		fa := FocusAreaScore{
			FocusAreaID:          *s.FocusAreaID,
			Score:                s.Score,
			Level:                s.Level,
			QuestionCount:        s.QuestionCount,
			AnsweredCount:        s.AnsweredCount,
			CompletionPercentage: s.CompletionPercentage,
			Version:              s.Version,
		}
		if s.FocusArea != nil {
			fa.FocusAreaName = s.FocusArea.DisplayName
		}
		breakdown.FocusAreas = append(breakdown.FocusAreas, fa)
	}
	if overall != nil {
		breakdown.Overall = &overall.Score
		level := overall.Level
		breakdown.OverallLevel = &level
		breakdown.CompletionPercentage = overall.CompletionPercentage
	}

	u.cache.Set(key, breakdown, currentScoresTTL)
	return breakdown, nil
}

// GetHistory returns every ledger version for one key. A nil focusAreaID
// selects the overall score history.
func (u *ScoringUseCase) GetHistory(assessmentID uint, focusAreaID *uint) ([]entities.MaturityScore, error) {
	if _, err := u.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}
	if focusAreaID != nil {
		if _, err := u.assessmentRepo.FindFocusAreaByID(*focusAreaID); err != nil {
			return nil, err
		}
	}
	return u.scoreRepo.FindHistory(assessmentID, focusAreaID)
}
