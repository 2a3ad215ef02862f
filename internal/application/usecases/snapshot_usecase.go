package usecases

import (
	"fmt"
	"strconv"
	"time"

	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/repositories"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
	"gorm.io/datatypes"
)

// SnapshotUseCase captures immutable point-in-time copies of an assessment's
// score breakdown for trend reporting.
type SnapshotUseCase struct {
	assessmentRepo *repositories.AssessmentRepository
	scoreRepo      *repositories.ScoreRepository
	snapshotRepo   *repositories.SnapshotRepository
	log            *logger.Logger
}

func NewSnapshotUseCase(
	assessmentRepo *repositories.AssessmentRepository,
	scoreRepo *repositories.ScoreRepository,
	snapshotRepo *repositories.SnapshotRepository,
	log *logger.Logger,
) *SnapshotUseCase {
	return &SnapshotUseCase{
		assessmentRepo: assessmentRepo,
		scoreRepo:      scoreRepo,
		snapshotRepo:   snapshotRepo,
		log:            log,
	}
}

// Capture denormalizes whatever is currently in the ledger into one additive
// snapshot row. No recomputation happens here: capturing twice in a row with
// no score commit in between yields identical payloads with distinct
// timestamps.
func (u *SnapshotUseCase) Capture(assessmentID uint, snapshotType, note string, createdBy *uint) (*entities.ScoreSnapshot, error) {
	if snapshotType == "" {
		snapshotType = entities.SnapshotAutomatic
	}
	if !entities.ValidSnapshotType(snapshotType) {
		return nil, fmt.Errorf("unknown snapshot type %q", snapshotType)
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

	focusAreaScores := datatypes.JSONMap{}
	questionCount := 0
	answeredCount := 0
	for _, s := range faScores {
		focusAreaScores[strconv.FormatUint(uint64(*s.FocusAreaID), 10)] = s.Score
		questionCount += s.QuestionCount
		answeredCount += s.AnsweredCount
	}

	snapshot := &entities.ScoreSnapshot{
		AssessmentID:    assessmentID,
		SnapshotType:    snapshotType,
		TakenAt:         time.Now().UTC(),
		FocusAreaScores: focusAreaScores,
		QuestionStats: datatypes.JSONMap{
			"question_count":   questionCount,
			"answered_count":   answeredCount,
			"focus_area_count": len(faScores),
		},
		Note:        note,
		CreatedByID: createdBy,
		Version:     1,
	}
	if overall != nil {
		snapshot.OverallScore = &overall.Score
		level := overall.Level
		snapshot.OverallLevel = &level
		snapshot.CompletionPercentage = overall.CompletionPercentage
	}

	if err := u.snapshotRepo.Create(snapshot); err != nil {
		return nil, err
	}

	u.log.Info("score snapshot captured",
		"assessment_id", assessmentID,
		"snapshot_type", snapshotType,
		"focus_areas", len(faScores),
	)
	return snapshot, nil
}

// List returns the snapshot history for an assessment, newest first.
func (u *SnapshotUseCase) List(assessmentID uint) ([]entities.ScoreSnapshot, error) {
	if _, err := u.assessmentRepo.FindByID(assessmentID); err != nil {
		return nil, err
	}
	return u.snapshotRepo.FindByAssessment(assessmentID)
}
