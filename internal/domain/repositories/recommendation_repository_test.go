package repositories

import (
	"errors"
	"strings"
	"testing"

	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
)

func newTestRecommendation(assessmentID, focusAreaID uint, status string) *entities.ImprovementRecommendation {
	return &entities.ImprovementRecommendation{
		AssessmentID: assessmentID,
		FocusAreaID:  focusAreaID,
		Title:        "Improve Analysis Maturity",
		CurrentScore: 1.5,
		TargetScore:  2.5,
		Priority:     entities.PriorityCritical,
		Status:       status,
	}
}

func TestCreateBatchAssignsIDs(t *testing.T) {
	db := setupTestDB(t)
	assessment, fa := seedAssessment(t, db)
	repo := NewRecommendationRepository(db)

	recs := []*entities.ImprovementRecommendation{
		newTestRecommendation(assessment.ID, fa.ID, entities.StatusProposed),
		newTestRecommendation(assessment.ID, fa.ID, entities.StatusProposed),
	}
	if err := repo.CreateBatch(assessment.ID, recs, false); err != nil {
		t.Fatalf("batch: %v", err)
	}

	seen := map[string]bool{}
	for _, rec := range recs {
		if !strings.HasPrefix(rec.RecommendationID, "REC-") || len(rec.RecommendationID) != 12 {
			t.Errorf("unexpected recommendation id %q", rec.RecommendationID)
		}
		if seen[rec.RecommendationID] {
			t.Errorf("duplicate recommendation id %q", rec.RecommendationID)
		}
		seen[rec.RecommendationID] = true
	}
}

func TestCreateBatchReplacePurgesProposedOnly(t *testing.T) {
	db := setupTestDB(t)
	assessment, fa := seedAssessment(t, db)
	repo := NewRecommendationRepository(db)

	approved := newTestRecommendation(assessment.ID, fa.ID, entities.StatusApproved)
	if err := repo.Create(approved); err != nil {
		t.Fatalf("seeding approved rec: %v", err)
	}
	if err := repo.CreateBatch(assessment.ID, []*entities.ImprovementRecommendation{
		newTestRecommendation(assessment.ID, fa.ID, entities.StatusProposed),
		newTestRecommendation(assessment.ID, fa.ID, entities.StatusProposed),
	}, false); err != nil {
		t.Fatalf("first batch: %v", err)
	}

	// Regenerate with replace: the two proposed rows go away, the approved
	// one must survive.
	if err := repo.CreateBatch(assessment.ID, []*entities.ImprovementRecommendation{
		newTestRecommendation(assessment.ID, fa.ID, entities.StatusProposed),
	}, true); err != nil {
		t.Fatalf("replace batch: %v", err)
	}

	all, err := repo.FindByAssessment(assessment.ID, "")
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 recommendations after replace, got %d", len(all))
	}
	proposed, err := repo.FindByAssessment(assessment.ID, entities.StatusProposed)
	if err != nil {
		t.Fatalf("listing proposed: %v", err)
	}
	if len(proposed) != 1 {
		t.Errorf("expected 1 proposed recommendation, got %d", len(proposed))
	}
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	assessment, fa := seedAssessment(t, db)
	repo := NewRecommendationRepository(db)

	rec := newTestRecommendation(assessment.ID, fa.ID, entities.StatusProposed)
	if err := repo.Create(rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateStatus(rec.RecommendationID, entities.StatusInProgress)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != entities.StatusInProgress {
		t.Errorf("status = %q, want %q", updated.Status, entities.StatusInProgress)
	}

	if _, err := repo.UpdateStatus("REC-MISSING1", entities.StatusApproved); !errors.Is(err, ErrRecommendationNotFound) {
		t.Errorf("expected ErrRecommendationNotFound, got %v", err)
	}
}

func TestAssessmentNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssessmentRepository(db)

	if _, err := repo.FindByID(42); !errors.Is(err, ErrAssessmentNotFound) {
		t.Errorf("expected ErrAssessmentNotFound, got %v", err)
	}
	if _, err := repo.FindFocusAreaByID(42); !errors.Is(err, ErrFocusAreaNotFound) {
		t.Errorf("expected ErrFocusAreaNotFound, got %v", err)
	}
}
