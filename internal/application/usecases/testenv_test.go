package usecases

import (
	"testing"

	"github.com/PavaniTiago/bcm-maturity-api/internal/application/maturity"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/repositories"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db              *gorm.DB
	scoring         *ScoringUseCase
	recommendations *RecommendationUseCase
	snapshots       *SnapshotUseCase
	scoreRepo       *repositories.ScoreRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := migrations.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	if err := migrations.AddIndexes(db); err != nil {
		t.Fatalf("indexing test database: %v", err)
	}

	assessmentRepo := repositories.NewAssessmentRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	recRepo := repositories.NewRecommendationRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)

	log := logger.NewNop()
	templates := maturity.DefaultTemplates()

	return &testEnv{
		db:              db,
		scoring:         NewScoringUseCase(assessmentRepo, responseRepo, scoreRepo, cache.New(), log),
		recommendations: NewRecommendationUseCase(assessmentRepo, scoreRepo, recRepo, templates, log),
		snapshots:       NewSnapshotUseCase(assessmentRepo, scoreRepo, snapshotRepo, log),
		scoreRepo:       scoreRepo,
	}
}

func (e *testEnv) seedAssessment(t *testing.T) *entities.Assessment {
	t.Helper()
	assessment := &entities.Assessment{Name: "Annual BCM Review", OrganizationID: 1, Status: "in_progress"}
	if err := e.db.Create(assessment).Error; err != nil {
		t.Fatalf("seeding assessment: %v", err)
	}
	return assessment
}

func (e *testEnv) seedFocusArea(t *testing.T, name, displayName string, orderIndex int) *entities.FocusArea {
	t.Helper()
	fa := &entities.FocusArea{Name: name, DisplayName: displayName, OrderIndex: orderIndex, IsActive: true}
	if err := e.db.Create(fa).Error; err != nil {
		t.Fatalf("seeding focus area %s: %v", name, err)
	}
	return fa
}

func (e *testEnv) seedQuestion(t *testing.T, fa *entities.FocusArea, active bool) *entities.Question {
	t.Helper()
	q := &entities.Question{FocusAreaID: fa.ID, Text: "How mature is this practice?", IsActive: active}
	if err := e.db.Create(q).Error; err != nil {
		t.Fatalf("seeding question: %v", err)
	}
	return q
}

// seedResponse stores one response; a nil score models a saved-but-unscored
// answer.
func (e *testEnv) seedResponse(t *testing.T, assessment *entities.Assessment, q *entities.Question, score *int) {
	t.Helper()
	resp := &entities.AssessmentResponse{
		AssessmentID:  assessment.ID,
		QuestionID:    q.ID,
		MaturityScore: score,
		IsSubmitted:   true,
	}
	if err := e.db.Create(resp).Error; err != nil {
		t.Fatalf("seeding response: %v", err)
	}
}

func intPtr(v int) *int {
	return &v
}
