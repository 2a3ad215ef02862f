package repositories

import (
	"testing"

	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/database/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema. The
// pool is pinned to a single connection so every query sees the same sqlite
// memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// seedAssessment creates an assessment with one focus area and returns both.
func seedAssessment(t *testing.T, db *gorm.DB) (*entities.Assessment, *entities.FocusArea) {
	t.Helper()

	assessment := &entities.Assessment{Name: "Annual BCM Review", OrganizationID: 1, Status: "in_progress"}
	if err := db.Create(assessment).Error; err != nil {
		t.Fatalf("seeding assessment: %v", err)
	}
	fa := &entities.FocusArea{Name: "analysis", DisplayName: "Analysis", OrderIndex: 3, IsActive: true}
	if err := db.Create(fa).Error; err != nil {
		t.Fatalf("seeding focus area: %v", err)
	}
	return assessment, fa
}
