package routes

import (
	"github.com/PavaniTiago/bcm-maturity-api/internal/application/maturity"
	"github.com/PavaniTiago/bcm-maturity-api/internal/application/usecases"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/repositories"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/cache"
	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/bcm-maturity-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/bcm-maturity-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, log *logger.Logger) {
	// Performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// ETag support so dashboards polling current scores can use caching
	app.Use(etag.New())

	app.Use(middleware.RequestLogger(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	assessmentRepo := repositories.NewAssessmentRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	scoreRepo := repositories.NewScoreRepository(db)
	recommendationRepo := repositories.NewRecommendationRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db)

	// Shared infrastructure
	scoreCache := cache.New()
	templates := maturity.DefaultTemplates()

	// Use Cases
	scoringUseCase := usecases.NewScoringUseCase(assessmentRepo, responseRepo, scoreRepo, scoreCache, log)
	recommendationUseCase := usecases.NewRecommendationUseCase(assessmentRepo, scoreRepo, recommendationRepo, templates, log)
	snapshotUseCase := usecases.NewSnapshotUseCase(assessmentRepo, scoreRepo, snapshotRepo, log)

	// Handlers
	scoreHandler := handlers.NewScoreHandler(scoringUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotUseCase)

	// Mutations require a valid token; reads stay open for dashboard polling
	// behind the gateway.
	auth := middleware.JWTAuth()

	// Score routes
	app.Post("/assessments/:id/scores/calculate", auth, scoreHandler.CalculateScores)
	app.Get("/assessments/:id/scores", scoreHandler.GetCurrentScores)
	app.Get("/assessments/:id/scores/history", scoreHandler.GetScoreHistory)

	// Recommendation routes
	app.Post("/assessments/:id/recommendations/generate", auth, recommendationHandler.Generate)
	app.Get("/assessments/:id/recommendations", recommendationHandler.List)
	app.Post("/recommendations", auth, recommendationHandler.Create)
	app.Patch("/recommendations/:recommendation_id/status", auth, recommendationHandler.UpdateStatus)

	// Snapshot routes
	app.Post("/assessments/:id/snapshots", auth, snapshotHandler.Capture)
	app.Get("/assessments/:id/snapshots", snapshotHandler.List)
}
