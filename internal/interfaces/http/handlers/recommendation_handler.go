package handlers

import (
	"strings"

	"github.com/PavaniTiago/bcm-maturity-api/internal/application/usecases"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler serves recommendation generation and workflow routes.
type RecommendationHandler struct {
	recommendationUseCase *usecases.RecommendationUseCase
}

func NewRecommendationHandler(recommendationUseCase *usecases.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
	}
}

// Generate creates recommendations from the current under-threshold scores.
// With replace=true prior proposed recommendations are purged in the same
// transaction; the default appends, matching repeated-run behavior.
// POST /assessments/:id/recommendations/generate?replace=
func (h *RecommendationHandler) Generate(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	replace := c.Query("replace", "false") == "true"

	recs, err := h.recommendationUseCase.Generate(assessmentID, replace)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error generating recommendations: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":          "recommendations generated",
		"count":           len(recs),
		"recommendations": recs,
	})
}

// List returns an assessment's recommendations with an optional status filter.
// GET /assessments/:id/recommendations?status=
func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	status := c.Query("status", "")
	if status != "" && !entities.ValidStatus(status) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'status' parameter"})
	}

	recs, err := h.recommendationUseCase.List(assessmentID, status)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching recommendations: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  recs,
		"total": len(recs),
	})
}

type createRecommendationRequest struct {
	AssessmentID     uint    `json:"assessment_id"`
	FocusAreaID      uint    `json:"focus_area_id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	CurrentScore     float64 `json:"current_score"`
	TargetScore      float64 `json:"target_score"`
	Priority         string  `json:"priority"`
	SuggestedActions string  `json:"suggested_actions"`
	EstimatedEffort  int     `json:"estimated_effort"`
	TimelineWeeks    int     `json:"timeline_weeks"`
}

// Create stores a manually authored recommendation. This is the only path
// that may assign the low priority.
// POST /recommendations
func (h *RecommendationHandler) Create(c *fiber.Ctx) error {
	var req createRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AssessmentID == 0 || req.FocusAreaID == 0 || strings.TrimSpace(req.Title) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "assessment_id, focus_area_id and title are required"})
	}

	rec := &entities.ImprovementRecommendation{
		AssessmentID:     req.AssessmentID,
		FocusAreaID:      req.FocusAreaID,
		Title:            req.Title,
		Description:      req.Description,
		CurrentScore:     req.CurrentScore,
		TargetScore:      req.TargetScore,
		Priority:         req.Priority,
		SuggestedActions: req.SuggestedActions,
		EstimatedEffort:  req.EstimatedEffort,
		TimelineWeeks:    req.TimelineWeeks,
	}
	if err := h.recommendationUseCase.CreateManual(rec); err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(rec)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves a recommendation through its workflow, identified by its
// public REC- token.
// PATCH /recommendations/:recommendation_id/status
func (h *RecommendationHandler) UpdateStatus(c *fiber.Ctx) error {
	recommendationID := c.Params("recommendation_id")
	if recommendationID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'recommendation_id' parameter"})
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Request body must carry a status"})
	}

	rec, err := h.recommendationUseCase.UpdateStatus(recommendationID, req.Status)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Recommendation not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rec)
}
