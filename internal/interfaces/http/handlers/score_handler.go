package handlers

import (
	"errors"
	"strconv"

	"github.com/PavaniTiago/bcm-maturity-api/internal/application/usecases"
	"github.com/PavaniTiago/bcm-maturity-api/internal/domain/repositories"
	"github.com/gofiber/fiber/v2"
)

// ScoreHandler serves score calculation and the score read endpoints.
type ScoreHandler struct {
	scoringUseCase *usecases.ScoringUseCase
}

func NewScoreHandler(scoringUseCase *usecases.ScoringUseCase) *ScoreHandler {
	return &ScoreHandler{
		scoringUseCase: scoringUseCase,
	}
}

// parseAssessmentID reads the :id path parameter.
func parseAssessmentID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid assessment id")
	}
	return uint(id), nil
}

// notFound reports whether err is one of the repository not-found sentinels.
func notFound(err error) bool {
	return errors.Is(err, repositories.ErrAssessmentNotFound) ||
		errors.Is(err, repositories.ErrFocusAreaNotFound) ||
		errors.Is(err, repositories.ErrRecommendationNotFound)
}

// CalculateScores recomputes all scores for an assessment.
// POST /assessments/:id/scores/calculate
func (h *ScoreHandler) CalculateScores(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	breakdown, err := h.scoringUseCase.CalculateScores(assessmentID)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error calculating scores: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"status": "scores calculated",
		"result": breakdown,
	})
}

// GetCurrentScores returns the current score breakdown.
// GET /assessments/:id/scores
func (h *ScoreHandler) GetCurrentScores(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	breakdown, err := h.scoringUseCase.GetCurrentScores(assessmentID)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching scores: " + err.Error()})
	}

	return c.JSON(breakdown)
}

// GetScoreHistory returns all score versions for one ledger key. Without a
// focus_area_id query parameter the overall score history is returned.
// GET /assessments/:id/scores/history?focus_area_id=
func (h *ScoreHandler) GetScoreHistory(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	var focusAreaID *uint
	if raw := c.Query("focus_area_id", ""); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid 'focus_area_id' parameter"})
		}
		id := uint(parsed)
		focusAreaID = &id
	}

	history, err := h.scoringUseCase.GetHistory(assessmentID, focusAreaID)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching score history: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  history,
		"total": len(history),
	})
}
