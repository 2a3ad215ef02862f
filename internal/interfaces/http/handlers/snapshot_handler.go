package handlers

import (
	"github.com/PavaniTiago/bcm-maturity-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// SnapshotHandler serves snapshot capture and the trend history.
type SnapshotHandler struct {
	snapshotUseCase *usecases.SnapshotUseCase
}

func NewSnapshotHandler(snapshotUseCase *usecases.SnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotUseCase: snapshotUseCase,
	}
}

type captureSnapshotRequest struct {
	SnapshotType string `json:"snapshot_type"`
	Note         string `json:"note"`
	CreatedByID  *uint  `json:"created_by_id"`
}

// Capture stores a point-in-time copy of the current score breakdown.
// POST /assessments/:id/snapshots
func (h *SnapshotHandler) Capture(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	var req captureSnapshotRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	snapshot, err := h.snapshotUseCase.Capture(assessmentID, req.SnapshotType, req.Note, req.CreatedByID)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(snapshot)
}

// List returns the snapshot trend history, newest first.
// GET /assessments/:id/snapshots
func (h *SnapshotHandler) List(c *fiber.Ctx) error {
	assessmentID, err := parseAssessmentID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid 'id' parameter"})
	}

	snapshots, err := h.snapshotUseCase.List(assessmentID)
	if err != nil {
		if notFound(err) {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching snapshots: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  snapshots,
		"total": len(snapshots),
	})
}
