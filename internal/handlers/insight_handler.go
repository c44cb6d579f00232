package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/services"
)

type InsightHandler struct {
	insight services.InsightService
}

func NewInsightHandler(insight services.InsightService) *InsightHandler {
	return &InsightHandler{insight: insight}
}

// HandleSkillInsight handles POST /functions/generate-skill-insight
func (h *InsightHandler) HandleSkillInsight(c *fiber.Ctx) error {
	var req models.SkillInsightRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Skill == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "skill is required",
		})
	}

	insight, err := h.insight.Generate(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.SkillInsightResponse{Insight: insight})
}
