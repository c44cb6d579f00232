package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/services"
)

type GalaxyHandler struct {
	galaxy services.GalaxyService
}

func NewGalaxyHandler(galaxy services.GalaxyService) *GalaxyHandler {
	return &GalaxyHandler{galaxy: galaxy}
}

// HandleGetGalaxy handles GET /galaxy
func (h *GalaxyHandler) HandleGetGalaxy(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	skills, err := h.galaxy.BuildGalaxy(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"skills": skills,
	})
}
