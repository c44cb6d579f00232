package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
)

var validThemes = map[string]bool{
	"dark":  true,
	"light": true,
}

type PreferenceHandler struct {
	prefRepo repositories.PreferenceRepository
}

func NewPreferenceHandler(prefRepo repositories.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{prefRepo: prefRepo}
}

// HandleGetPreferences handles GET /preferences
func (h *PreferenceHandler) HandleGetPreferences(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	pref, err := h.prefRepo.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(pref)
}

// HandleSavePreferences handles PUT /preferences
func (h *PreferenceHandler) HandleSavePreferences(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	var req models.PreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Theme == "" {
		req.Theme = "dark"
	}
	if !validThemes[req.Theme] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "theme must be dark or light",
		})
	}

	pref := &models.UserPreference{
		UserID:       userID,
		VoiceEnabled: req.VoiceEnabled,
		Theme:        req.Theme,
		UpdatedAt:    time.Now(),
	}

	if err := h.prefRepo.Save(pref); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(pref)
}
