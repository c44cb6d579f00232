package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/services"
)

type MentorHandler struct {
	mentor services.MentorService
}

func NewMentorHandler(mentor services.MentorService) *MentorHandler {
	return &MentorHandler{mentor: mentor}
}

// HandleMentorResponse handles POST /functions/generate-mentor-response.
// When every generation path fails the client still gets usable prose in
// the response field, alongside the error and a 500.
func (h *MentorHandler) HandleMentorResponse(c *fiber.Ctx) error {
	var req models.MentorRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	var userID *uuid.UUID
	if id, ok := middleware.UserID(c); ok {
		userID = &id
	}

	response, err := h.mentor.Respond(c.Context(), &req, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    err.Error(),
			"response": services.TemplateMentorResponse(req.PerformanceData),
		})
	}

	return c.JSON(models.MentorResponse{Response: response})
}
