package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
)

type ScheduleHandler struct {
	scheduleRepo repositories.ScheduleRepository
}

func NewScheduleHandler(scheduleRepo repositories.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{scheduleRepo: scheduleRepo}
}

// HandleListSchedules handles GET /schedule
func (h *ScheduleHandler) HandleListSchedules(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	schedules, err := h.scheduleRepo.FindUpcomingByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"schedules": schedules,
	})
}

// HandleCreateSchedule handles POST /schedule
func (h *ScheduleHandler) HandleCreateSchedule(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	var req models.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interview_type is required",
		})
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "scheduled_at must be an RFC3339 timestamp",
		})
	}

	if scheduledAt.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "scheduled_at must be in the future",
		})
	}

	schedule := &models.ScheduledSession{
		ID:            uuid.New(),
		UserID:        userID,
		InterviewType: req.InterviewType,
		Domain:        req.Domain,
		ScheduledAt:   scheduledAt,
		Status:        models.ScheduleUpcoming,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.scheduleRepo.Create(schedule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create scheduled session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(schedule)
}

// HandleCancelSchedule handles DELETE /schedule/:id
func (h *ScheduleHandler) HandleCancelSchedule(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid schedule ID format",
		})
	}

	if err := h.scheduleRepo.Cancel(scheduleID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Scheduled session not found",
		})
	}

	return c.JSON(fiber.Map{
		"id":     scheduleID.String(),
		"status": string(models.ScheduleCancelled),
	})
}
