package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/services"
)

type EvaluateHandler struct {
	evaluator services.EvaluatorService
}

func NewEvaluateHandler(evaluator services.EvaluatorService) *EvaluateHandler {
	return &EvaluateHandler{evaluator: evaluator}
}

// HandleEvaluate handles POST /functions/analyze-interview-answers
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateAnswerRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	if req.QuestionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question_id is required",
		})
	}

	if req.UserAnswer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_answer is required",
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session_id format",
		})
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question_id format",
		})
	}

	evaluation, err := h.evaluator.EvaluateAnswer(c.Context(), sessionID, questionID, req.UserAnswer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.EvaluateAnswerResponse{
		Success:    true,
		Evaluation: evaluation,
	})
}
