package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
	"yudhaprm/skillorbit/internal/response"
)

const defaultPageSize = 20

type SessionHandler struct {
	sessionRepo repositories.SessionRepository
	answerRepo  repositories.AnswerRepository
}

func NewSessionHandler(
	sessionRepo repositories.SessionRepository,
	answerRepo repositories.AnswerRepository,
) *SessionHandler {
	return &SessionHandler{
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
	}
}

// HandleStartSession handles POST /sessions
func (h *SessionHandler) HandleStartSession(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	var req models.StartSessionRequest
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

	if req.Domain == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "domain is required",
		})
	}

	session := &models.InterviewSession{
		ID:            uuid.New(),
		UserID:        userID,
		InterviewType: req.InterviewType,
		Domain:        req.Domain,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.sessionRepo.Create(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleListSessions handles GET /sessions?page=&page_size=
func (h *SessionHandler) HandleListSessions(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}

	sessions, total, err := h.sessionRepo.FindByUser(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"sessions":   sessions,
		"pagination": response.NewPagination(page, pageSize, total),
	})
}

// HandleGetSession handles GET /sessions/:id
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	if session.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(session)
}

// HandleSubmitAnswer handles POST /sessions/:id/answers
func (h *SessionHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question_id format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil || session.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	if session.Status == models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Session already completed",
		})
	}

	answer := &models.UserAnswer{
		ID:         uuid.New(),
		SessionID:  sessionID,
		QuestionID: questionID,
		AnswerText: req.AnswerText,
		TimeTaken:  req.TimeTaken,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := h.answerRepo.Create(answer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save answer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}

// HandleCompleteSession handles POST /sessions/:id/complete
func (h *SessionHandler) HandleCompleteSession(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	var req models.CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Score < 0 || req.Score > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "score must be between 0 and 100",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil || session.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	status := models.StatusCompleted
	if req.Disqualified {
		status = models.StatusDisqualified
	}

	if err := h.sessionRepo.Complete(sessionID, req.Score, status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"id":     sessionID.String(),
		"status": string(status),
	})
}
