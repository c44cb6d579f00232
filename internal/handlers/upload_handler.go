package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/middleware"
	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
	"yudhaprm/skillorbit/internal/services"
)

type UploadHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewUploadHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadResume handles POST /resume
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "not authenticated",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	content, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read resume PDF: %v", err),
		})
	}

	resume := &models.Resume{
		ID:               uuid.New(),
		UserID:           userID,
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		ExtractedText:    content.Text,
		PageCount:        content.PageCount,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.resumeRepo.Create(resume); err != nil {
		// Cleanup stored file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:           resume.ID.String(),
		Filename:     resume.Filename,
		OriginalName: resume.OriginalFileName,
		PageCount:    resume.PageCount,
	})
}
