package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yudhaprm/skillorbit/internal/models"
)

type QuestionRepository interface {
	FindByID(id uuid.UUID) (*models.InterviewQuestion, error)
	FindByCategory(category string, limit int) ([]models.InterviewQuestion, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByID(id uuid.UUID) (*models.InterviewQuestion, error) {
	var question models.InterviewQuestion
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("question not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}
	return &question, nil
}

func (r *questionRepository) FindByCategory(category string, limit int) ([]models.InterviewQuestion, error) {
	var questions []models.InterviewQuestion
	err := r.db.
		Where("category ILIKE ?", category).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}
	return questions, nil
}
