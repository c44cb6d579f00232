package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yudhaprm/skillorbit/internal/models"
)

type AnswerRepository interface {
	Create(answer *models.UserAnswer) error
	FindBySessionAndQuestion(sessionID, questionID uuid.UUID) (*models.UserAnswer, error)
	UpdateEvaluation(sessionID, questionID uuid.UUID, eval *models.AnswerEvaluation) error
	FindUnevaluated(limit int) ([]models.UserAnswer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(answer *models.UserAnswer) error {
	if err := r.db.Create(answer).Error; err != nil {
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

func (r *answerRepository) FindBySessionAndQuestion(sessionID, questionID uuid.UUID) (*models.UserAnswer, error) {
	var answer models.UserAnswer
	err := r.db.
		Where("session_id = ? AND question_id = ?", sessionID, questionID).
		First(&answer).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("answer not found")
		}
		return nil, fmt.Errorf("failed to find answer: %w", err)
	}
	return &answer, nil
}

// UpdateEvaluation writes the evaluator's verdict onto the answer matched by
// (session_id, question_id). This is the answer's single post-create mutation.
func (r *answerRepository) UpdateEvaluation(sessionID, questionID uuid.UUID, eval *models.AnswerEvaluation) error {
	updates := map[string]interface{}{
		"is_correct":  eval.IsCorrect,
		"ai_feedback": eval.AIFeedback,
		"updated_at":  time.Now(),
	}

	result := r.db.Model(&models.UserAnswer{}).
		Where("session_id = ? AND question_id = ?", sessionID, questionID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update evaluation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("answer not found")
	}

	return nil
}

// FindUnevaluated returns answered questions from completed sessions that
// still lack feedback, oldest first. The re-evaluation worker sweeps these.
func (r *answerRepository) FindUnevaluated(limit int) ([]models.UserAnswer, error) {
	var answers []models.UserAnswer
	err := r.db.
		Joins("JOIN interview_sessions ON interview_sessions.id = user_answers.session_id").
		Where("interview_sessions.status = ?", models.StatusCompleted).
		Where("user_answers.ai_feedback IS NULL").
		Where("user_answers.answer_text <> ''").
		Order("user_answers.created_at ASC").
		Limit(limit).
		Find(&answers).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find unevaluated answers: %w", err)
	}

	return answers, nil
}
