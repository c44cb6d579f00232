package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yudhaprm/skillorbit/internal/models"
)

type SessionRepository interface {
	Create(session *models.InterviewSession) error
	FindByID(id uuid.UUID) (*models.InterviewSession, error)
	FindByUser(userID uuid.UUID, limit, offset int) ([]models.InterviewSession, int64, error)
	FindCompletedByUser(userID uuid.UUID, limit int) ([]models.InterviewSession, error)
	FindForGalaxy(userID uuid.UUID) ([]models.InterviewSession, error)
	Complete(id uuid.UUID, score float64, status models.SessionStatus) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.InterviewSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.db.
		Preload("Answers").
		Preload("Answers.Question").
		Where("id = ?", id).
		First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

// FindByUser returns a page of the user's interview history, newest first,
// together with the total row count for pagination.
func (r *sessionRepository) FindByUser(userID uuid.UUID, limit, offset int) ([]models.InterviewSession, int64, error) {
	var total int64
	if err := r.db.Model(&models.InterviewSession{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	var sessions []models.InterviewSession
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&sessions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find sessions: %w", err)
	}

	return sessions, total, nil
}

func (r *sessionRepository) FindCompletedByUser(userID uuid.UUID, limit int) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.
		Preload("Answers").
		Preload("Answers.Question").
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Order("completed_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find completed sessions: %w", err)
	}
	return sessions, nil
}

// FindForGalaxy fetches every session that can contribute to the skill
// galaxy: completed ones plus any attempted session carrying answers.
func (r *sessionRepository) FindForGalaxy(userID uuid.UUID) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.
		Preload("Answers").
		Preload("Answers.Question").
		Where("user_id = ? AND status IN ?", userID, []models.SessionStatus{
			models.StatusCompleted,
			models.StatusPending,
			models.StatusDisqualified,
		}).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions for galaxy: %w", err)
	}
	return sessions, nil
}

// Complete sets score, status and completed_at in one update. The status
// transition happens once; completed rows are not re-completed.
func (r *sessionRepository) Complete(id uuid.UUID, score float64, status models.SessionStatus) error {
	now := time.Now()
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ? AND status <> ?", id, models.StatusCompleted).
		Updates(map[string]interface{}{
			"score":        score,
			"status":       status,
			"completed_at": now,
			"updated_at":   now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete session: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found or already completed")
	}

	return nil
}
