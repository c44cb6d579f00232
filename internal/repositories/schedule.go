package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yudhaprm/skillorbit/internal/models"
)

type ScheduleRepository interface {
	Create(schedule *models.ScheduledSession) error
	FindUpcomingByUser(userID uuid.UUID) ([]models.ScheduledSession, error)
	Cancel(id, userID uuid.UUID) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(schedule *models.ScheduledSession) error {
	if err := r.db.Create(schedule).Error; err != nil {
		return fmt.Errorf("failed to create scheduled session: %w", err)
	}
	return nil
}

func (r *scheduleRepository) FindUpcomingByUser(userID uuid.UUID) ([]models.ScheduledSession, error) {
	var schedules []models.ScheduledSession
	err := r.db.
		Where("user_id = ? AND status = ? AND scheduled_at >= ?",
			userID, models.ScheduleUpcoming, time.Now()).
		Order("scheduled_at ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find scheduled sessions: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) Cancel(id, userID uuid.UUID) error {
	result := r.db.Model(&models.ScheduledSession{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, models.ScheduleUpcoming).
		Updates(map[string]interface{}{
			"status":     models.ScheduleCancelled,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to cancel scheduled session: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("scheduled session not found")
	}

	return nil
}
