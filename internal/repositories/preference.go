package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yudhaprm/skillorbit/internal/models"
)

type PreferenceRepository interface {
	Get(userID uuid.UUID) (*models.UserPreference, error)
	Save(pref *models.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

// Get returns the user's preferences, or defaults when no row exists yet.
func (r *preferenceRepository) Get(userID uuid.UUID) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.UserPreference{
				UserID:       userID,
				VoiceEnabled: false,
				Theme:        "dark",
			}, nil
		}
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return &pref, nil
}

func (r *preferenceRepository) Save(pref *models.UserPreference) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"voice_enabled", "theme", "updated_at"}),
	}).Create(pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
