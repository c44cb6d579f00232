package models

import (
	"time"

	"github.com/google/uuid"
)

// UserPreference replaces the old client-side toggles with an explicit
// per-user row: loaded once at dashboard init, saved on every change.
type UserPreference struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key" json:"user_id"`
	VoiceEnabled bool      `gorm:"not null;default:false" json:"voice_enabled"`
	Theme        string    `gorm:"type:text;not null;default:'dark'" json:"theme"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
