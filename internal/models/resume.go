package models

import (
	"time"

	"github.com/google/uuid"
)

// Resume is an uploaded resume PDF plus its extracted text. The text feeds
// extra candidate context into mentor responses.
type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	ExtractedText    string    `gorm:"type:text" json:"-"`
	PageCount        int       `gorm:"type:integer" json:"page_count"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
