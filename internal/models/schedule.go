package models

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleStatus string

const (
	ScheduleUpcoming  ScheduleStatus = "upcoming"
	ScheduleCancelled ScheduleStatus = "cancelled"
	ScheduleDone      ScheduleStatus = "done"
)

// ScheduledSession is a future interview slot booked from the dashboard.
type ScheduledSession struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	InterviewType string         `gorm:"type:text" json:"interview_type"`
	Domain        string         `gorm:"type:text" json:"domain"`
	ScheduledAt   time.Time      `gorm:"type:timestamp;not null" json:"scheduled_at"`
	Status        ScheduleStatus `gorm:"not null;default:'upcoming'" json:"status"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ScheduledSession) TableName() string {
	return "scheduled_sessions"
}
