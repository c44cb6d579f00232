package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	StatusScheduled    SessionStatus = "scheduled"
	StatusPending      SessionStatus = "pending"
	StatusDraft        SessionStatus = "draft"
	StatusCompleted    SessionStatus = "completed"
	StatusDisqualified SessionStatus = "disqualified"
)

// InterviewSession is one mock interview run. Score, status and
// completed_at are set exactly once on completion; completed sessions are
// only touched again by re-evaluation.
type InterviewSession struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	InterviewType string        `gorm:"type:text" json:"interview_type"`
	Domain        string        `gorm:"type:text" json:"domain"`
	Score         *float64      `gorm:"type:decimal(5,2)" json:"score,omitempty"`
	Status        SessionStatus `gorm:"not null;default:'pending'" json:"status"`
	CompletedAt   *time.Time    `gorm:"type:timestamp" json:"completed_at,omitempty"`
	CreatedAt     time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Answers []UserAnswer `gorm:"foreignKey:SessionID" json:"answers,omitempty"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

// Validate rejects rows missing required fields before they reach the
// aggregators. Rows from the store are parsed, not trusted.
func (s *InterviewSession) Validate() error {
	if s.ID == uuid.Nil {
		return fmt.Errorf("session missing id")
	}
	if s.UserID == uuid.Nil {
		return fmt.Errorf("session %s missing user id", s.ID)
	}
	switch s.Status {
	case StatusScheduled, StatusPending, StatusDraft, StatusCompleted, StatusDisqualified:
	default:
		return fmt.Errorf("session %s has unknown status %q", s.ID, s.Status)
	}
	if s.Status == StatusCompleted && s.CompletedAt == nil {
		return fmt.Errorf("session %s completed without completed_at", s.ID)
	}
	return nil
}

// UserAnswer is a single answer inside a session. IsCorrect is tri-state:
// nil until the evaluator has run. Mutated exactly once, by the evaluator.
type UserAnswer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID  uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null" json:"question_id"`
	AnswerText string    `gorm:"type:text" json:"answer_text"`
	IsCorrect  *bool     `gorm:"type:boolean" json:"is_correct,omitempty"`
	AIFeedback *string   `gorm:"type:text" json:"ai_feedback,omitempty"`
	TimeTaken  int       `gorm:"type:integer" json:"time_taken"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Question *InterviewQuestion `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}

// Attempted reports whether the answer carries any actual text.
func (a *UserAnswer) Attempted() bool {
	return a.AnswerText != ""
}
