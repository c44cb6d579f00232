package models

import (
	"time"

	"github.com/google/uuid"
)

// InterviewQuestion is immutable reference data: the question bank.
type InterviewQuestion struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Category             string    `gorm:"type:text" json:"category"`
	QuestionType         string    `gorm:"type:text" json:"question_type"`
	QuestionText         string    `gorm:"type:text;not null" json:"question_text"`
	ExpectedAnswerFormat string    `gorm:"type:text" json:"expected_answer_format"`
	CreatedAt            time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}
