package models

// Request/response shapes for the AI function endpoints and the dashboard
// data routes.

type EvaluateAnswerRequest struct {
	SessionID  string `json:"session_id" validate:"required,uuid"`
	QuestionID string `json:"question_id" validate:"required,uuid"`
	UserAnswer string `json:"user_answer" validate:"required"`
}

// AnswerEvaluation is what the language model is asked to return and what
// gets persisted onto the matching UserAnswer. IsCorrect stays nil when the
// model could not decide.
type AnswerEvaluation struct {
	IsCorrect  *bool   `json:"is_correct"`
	Score      float64 `json:"score"`
	AIFeedback string  `json:"ai_feedback"`
}

type EvaluateAnswerResponse struct {
	Success    bool              `json:"success"`
	Evaluation *AnswerEvaluation `json:"evaluation"`
}

// PerformanceData is the aggregate snapshot the dashboard sends along with
// mentor chat messages.
type PerformanceData struct {
	AverageScore    float64 `json:"average_score"`
	TotalInterviews int     `json:"total_interviews"`
	BestCategory    string  `json:"best_category"`
	WorstCategory   string  `json:"worst_category"`
	Trend           string  `json:"trend"`
}

type MentorRequest struct {
	Message         string           `json:"message"`
	PerformanceData *PerformanceData `json:"performanceData"`
}

type MentorResponse struct {
	Response string `json:"response"`
}

type SkillInsightRequest struct {
	Skill         string             `json:"skill"`
	Score         float64            `json:"score"`
	Category      string             `json:"category"`
	PracticeCount int                `json:"practiceCount"`
	Stats         map[string]float64 `json:"stats,omitempty"`
}

type SkillInsightResponse struct {
	Insight string `json:"insight"`
}

type StartSessionRequest struct {
	InterviewType string `json:"interview_type" validate:"required"`
	Domain        string `json:"domain" validate:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,uuid"`
	AnswerText string `json:"answer_text"`
	TimeTaken  int    `json:"time_taken"`
}

type CompleteSessionRequest struct {
	Score        float64 `json:"score"`
	Disqualified bool    `json:"disqualified"`
}

type ScheduleRequest struct {
	InterviewType string `json:"interview_type" validate:"required"`
	Domain        string `json:"domain"`
	ScheduledAt   string `json:"scheduled_at" validate:"required"`
}

type PreferenceRequest struct {
	VoiceEnabled bool   `json:"voice_enabled"`
	Theme        string `json:"theme"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	PageCount    int    `json:"page_count"`
}
