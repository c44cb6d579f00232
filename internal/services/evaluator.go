package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
)

// fallbackFeedback is the feedback persisted when the language model reply
// carries no parseable JSON.
const fallbackFeedback = "Your answer was recorded, but automatic evaluation was inconclusive. Review the expected answer format and compare it against your response."

type EvaluatorService interface {
	EvaluateAnswer(ctx context.Context, sessionID, questionID uuid.UUID, userAnswer string) (*models.AnswerEvaluation, error)
}

type evaluatorService struct {
	questionRepo  repositories.QuestionRepository
	answerRepo    repositories.AnswerRepository
	geminiService GeminiService
	openRouter    OpenRouterService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewEvaluatorService(
	questionRepo repositories.QuestionRepository,
	answerRepo repositories.AnswerRepository,
	geminiService GeminiService,
	openRouter OpenRouterService,
	maxRetries int,
) EvaluatorService {
	return &evaluatorService{
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		geminiService: geminiService,
		openRouter:    openRouter,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// EvaluateAnswer grades one answer and persists the verdict onto the
// matching user_answers row. A reply without parseable JSON degrades to the
// safe fallback evaluation instead of failing the request; an unreachable
// language model or store is a hard error.
func (e *evaluatorService) EvaluateAnswer(ctx context.Context, sessionID, questionID uuid.UUID, userAnswer string) (*models.AnswerEvaluation, error) {
	question, err := e.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	prompt := e.promptBuilder.BuildAnswerEvaluationPrompt(question, userAnswer)

	response, err := e.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, e.maxRetries)
	if err != nil && e.openRouter.Configured() {
		log.Printf("⚠️ Gemini evaluation failed: %v. Falling back to OpenRouter...\n", err)
		response, err = e.openRouter.GenerateText(ctx, prompt)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to generate evaluation: %w", err)
	}

	evaluation := ParseEvaluation(response)

	if err := e.answerRepo.UpdateEvaluation(sessionID, questionID, evaluation); err != nil {
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	return evaluation, nil
}

// ParseEvaluation extracts the evaluation JSON from raw model output. Any
// parse problem yields FallbackEvaluation rather than an error.
func ParseEvaluation(response string) *models.AnswerEvaluation {
	jsonStr, ok := extractJSON(response)
	if !ok {
		return FallbackEvaluation()
	}

	var evaluation models.AnswerEvaluation
	if err := json.Unmarshal([]byte(jsonStr), &evaluation); err != nil {
		log.Printf("⚠️ Failed to parse evaluation JSON: %v\n", err)
		return FallbackEvaluation()
	}

	if evaluation.Score < 0 {
		evaluation.Score = 0
	}
	if evaluation.Score > 10 {
		evaluation.Score = 10
	}
	if evaluation.AIFeedback == "" {
		evaluation.AIFeedback = fallbackFeedback
	}

	return &evaluation
}

// FallbackEvaluation is the neutral verdict used when the model reply could
// not be parsed: undecided correctness, midpoint score.
func FallbackEvaluation() *models.AnswerEvaluation {
	return &models.AnswerEvaluation{
		IsCorrect:  nil,
		Score:      5,
		AIFeedback: fallbackFeedback,
	}
}

// extractJSON pulls the first brace-delimited object out of text that might
// wrap it in markdown fences or prose.
func extractJSON(text string) (string, bool) {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}

	return text[start : end+1], true
}
