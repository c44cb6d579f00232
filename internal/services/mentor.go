package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
)

const guideRetrievalLimit = 3

type MentorService interface {
	Respond(ctx context.Context, req *models.MentorRequest, userID *uuid.UUID) (string, error)
}

type mentorService struct {
	geminiService GeminiService
	openRouter    OpenRouterService
	guideStore    GuideStore
	resumeRepo    repositories.ResumeRepository
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewMentorService(
	geminiService GeminiService,
	openRouter OpenRouterService,
	guideStore GuideStore,
	resumeRepo repositories.ResumeRepository,
	maxRetries int,
) MentorService {
	return &mentorService{
		geminiService: geminiService,
		openRouter:    openRouter,
		guideStore:    guideStore,
		resumeRepo:    resumeRepo,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// Respond builds a mentor reply: coaching-guide retrieval and resume lookup
// are best-effort context, the language model does the prose. Returns an
// error only when every generation path failed; callers then fall back to
// TemplateMentorResponse so the UI still has something to show.
func (m *mentorService) Respond(ctx context.Context, req *models.MentorRequest, userID *uuid.UUID) (string, error) {
	guideContext := m.retrieveGuideContext(ctx, req.Message)

	var resumeText string
	if userID != nil {
		if resume, err := m.resumeRepo.FindLatestByUser(*userID); err == nil {
			resumeText = resume.ExtractedText
		}
	}

	prompt := m.promptBuilder.BuildMentorPrompt(req.Message, req.PerformanceData, guideContext, resumeText)

	response, err := m.geminiService.GenerateTextWithRetry(ctx, prompt, 0.7, m.maxRetries)
	if err != nil && m.openRouter.Configured() {
		log.Printf("⚠️ Gemini mentor reply failed: %v. Falling back to OpenRouter...\n", err)
		response, err = m.openRouter.GenerateText(ctx, prompt)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate mentor response: %w", err)
	}

	return response, nil
}

func (m *mentorService) retrieveGuideContext(ctx context.Context, message string) string {
	embedding, err := m.geminiService.GenerateEmbedding(ctx, message)
	if err != nil {
		log.Printf("⚠️  Failed to embed mentor message: %v\n", err)
		return ""
	}

	results, err := m.guideStore.SearchGuides(ctx, embedding, "", guideRetrievalLimit)
	if err != nil {
		log.Printf("⚠️  Failed to search coaching guides: %v\n", err)
		return ""
	}

	return FormatGuideContext(results)
}

// TemplateMentorResponse is the deterministic reply used when no language
// model could answer.
func TemplateMentorResponse(perf *models.PerformanceData) string {
	if perf == nil || perf.TotalInterviews == 0 {
		return "I don't have enough of your interview history yet to give tailored advice. Complete a mock interview and ask me again, then I'll have concrete numbers to work with."
	}

	response := fmt.Sprintf(
		"Across your %d interviews you're averaging %.0f out of 100.",
		perf.TotalInterviews, perf.AverageScore,
	)
	if perf.WorstCategory != "" {
		response += fmt.Sprintf(" Your weakest area is %s, so spend your next two practice sessions there.", perf.WorstCategory)
	}
	if perf.BestCategory != "" {
		response += fmt.Sprintf(" Keep leaning on %s, it's your strongest category.", perf.BestCategory)
	}
	return response
}
