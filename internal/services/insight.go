package services

import (
	"context"
	"fmt"
	"log"

	"yudhaprm/skillorbit/internal/models"
)

type InsightService interface {
	Generate(ctx context.Context, req *models.SkillInsightRequest) (string, error)
}

type insightService struct {
	geminiService GeminiService
	openRouter    OpenRouterService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewInsightService(geminiService GeminiService, openRouter OpenRouterService, maxRetries int) InsightService {
	return &insightService{
		geminiService: geminiService,
		openRouter:    openRouter,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// Generate produces the one-paragraph insight for a selected galaxy skill.
// Language-model failure degrades to a deterministic template so the card
// never renders empty.
func (s *insightService) Generate(ctx context.Context, req *models.SkillInsightRequest) (string, error) {
	prompt := s.promptBuilder.BuildSkillInsightPrompt(req)

	insight, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.5, s.maxRetries)
	if err != nil && s.openRouter.Configured() {
		log.Printf("⚠️ Gemini insight failed: %v. Falling back to OpenRouter...\n", err)
		insight, err = s.openRouter.GenerateText(ctx, prompt)
	}
	if err != nil {
		log.Printf("⚠️ Skill insight generation failed, using template: %v\n", err)
		return TemplateSkillInsight(req), nil
	}

	return insight, nil
}

// TemplateSkillInsight is the non-LLM fallback insight.
func TemplateSkillInsight(req *models.SkillInsightRequest) string {
	switch {
	case req.PracticeCount == 0:
		return fmt.Sprintf("You haven't practiced %s yet. Run a focused mock interview in this skill to get a baseline score.", req.Skill)
	case req.Score >= 80:
		return fmt.Sprintf("You're strong in %s (%.0f/100 over %d sessions). Keep it warm with an occasional session and shift practice time to weaker skills.", req.Skill, req.Score, req.PracticeCount)
	case req.Score >= 50:
		return fmt.Sprintf("Your %s score sits at %.0f/100 after %d sessions. You have the fundamentals, so target the questions you missed and push for consistency.", req.Skill, req.Score, req.PracticeCount)
	default:
		return fmt.Sprintf("%s is currently your growth area at %.0f/100. Schedule short, frequent practice sessions and review the feedback on each answer.", req.Skill, req.Score)
	}
}
