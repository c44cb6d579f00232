package services

import (
	"fmt"
	"strings"

	"yudhaprm/skillorbit/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnswerEvaluationPrompt creates the prompt for grading one answer.
func (pb *PromptBuilder) BuildAnswerEvaluationPrompt(question *models.InterviewQuestion, userAnswer string) string {
	return fmt.Sprintf(`You are an expert interview coach evaluating a candidate's answer in a mock interview.

QUESTION TYPE: %s
QUESTION CATEGORY: %s

QUESTION:
%s

EXPECTED ANSWER FORMAT:
%s

CANDIDATE ANSWER:
%s

Evaluate the answer for correctness, depth and clarity against the expected format.

Return your response in the following JSON format:
{
  "is_correct": <true, false, or null if the answer cannot be judged>,
  "score": <0-10>,
  "ai_feedback": "<2-4 sentences of concrete, actionable feedback>"
}

Be fair but direct. Point at what was missing, not just what was wrong.`,
		question.QuestionType,
		question.Category,
		question.QuestionText,
		question.ExpectedAnswerFormat,
		userAnswer,
	)
}

// BuildMentorPrompt creates the prompt for a mentor chat reply. Guide
// context and resume text are optional and degrade to empty sections.
func (pb *PromptBuilder) BuildMentorPrompt(message string, perf *models.PerformanceData, guideContext, resumeText string) string {
	var stats string
	if perf != nil {
		stats = fmt.Sprintf(`- Average score: %.1f
- Interviews completed: %d
- Strongest category: %s
- Weakest category: %s
- Recent trend: %s`,
			perf.AverageScore,
			perf.TotalInterviews,
			perf.BestCategory,
			perf.WorstCategory,
			perf.Trend,
		)
	} else {
		stats = "No performance data available yet."
	}

	var sections []string
	sections = append(sections, fmt.Sprintf(`You are a supportive but honest interview mentor inside a mock-interview coaching product.

CANDIDATE PERFORMANCE:
%s`, stats))

	if guideContext != "" {
		sections = append(sections, "COACHING GUIDES (use when relevant):\n"+guideContext)
	}
	if resumeText != "" {
		sections = append(sections, "CANDIDATE RESUME (excerpt):\n"+truncate(resumeText, 2000))
	}

	sections = append(sections, fmt.Sprintf(`CANDIDATE MESSAGE:
%s

Reply in 2-5 sentences of plain prose. Be specific to their numbers and weakest areas; no bullet lists, no JSON.`, message))

	return strings.Join(sections, "\n\n")
}

// BuildSkillInsightPrompt creates the prompt for a one-paragraph skill
// insight shown when a galaxy node is selected.
func (pb *PromptBuilder) BuildSkillInsightPrompt(req *models.SkillInsightRequest) string {
	var extra strings.Builder
	for key, value := range req.Stats {
		fmt.Fprintf(&extra, "- %s: %.1f\n", key, value)
	}

	return fmt.Sprintf(`You are an interview coach summarising a candidate's standing in one skill.

SKILL: %s
CATEGORY: %s
CURRENT SCORE: %.1f / 100
PRACTICE SESSIONS: %d
%s
Write one short paragraph (2-3 sentences): where they stand, and the single most useful next step for this skill. Plain prose, no lists, no JSON.`,
		req.Skill, req.Category, req.Score, req.PracticeCount, extra.String())
}

// FormatGuideContext flattens retrieved coaching-guide chunks into a prompt
// section.
func FormatGuideContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Guide %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
