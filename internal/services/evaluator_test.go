package services

import (
	"strings"
	"testing"
)

func TestExtractJSON_Plain(t *testing.T) {
	got, ok := extractJSON(`{"score": 8}`)
	if !ok || got != `{"score": 8}` {
		t.Errorf("got %q/%v", got, ok)
	}
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	input := "```json\n{\"score\": 8}\n```"
	got, ok := extractJSON(input)
	if !ok || got != `{"score": 8}` {
		t.Errorf("got %q/%v", got, ok)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	input := "Sure, here is my evaluation:\n{\"score\": 7, \"nested\": {\"a\": 1}}\nHope that helps!"
	got, ok := extractJSON(input)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if !strings.Contains(got, `"nested"`) || !strings.HasPrefix(got, "{") || !strings.HasSuffix(got, "}") {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSON_NoBraces(t *testing.T) {
	for _, input := range []string{"no json here", "", "}{"} {
		if got, ok := extractJSON(input); ok {
			t.Errorf("extractJSON(%q) = %q, want failure", input, got)
		}
	}
}

func TestParseEvaluation_Valid(t *testing.T) {
	evaluation := ParseEvaluation(`{"is_correct": true, "score": 8.5, "ai_feedback": "Solid answer."}`)
	if evaluation.IsCorrect == nil || !*evaluation.IsCorrect {
		t.Errorf("is_correct = %v, want true", evaluation.IsCorrect)
	}
	if evaluation.Score != 8.5 {
		t.Errorf("score = %v, want 8.5", evaluation.Score)
	}
	if evaluation.AIFeedback != "Solid answer." {
		t.Errorf("feedback = %q", evaluation.AIFeedback)
	}
}

func TestParseEvaluation_NullCorrectness(t *testing.T) {
	evaluation := ParseEvaluation(`{"is_correct": null, "score": 6, "ai_feedback": "Hard to judge."}`)
	if evaluation.IsCorrect != nil {
		t.Errorf("is_correct = %v, want nil", evaluation.IsCorrect)
	}
}

func TestParseEvaluation_ClampsScore(t *testing.T) {
	if got := ParseEvaluation(`{"score": 42, "ai_feedback": "x"}`).Score; got != 10 {
		t.Errorf("score = %v, want clamped to 10", got)
	}
	if got := ParseEvaluation(`{"score": -3, "ai_feedback": "x"}`).Score; got != 0 {
		t.Errorf("score = %v, want clamped to 0", got)
	}
}

func TestParseEvaluation_FillsEmptyFeedback(t *testing.T) {
	evaluation := ParseEvaluation(`{"score": 7}`)
	if evaluation.AIFeedback != fallbackFeedback {
		t.Errorf("feedback = %q, want fallback text", evaluation.AIFeedback)
	}
	if evaluation.Score != 7 {
		t.Errorf("score = %v, want 7 preserved", evaluation.Score)
	}
}

func TestParseEvaluation_GarbageFallsBack(t *testing.T) {
	for _, input := range []string{"not json at all", `{"score": broken`, ""} {
		evaluation := ParseEvaluation(input)
		if evaluation.IsCorrect != nil {
			t.Errorf("ParseEvaluation(%q).IsCorrect = %v, want nil", input, evaluation.IsCorrect)
		}
		if evaluation.Score != 5 {
			t.Errorf("ParseEvaluation(%q).Score = %v, want 5", input, evaluation.Score)
		}
		if evaluation.AIFeedback != fallbackFeedback {
			t.Errorf("ParseEvaluation(%q).AIFeedback = %q, want fallback", input, evaluation.AIFeedback)
		}
	}
}

func TestFallbackEvaluation(t *testing.T) {
	evaluation := FallbackEvaluation()
	if evaluation.IsCorrect != nil {
		t.Errorf("is_correct = %v, want nil", evaluation.IsCorrect)
	}
	if evaluation.Score != 5 {
		t.Errorf("score = %v, want 5", evaluation.Score)
	}
	if evaluation.AIFeedback == "" {
		t.Error("feedback must not be empty")
	}
}
