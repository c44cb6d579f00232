package services

import (
	"strings"
	"testing"

	"yudhaprm/skillorbit/internal/models"
)

func TestTemplateSkillInsight_Bands(t *testing.T) {
	cases := []struct {
		name string
		req  models.SkillInsightRequest
		want string
	}{
		{"unpracticed", models.SkillInsightRequest{Skill: "go", PracticeCount: 0}, "haven't practiced"},
		{"strong", models.SkillInsightRequest{Skill: "go", Score: 85, PracticeCount: 4}, "strong in go"},
		{"middling", models.SkillInsightRequest{Skill: "go", Score: 60, PracticeCount: 4}, "fundamentals"},
		{"weak", models.SkillInsightRequest{Skill: "go", Score: 30, PracticeCount: 4}, "growth area"},
	}

	for _, tc := range cases {
		got := TemplateSkillInsight(&tc.req)
		if !strings.Contains(got, tc.want) {
			t.Errorf("%s: %q does not contain %q", tc.name, got, tc.want)
		}
		if !strings.Contains(got, "go") {
			t.Errorf("%s: insight does not mention the skill: %q", tc.name, got)
		}
	}
}

func TestTemplateMentorResponse_NoHistory(t *testing.T) {
	for _, perf := range []*models.PerformanceData{nil, {TotalInterviews: 0}} {
		got := TemplateMentorResponse(perf)
		if !strings.Contains(got, "Complete a mock interview") {
			t.Errorf("got %q, want the no-history reply", got)
		}
	}
}

func TestTemplateMentorResponse_WithHistory(t *testing.T) {
	got := TemplateMentorResponse(&models.PerformanceData{
		AverageScore:    68,
		TotalInterviews: 9,
		BestCategory:    "backend",
		WorstCategory:   "behavioral",
	})

	for _, want := range []string{"9 interviews", "68", "behavioral", "backend"} {
		if !strings.Contains(got, want) {
			t.Errorf("reply %q missing %q", got, want)
		}
	}
}
