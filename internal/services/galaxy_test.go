package services

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func completedSession(domain string, score float64, completedAt time.Time) models.InterviewSession {
	return models.InterviewSession{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Domain:      domain,
		Status:      models.StatusCompleted,
		Score:       floatPtr(score),
		CompletedAt: timePtr(completedAt),
	}
}

func TestDomainHash_Deterministic(t *testing.T) {
	keys := []string{"javascript", "go", "system design", "a-very-long-domain-key-that-overflows-the-accumulator"}
	for _, key := range keys {
		if domainHash(key) != domainHash(key) {
			t.Errorf("hash of %q is not stable", key)
		}
	}
}

func TestDomainHash_KnownValue(t *testing.T) {
	// 'g'=103, then 'o': 111 + 103*31 = 3304
	if got := domainHash("go"); got != 3304 {
		t.Errorf("domainHash(go) = %d, want 3304", got)
	}
}

func TestSkillPosition_Go(t *testing.T) {
	// hash 3304: orbit = 3304%5 + 5 = 9
	orbit, _ := skillPosition("go")
	if orbit != 9 {
		t.Errorf("orbit = %v, want 9", orbit)
	}
}

func TestSkillPosition_Properties(t *testing.T) {
	keys := []string{"javascript", "python", "sql", "react", "behavioral",
		"a-very-long-domain-key-that-overflows-the-accumulator", "x"}
	for _, key := range keys {
		orbit, pos := skillPosition(key)
		if orbit < 5 || orbit >= 10 {
			t.Errorf("%q: orbit %v outside [5,10)", key, orbit)
		}

		// spherical coordinates: the point sits exactly on its orbit
		norm := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
		if !almostEqual(norm, orbit) {
			t.Errorf("%q: |pos| = %v, want %v", key, norm, orbit)
		}

		orbit2, pos2 := skillPosition(key)
		if orbit2 != orbit || pos2 != pos {
			t.Errorf("%q: position not deterministic", key)
		}
	}
}

func TestAnswerScore_AllCorrect(t *testing.T) {
	session := models.InterviewSession{Status: models.StatusCompleted}
	for i := 0; i < 4; i++ {
		session.Answers = append(session.Answers, models.UserAnswer{
			AnswerText: "something",
			IsCorrect:  boolPtr(true),
		})
	}
	// (4*3 + 4*1.5) / 12 * 100 = 150, clamped
	if got := answerScore(&session); got != 100 {
		t.Errorf("answerScore = %v, want 100", got)
	}
}

func TestAnswerScore_AllSkippedDisqualified(t *testing.T) {
	session := models.InterviewSession{Status: models.StatusDisqualified}
	for i := 0; i < 3; i++ {
		session.Answers = append(session.Answers, models.UserAnswer{})
	}
	if got := answerScore(&session); got != 0 {
		t.Errorf("answerScore = %v, want 0", got)
	}
}

func TestAnswerScore_Mixed(t *testing.T) {
	session := models.InterviewSession{
		Status: models.StatusPending,
		Answers: []models.UserAnswer{
			{AnswerText: "attempted and correct", IsCorrect: boolPtr(true)},
			{},
		},
	}
	// (3 + 1.5 - 2) / 6 * 100
	want := 2.5 / 6 * 100
	if got := answerScore(&session); !almostEqual(got, want) {
		t.Errorf("answerScore = %v, want %v", got, want)
	}
}

func TestAnswerScore_NoAnswers(t *testing.T) {
	session := models.InterviewSession{Status: models.StatusCompleted}
	if got := answerScore(&session); got != 0 {
		t.Errorf("answerScore = %v, want 0", got)
	}
}

func TestBuildSkillEntities_CaseInsensitiveDedupe(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	sessions := []models.InterviewSession{
		completedSession("JavaScript", 70, now.AddDate(0, 0, -2)),
		completedSession("javascript", 85, now.AddDate(0, 0, -1)),
	}

	entities := BuildSkillEntities(sessions, now)
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(entities))
	}

	e := entities[0]
	if e.Key != "javascript" {
		t.Errorf("key = %q, want %q", e.Key, "javascript")
	}
	if e.Name != "JavaScript" {
		t.Errorf("name = %q, want first-seen spelling %q", e.Name, "JavaScript")
	}
	if e.PracticeCount != 2 {
		t.Errorf("practice count = %d, want 2", e.PracticeCount)
	}
	if e.Score != 85 {
		t.Errorf("score = %v, want max 85", e.Score)
	}
	if e.LastPracticed == nil || !e.LastPracticed.Equal(now.AddDate(0, 0, -1)) {
		t.Errorf("last practiced = %v, want most recent completion", e.LastPracticed)
	}
}

func TestBuildSkillEntities_ScoreIsMax(t *testing.T) {
	now := time.Now()
	sessions := []models.InterviewSession{
		completedSession("python", 90, now.AddDate(0, 0, -5)),
		completedSession("python", 60, now.AddDate(0, 0, -1)),
	}

	entities := BuildSkillEntities(sessions, now)
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(entities))
	}
	if entities[0].Score != 90 {
		t.Errorf("score = %v, want 90; a later weaker run must not lower it", entities[0].Score)
	}
}

func TestBuildSkillEntities_SkipsEmptyDomain(t *testing.T) {
	now := time.Now()
	sessions := []models.InterviewSession{
		completedSession("", 80, now),
		completedSession("   ", 80, now),
		completedSession("sql", 80, now),
	}

	entities := BuildSkillEntities(sessions, now)
	if len(entities) != 1 || entities[0].Key != "sql" {
		t.Fatalf("got %+v, want only sql", entities)
	}
}

func TestBuildSkillEntities_SizeAndImportance(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	var sessions []models.InterviewSession
	for i := 0; i < 5; i++ {
		sessions = append(sessions, completedSession("go", 50, now))
	}

	entities := BuildSkillEntities(sessions, now)
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(entities))
	}
	if !almostEqual(entities[0].Size, 1.5) {
		t.Errorf("size = %v, want 1.5 for 5 sessions", entities[0].Size)
	}
	// practiced today: importance at the cap
	if entities[0].Importance != 2 {
		t.Errorf("importance = %v, want 2", entities[0].Importance)
	}
}

func TestBuildSkillEntities_SizeCapped(t *testing.T) {
	now := time.Now()
	var sessions []models.InterviewSession
	for i := 0; i < 30; i++ {
		sessions = append(sessions, completedSession("go", 50, now))
	}

	entities := BuildSkillEntities(sessions, now)
	if entities[0].Size != 3 {
		t.Errorf("size = %v, want cap of 3", entities[0].Size)
	}
}

func TestBuildSkillEntities_ImportanceFloor(t *testing.T) {
	now := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	sessions := []models.InterviewSession{
		completedSession("go", 50, now.AddDate(0, 0, -90)),
	}

	entities := BuildSkillEntities(sessions, now)
	if entities[0].Importance != 0.5 {
		t.Errorf("importance = %v, want floor of 0.5", entities[0].Importance)
	}
}

func TestBuildSkillEntities_DemoFallback(t *testing.T) {
	entities := BuildSkillEntities(nil, time.Now())
	if len(entities) != 5 {
		t.Fatalf("got %d demo entities, want 5", len(entities))
	}

	seen := make(map[string]bool)
	for _, e := range entities {
		seen[e.Key] = true
		if e.Score != 0 {
			t.Errorf("demo entity %q has score %v, want 0", e.Key, e.Score)
		}
		if e.Color == "" {
			t.Errorf("demo entity %q missing color", e.Key)
		}
	}
	for _, name := range []string{"javascript", "python", "system design", "algorithms", "communication"} {
		if !seen[name] {
			t.Errorf("demo constellation missing %q", name)
		}
	}
}

func TestSkillCategory_UnknownFallsBackToOther(t *testing.T) {
	if got := skillCategory("underwater basket weaving"); got != "other" {
		t.Errorf("category = %q, want other", got)
	}
	if got := skillCategory("javascript"); got != "frontend" {
		t.Errorf("category = %q, want frontend", got)
	}
}
