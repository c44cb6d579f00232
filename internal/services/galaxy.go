package services

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
)

// SkillEntity is one node of the skill galaxy, derived from interview
// sessions on every fetch and never persisted.
type SkillEntity struct {
	Key           string     `json:"key"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Color         string     `json:"color"`
	Score         float64    `json:"score"`
	PracticeCount int        `json:"practice_count"`
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
	Importance    float64    `json:"importance"`
	Size          float64    `json:"size"`
	Orbit         float64    `json:"orbit"`
	Position      [3]float64 `json:"position"`
}

// Fixed mapping from known domain keys to category buckets. Unknown keys
// land in "other".
var skillCategories = map[string]string{
	"javascript":      "frontend",
	"typescript":      "frontend",
	"react":           "frontend",
	"css":             "frontend",
	"python":          "backend",
	"java":            "backend",
	"go":              "backend",
	"sql":             "backend",
	"system design":   "architecture",
	"architecture":    "architecture",
	"data structures": "algorithms",
	"algorithms":      "algorithms",
	"behavioral":      "soft-skills",
	"communication":   "soft-skills",
	"leadership":      "soft-skills",
}

var categoryColors = map[string]string{
	"frontend":     "#4f9cf9",
	"backend":      "#34d399",
	"architecture": "#f59e0b",
	"algorithms":   "#a78bfa",
	"soft-skills":  "#f472b6",
	"other":        "#94a3b8",
}

// domainHash is the layout hash: acc = char + ((acc<<5) - acc) over the
// domain key, wrapping at 32 bits. It is spelled out rather than borrowed
// from hash/fnv so that every client rendering the galaxy computes the
// exact same positions for the same key.
func domainHash(key string) int32 {
	var h int32
	for _, r := range key {
		h = int32(r) + ((h << 5) - h)
	}
	return h
}

// skillPosition derives the orbit radius and Cartesian position for a
// domain key. Pure function of the string: same key, same position, every
// call.
func skillPosition(key string) (orbit float64, pos [3]float64) {
	h := int64(domainHash(key))
	if h < 0 {
		h = -h
	}

	orbit = float64(h%5) + 5
	theta := float64(h%360) * math.Pi / 180
	phi := float64((h>>8)%180) * math.Pi / 180

	pos[0] = orbit * math.Sin(phi) * math.Cos(theta)
	pos[1] = orbit * math.Sin(phi) * math.Sin(theta)
	pos[2] = orbit * math.Cos(phi)
	return orbit, pos
}

func skillCategory(key string) string {
	if cat, ok := skillCategories[key]; ok {
		return cat
	}
	return "other"
}

// answerScore derives a session score from its answers when the session
// never got a direct score. Correct answers earn 3 points, attempts 1.5,
// skips cost 2, disqualification another 10, normalised against a perfect
// run and clamped to [0,100].
func answerScore(session *models.InterviewSession) float64 {
	total := len(session.Answers)
	if total == 0 {
		return 0
	}

	var correct, attempted int
	for i := range session.Answers {
		a := &session.Answers[i]
		if a.Attempted() {
			attempted++
		}
		if a.IsCorrect != nil && *a.IsCorrect {
			correct++
		}
	}
	skipped := total - attempted

	penalty := 0.0
	if session.Status == models.StatusDisqualified {
		penalty = 10
	}

	raw := (float64(correct)*3 + float64(attempted)*1.5 - float64(skipped)*2 - penalty) /
		(float64(total) * 3) * 100

	return clampScore(raw)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// BuildSkillEntities aggregates sessions into one skill entity per distinct
// domain, case-insensitively deduplicated. Sessions without a domain are
// ignored. An empty result is replaced by the demo constellation.
func BuildSkillEntities(sessions []models.InterviewSession, now time.Time) []SkillEntity {
	index := make(map[string]int)
	var entities []SkillEntity

	for i := range sessions {
		session := &sessions[i]
		domain := strings.TrimSpace(session.Domain)
		if domain == "" {
			continue
		}
		key := strings.ToLower(domain)

		idx, ok := index[key]
		if !ok {
			category := skillCategory(key)
			orbit, pos := skillPosition(key)
			entities = append(entities, SkillEntity{
				Key:        key,
				Name:       domain,
				Category:   category,
				Color:      categoryColors[category],
				Importance: 1,
				Size:       1,
				Orbit:      orbit,
				Position:   pos,
			})
			idx = len(entities) - 1
			index[key] = idx
		}
		entity := &entities[idx]

		entity.PracticeCount++
		if session.CompletedAt != nil {
			if entity.LastPracticed == nil || session.CompletedAt.After(*entity.LastPracticed) {
				entity.LastPracticed = session.CompletedAt
			}
		}

		if session.Status == models.StatusCompleted && session.Score != nil {
			entity.Score = math.Max(entity.Score, clampScore(*session.Score))
		} else if len(session.Answers) > 0 {
			entity.Score = math.Max(entity.Score, answerScore(session))
		}
	}

	for i := range entities {
		e := &entities[i]
		e.Size = math.Min(3, 1+float64(e.PracticeCount)*0.1)
		if e.LastPracticed != nil {
			days := now.Sub(*e.LastPracticed).Hours() / 24
			importance := 2 - days/30
			if importance < 0.5 {
				importance = 0.5
			}
			if importance > 2 {
				importance = 2
			}
			e.Importance = importance
		}
	}

	if len(entities) == 0 {
		return demoSkills()
	}

	return entities
}

// demoSkills is the first-run constellation shown before any interview
// exists. Positions are intentionally randomised here; only real skills get
// stable layouts.
func demoSkills() []SkillEntity {
	names := []string{"javascript", "python", "system design", "algorithms", "communication"}

	entities := make([]SkillEntity, 0, len(names))
	for _, name := range names {
		category := skillCategory(name)
		orbit := 5 + rand.Float64()*5
		theta := rand.Float64() * 2 * math.Pi
		phi := rand.Float64() * math.Pi
		entities = append(entities, SkillEntity{
			Key:      name,
			Name:     name,
			Category: category,
			Color:    categoryColors[category],
			Orbit:    orbit,
			Position: [3]float64{
				orbit * math.Sin(phi) * math.Cos(theta),
				orbit * math.Sin(phi) * math.Sin(theta),
				orbit * math.Cos(phi),
			},
			Importance: 1,
			Size:       1,
		})
	}
	return entities
}

type GalaxyService interface {
	BuildGalaxy(userID uuid.UUID) ([]SkillEntity, error)
}

type galaxyService struct {
	sessionRepo repositories.SessionRepository
}

func NewGalaxyService(sessionRepo repositories.SessionRepository) GalaxyService {
	return &galaxyService{sessionRepo: sessionRepo}
}

// BuildGalaxy fetches the user's sessions and aggregates them. A store
// failure surfaces as an error with no partial result; malformed rows are
// dropped at the boundary instead of reaching the aggregation.
func (g *galaxyService) BuildGalaxy(userID uuid.UUID) ([]SkillEntity, error) {
	sessions, err := g.sessionRepo.FindForGalaxy(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	valid := sessions[:0]
	for i := range sessions {
		if err := sessions[i].Validate(); err != nil {
			log.Printf("⚠️  Skipping malformed session row: %v\n", err)
			continue
		}
		valid = append(valid, sessions[i])
	}

	return BuildSkillEntities(valid, time.Now()), nil
}
