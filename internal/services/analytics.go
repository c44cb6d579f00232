package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"yudhaprm/skillorbit/internal/models"
	"yudhaprm/skillorbit/internal/repositories"
)

// TimeWindow selects the cutoff for score time series.
type TimeWindow string

const (
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
	WindowYear  TimeWindow = "year"
)

// insightFetchLimit caps how much history feeds the insight summary.
const insightFetchLimit = 50

type CategoryAverage struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

type TimeSeriesPoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
	Type  string    `json:"type"`
}

type InsightSummary struct {
	AverageScore      float64 `json:"average_score"`
	TotalSessions     int     `json:"total_sessions"`
	TrendPercent      int     `json:"trend_percent"`
	Trend             string  `json:"trend"`
	BestCategory      string  `json:"best_category"`
	WorstCategory     string  `json:"worst_category"`
	PracticeFrequency string  `json:"practice_frequency"`
}

// ComputeCategoryAverages rolls sessions up into per-category score
// averages, sorted best first. A session's full score is accumulated once
// per matching question occurrence, so a session with three questions in
// one category weighs three times as much there as a single-question
// session. That weighting is intentional: it mirrors the behaviour the
// dashboard has always shown.
func ComputeCategoryAverages(sessions []models.InterviewSession) []CategoryAverage {
	type bucket struct {
		total float64
		count int
	}
	buckets := make(map[string]*bucket)

	for i := range sessions {
		session := &sessions[i]
		if session.Score == nil {
			continue
		}
		for j := range session.Answers {
			question := session.Answers[j].Question
			if question == nil || question.Category == "" {
				continue
			}
			b, ok := buckets[question.Category]
			if !ok {
				b = &bucket{}
				buckets[question.Category] = b
			}
			b.total += *session.Score
			b.count++
		}
	}

	averages := make([]CategoryAverage, 0, len(buckets))
	for category, b := range buckets {
		averages = append(averages, CategoryAverage{
			Category: category,
			Average:  b.total / float64(b.count),
			Count:    b.count,
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		if averages[i].Average != averages[j].Average {
			return averages[i].Average > averages[j].Average
		}
		return averages[i].Category < averages[j].Category
	})

	return averages
}

// windowCutoff returns the inclusive lower bound for a window.
func windowCutoff(window TimeWindow, now time.Time) time.Time {
	switch window {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// FilterTimeSeries maps completed sessions inside the window to dated score
// points, ascending by date. Sessions completed exactly on the cutoff are
// included.
func FilterTimeSeries(sessions []models.InterviewSession, window TimeWindow, now time.Time) []TimeSeriesPoint {
	cutoff := windowCutoff(window, now)

	var points []TimeSeriesPoint
	for i := range sessions {
		session := &sessions[i]
		if session.CompletedAt == nil || session.Score == nil {
			continue
		}
		if session.CompletedAt.Before(cutoff) {
			continue
		}
		points = append(points, TimeSeriesPoint{
			Date:  *session.CompletedAt,
			Score: *session.Score,
			Type:  session.InterviewType,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// ComputeInsightSummary builds the dashboard trend card: overall average,
// recent-vs-previous trend, best and worst category, and a practice
// frequency bucket.
func ComputeInsightSummary(sessions []models.InterviewSession, now time.Time) InsightSummary {
	scored := make([]models.InterviewSession, 0, len(sessions))
	for i := range sessions {
		if sessions[i].Score != nil && sessions[i].CompletedAt != nil {
			scored = append(scored, sessions[i])
		}
	}

	summary := InsightSummary{
		Trend:             "neutral",
		PracticeFrequency: "Low",
		TotalSessions:     len(scored),
	}
	if len(scored) == 0 {
		return summary
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].CompletedAt.After(*scored[j].CompletedAt)
	})

	var total float64
	for i := range scored {
		total += *scored[i].Score
	}
	summary.AverageScore = total / float64(len(scored))

	recentAvg, recentN := meanScore(scored, 0, 3)
	previousAvg, previousN := meanScore(scored, 3, 3)
	if recentN > 0 && previousN > 0 && previousAvg != 0 {
		trend := (recentAvg - previousAvg) / previousAvg * 100
		summary.TrendPercent = int(trend)
		switch {
		case trend > 5:
			summary.Trend = "up"
		case trend < -5:
			summary.Trend = "down"
		}
	}

	if averages := ComputeCategoryAverages(scored); len(averages) > 0 {
		summary.BestCategory = averages[0].Category
		summary.WorstCategory = averages[len(averages)-1].Category
	}

	newest := *scored[0].CompletedAt
	oldest := *scored[len(scored)-1].CompletedAt
	weeks := newest.Sub(oldest).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	perWeek := float64(len(scored)) / weeks
	switch {
	case perWeek >= 3:
		summary.PracticeFrequency = "High"
	case perWeek >= 1:
		summary.PracticeFrequency = "Medium"
	}

	return summary
}

// meanScore averages a slice window [offset, offset+n) of already-sorted
// sessions, returning how many rows contributed.
func meanScore(sessions []models.InterviewSession, offset, n int) (float64, int) {
	if offset >= len(sessions) {
		return 0, 0
	}
	end := offset + n
	if end > len(sessions) {
		end = len(sessions)
	}

	var total float64
	for i := offset; i < end; i++ {
		total += *sessions[i].Score
	}
	count := end - offset
	return total / float64(count), count
}

type AnalyticsService interface {
	CategoryAverages(userID uuid.UUID) ([]CategoryAverage, error)
	TimeSeries(userID uuid.UUID, window TimeWindow) ([]TimeSeriesPoint, error)
	Insights(userID uuid.UUID) (*InsightSummary, error)
}

type analyticsService struct {
	sessionRepo repositories.SessionRepository
}

func NewAnalyticsService(sessionRepo repositories.SessionRepository) AnalyticsService {
	return &analyticsService{sessionRepo: sessionRepo}
}

func (s *analyticsService) CategoryAverages(userID uuid.UUID) ([]CategoryAverage, error) {
	sessions, err := s.sessionRepo.FindCompletedByUser(userID, insightFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return ComputeCategoryAverages(sessions), nil
}

func (s *analyticsService) TimeSeries(userID uuid.UUID, window TimeWindow) ([]TimeSeriesPoint, error) {
	sessions, err := s.sessionRepo.FindCompletedByUser(userID, insightFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	return FilterTimeSeries(sessions, window, time.Now()), nil
}

func (s *analyticsService) Insights(userID uuid.UUID) (*InsightSummary, error) {
	sessions, err := s.sessionRepo.FindCompletedByUser(userID, insightFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}
	summary := ComputeInsightSummary(sessions, time.Now())
	return &summary, nil
}
