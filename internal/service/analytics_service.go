package service

import (
	"context"
	"log"
	"math"

	"skillsphere-service/internal/models"
)

const (
	skillProgressLimit = 5
	recentFeedbackMax  = 4
	feedbackSnippetLen = 150
)

// AnalyticsService computes improvement deltas and dashboard metrics from the
// result history.
type AnalyticsService struct {
	Sessions SessionStore
	Results  ResultStore
}

func NewAnalyticsService(sessions SessionStore, results ResultStore) *AnalyticsService {
	return &AnalyticsService{Sessions: sessions, Results: results}
}

// ComputeImprovement returns the percentage change between the user's first
// and latest score on one assessment, rounded to one decimal. Fewer than two
// results, or a first score of zero, yields 0.0.
func (s *AnalyticsService) ComputeImprovement(ctx context.Context, userID, assessmentID string) float64 {
	results, err := s.Results.FindByUserAndAssessmentAsc(ctx, userID, assessmentID)
	if err != nil {
		log.Printf("Error calculating improvement: %v", err)
		return 0.0
	}
	return improvementPercent(results)
}

// DashboardMetrics composes the dashboard sub-queries. It is a total
// function: if any store query fails, the zero-valued metrics are returned
// and the error is only logged.
func (s *AnalyticsService) DashboardMetrics(ctx context.Context, userID string) models.DashboardMetrics {
	metrics := models.DashboardMetrics{
		SkillProgress: []models.SkillProgress{},
		AIFeedback:    []string{},
	}

	active, err := s.Sessions.CountActiveByUser(ctx, userID)
	if err != nil {
		log.Printf("Error getting dashboard metrics: %v", err)
		return metrics
	}

	completed, err := s.Results.CountByUser(ctx, userID)
	if err != nil {
		log.Printf("Error getting dashboard metrics: %v", err)
		return metrics
	}

	allResults, err := s.Results.FindByUserAsc(ctx, userID)
	if err != nil {
		log.Printf("Error getting dashboard metrics: %v", err)
		return metrics
	}

	progress, err := s.Results.SkillProgress(ctx, userID, skillProgressLimit)
	if err != nil {
		log.Printf("Error calculating skill progress: %v", err)
		return metrics
	}
	for i := range progress {
		progress[i].Score = math.Round(progress[i].Score)
	}

	recent, err := s.Results.FindRecentByUser(ctx, userID, recentFeedbackMax)
	if err != nil {
		log.Printf("Error getting dashboard metrics: %v", err)
		return metrics
	}

	metrics.ActiveAssessments = int(active)
	metrics.CompletedAssessments = int(completed)
	metrics.AvgScore = averageScore(allResults)
	metrics.Improvement = improvementPercent(allResults)
	if progress != nil {
		metrics.SkillProgress = progress
	}
	metrics.AIFeedback = feedbackSnippets(recent)
	return metrics
}

// improvementPercent compares the first and last entries of results ordered
// oldest first.
func improvementPercent(results []models.AssessmentResult) float64 {
	if len(results) < 2 {
		return 0.0
	}
	first := results[0].Score
	latest := results[len(results)-1].Score
	if first == 0 {
		return 0.0
	}
	return round1((latest - first) / first * 100)
}

func averageScore(results []models.AssessmentResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	var sum float64
	for _, res := range results {
		sum += res.Score
	}
	return round1(sum / float64(len(results)))
}

// feedbackSnippets truncates each non-empty feedback text to its first 150
// characters with an ellipsis marker. Truncation counts runes so a multi-byte
// character is never split.
func feedbackSnippets(results []models.AssessmentResult) []string {
	snippets := []string{}
	for _, res := range results {
		if res.AIFeedback == "" {
			continue
		}
		snippets = append(snippets, truncateRunes(res.AIFeedback, feedbackSnippetLen)+"...")
	}
	return snippets
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
