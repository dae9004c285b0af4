package service

import (
	"context"
	"math"
	"sort"
	"time"

	"exam-prep/internal/config"
	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
)

// AnalyticsService derives performance reports from a session's result
// history
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, sessionID string) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	resultRepo domain.QuizResultRepository
	cfg        *config.Config
	now        func() time.Time
}

// NewAnalyticsService creates a new instance of analyticsService
func NewAnalyticsService(resultRepo domain.QuizResultRepository, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		resultRepo: resultRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// GetAnalytics implements AnalyticsService
func (s *analyticsService) GetAnalytics(ctx context.Context, sessionID string) (*dto.AnalyticsResponse, error) {
	history, err := s.resultRepo.ListBySession(ctx, sessionID, 0)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load result history", err)
	}
	return buildReport(history, s.now(), s.cfg.Quiz.TrendWindowDays, s.cfg.Quiz.RecentResultsLimit), nil
}

// buildReport computes the full analytics report. history arrives most
// recent first; the report is pure derivation so an empty history yields
// zeroed aggregates rather than an error.
func buildReport(history []domain.QuizResult, now time.Time, trendWindowDays, recentLimit int) *dto.AnalyticsResponse {
	report := &dto.AnalyticsResponse{
		PerformanceTrend: []dto.TrendPoint{},
		ChapterAnalytics: []dto.ChapterAnalytics{},
		RecentActivity:   []dto.ActivityEntry{},
	}
	if len(history) == 0 {
		return report
	}

	scoreSum := 0
	for i := range history {
		result := &history[i]
		report.Overview.TotalQuizzes++
		report.Overview.TotalQuestions += result.TotalQuestions
		report.Overview.TotalTimeSpent += result.TimeSpent
		scoreSum += result.Score
	}
	report.Overview.AverageScore = int(math.Round(float64(scoreSum) / float64(len(history))))

	windowStart := now.AddDate(0, 0, -trendWindowDays)

	// Trend and chapter aggregation both walk oldest to newest: the trend is
	// reported in ascending completion order and chapters keep first-seen
	// ordering across the full history.
	chapterIndex := map[string]int{}
	chapterCorrect := map[string]int{}
	chapterTotal := map[string]int{}
	for i := len(history) - 1; i >= 0; i-- {
		result := &history[i]

		if !result.CompletedAt.Before(windowStart) {
			report.PerformanceTrend = append(report.PerformanceTrend, dto.TrendPoint{
				Date:      result.CompletedAt,
				Score:     result.Score,
				TimeSpent: result.TimeSpent,
			})
		}

		for _, chapter := range sortedChapters(result.ChapterPerformance) {
			score := result.ChapterPerformance[chapter]
			idx, seen := chapterIndex[chapter]
			if !seen {
				idx = len(report.ChapterAnalytics)
				chapterIndex[chapter] = idx
				report.ChapterAnalytics = append(report.ChapterAnalytics, dto.ChapterAnalytics{Chapter: chapter})
			}
			chapterCorrect[chapter] += score.Correct
			chapterTotal[chapter] += score.Total
			report.ChapterAnalytics[idx].Attempts++
		}
	}

	for i := range report.ChapterAnalytics {
		entry := &report.ChapterAnalytics[i]
		entry.CorrectAnswers = chapterCorrect[entry.Chapter]
		entry.TotalQuestions = chapterTotal[entry.Chapter]
		entry.AverageScore = domain.Percentage(entry.CorrectAnswers, entry.TotalQuestions)
	}

	// Strict comparisons keep the first-seen chapter on ties.
	for i := range report.ChapterAnalytics {
		entry := report.ChapterAnalytics[i]
		overview := &dto.ChapterOverview{Chapter: entry.Chapter, AverageScore: entry.AverageScore}
		if report.Overview.BestChapter == nil || entry.AverageScore > report.Overview.BestChapter.AverageScore {
			report.Overview.BestChapter = overview
		}
		if report.Overview.WorstChapter == nil || entry.AverageScore < report.Overview.WorstChapter.AverageScore {
			report.Overview.WorstChapter = overview
		}
	}

	limit := recentLimit
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}
	for i := 0; i < limit; i++ {
		result := &history[i]
		report.RecentActivity = append(report.RecentActivity, dto.ActivityEntry{
			ID:             result.ID,
			Score:          result.Score,
			TotalQuestions: result.TotalQuestions,
			CompletedAt:    result.CompletedAt,
		})
	}
	return report
}

// sortedChapters fixes an iteration order for one result's chapter map so
// that aggregation is deterministic.
func sortedChapters(performance domain.ChapterPerformance) []string {
	chapters := make([]string, 0, len(performance))
	for chapter := range performance {
		chapters = append(chapters, chapter)
	}
	sort.Strings(chapters)
	return chapters
}
