package service

import (
	"context"
	"testing"
	"time"

	"exam-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_GetAnalytics(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyHistory", func(t *testing.T) {
		resultRepo := new(MockQuizResultRepository)
		svc := NewAnalyticsService(resultRepo, testConfig())

		resultRepo.On("ListBySession", ctx, "sess-1", 0).Return([]domain.QuizResult{}, nil)

		resp, err := svc.GetAnalytics(ctx, "sess-1")

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Overview.TotalQuizzes)
		assert.Equal(t, 0, resp.Overview.AverageScore)
		assert.Nil(t, resp.Overview.BestChapter)
		assert.Nil(t, resp.Overview.WorstChapter)
		assert.Empty(t, resp.PerformanceTrend)
		assert.Empty(t, resp.ChapterAnalytics)
		assert.Empty(t, resp.RecentActivity)
	})

	t.Run("AggregatesHistory", func(t *testing.T) {
		resultRepo := new(MockQuizResultRepository)
		svc := NewAnalyticsService(resultRepo, testConfig())

		now := time.Now()
		// Most recent first, matching repository ordering.
		history := []domain.QuizResult{
			{
				ID: "res-2", Score: 60, TotalQuestions: 5, TimeSpent: 200,
				ChapterPerformance: domain.ChapterPerformance{
					"Acne":      {Correct: 1, Total: 2},
					"Psoriasis": {Correct: 2, Total: 3},
				},
				CompletedAt: now.Add(-1 * time.Hour),
			},
			{
				ID: "res-1", Score: 80, TotalQuestions: 5, TimeSpent: 100,
				ChapterPerformance: domain.ChapterPerformance{
					"Psoriasis": {Correct: 4, Total: 5},
				},
				CompletedAt: now.Add(-48 * time.Hour),
			},
		}
		resultRepo.On("ListBySession", ctx, "sess-1", 0).Return(history, nil)

		resp, err := svc.GetAnalytics(ctx, "sess-1")

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Overview.TotalQuizzes)
		// Mean of per-quiz percentages, not recomputed from raw tallies.
		assert.Equal(t, 70, resp.Overview.AverageScore)
		assert.Equal(t, 10, resp.Overview.TotalQuestions)
		assert.Equal(t, 300, resp.Overview.TotalTimeSpent)

		require.Len(t, resp.PerformanceTrend, 2)
		assert.Equal(t, 80, resp.PerformanceTrend[0].Score)
		assert.Equal(t, 60, resp.PerformanceTrend[1].Score)
		assert.True(t, resp.PerformanceTrend[0].Date.Before(resp.PerformanceTrend[1].Date))

		// Chapters appear in first-seen chronological order.
		require.Len(t, resp.ChapterAnalytics, 2)
		psoriasis := resp.ChapterAnalytics[0]
		assert.Equal(t, "Psoriasis", psoriasis.Chapter)
		assert.Equal(t, 6, psoriasis.CorrectAnswers)
		assert.Equal(t, 8, psoriasis.TotalQuestions)
		assert.Equal(t, 75, psoriasis.AverageScore)
		assert.Equal(t, 2, psoriasis.Attempts)
		acne := resp.ChapterAnalytics[1]
		assert.Equal(t, "Acne", acne.Chapter)
		assert.Equal(t, 50, acne.AverageScore)
		assert.Equal(t, 1, acne.Attempts)

		require.NotNil(t, resp.Overview.BestChapter)
		assert.Equal(t, "Psoriasis", resp.Overview.BestChapter.Chapter)
		require.NotNil(t, resp.Overview.WorstChapter)
		assert.Equal(t, "Acne", resp.Overview.WorstChapter.Chapter)

		require.Len(t, resp.RecentActivity, 2)
		assert.Equal(t, "res-2", resp.RecentActivity[0].ID)
	})

	t.Run("TrendWindowExcludesOldResults", func(t *testing.T) {
		resultRepo := new(MockQuizResultRepository)
		svc := NewAnalyticsService(resultRepo, testConfig())

		now := time.Now()
		history := []domain.QuizResult{
			{
				ID: "res-2", Score: 90, TotalQuestions: 5,
				ChapterPerformance: domain.ChapterPerformance{"Acne": {Correct: 4, Total: 5}},
				CompletedAt:        now.Add(-24 * time.Hour),
			},
			{
				ID: "res-1", Score: 40, TotalQuestions: 5,
				ChapterPerformance: domain.ChapterPerformance{"Psoriasis": {Correct: 2, Total: 5}},
				CompletedAt:        now.AddDate(0, 0, -45),
			},
		}
		resultRepo.On("ListBySession", ctx, "sess-1", 0).Return(history, nil)

		resp, err := svc.GetAnalytics(ctx, "sess-1")

		require.NoError(t, err)
		// The trend honors the window; chapter aggregation spans the full
		// history regardless.
		require.Len(t, resp.PerformanceTrend, 1)
		assert.Equal(t, 90, resp.PerformanceTrend[0].Score)
		assert.Len(t, resp.ChapterAnalytics, 2)
		assert.Equal(t, "Psoriasis", resp.ChapterAnalytics[0].Chapter)
	})

	t.Run("TiesKeepFirstSeenChapter", func(t *testing.T) {
		resultRepo := new(MockQuizResultRepository)
		svc := NewAnalyticsService(resultRepo, testConfig())

		now := time.Now()
		history := []domain.QuizResult{
			{
				ID: "res-1", Score: 50, TotalQuestions: 4,
				ChapterPerformance: domain.ChapterPerformance{
					"Acne":      {Correct: 1, Total: 2},
					"Psoriasis": {Correct: 1, Total: 2},
				},
				CompletedAt: now,
			},
		}
		resultRepo.On("ListBySession", ctx, "sess-1", 0).Return(history, nil)

		resp, err := svc.GetAnalytics(ctx, "sess-1")

		require.NoError(t, err)
		require.NotNil(t, resp.Overview.BestChapter)
		require.NotNil(t, resp.Overview.WorstChapter)
		assert.Equal(t, resp.ChapterAnalytics[0].Chapter, resp.Overview.BestChapter.Chapter)
		assert.Equal(t, resp.ChapterAnalytics[0].Chapter, resp.Overview.WorstChapter.Chapter)
	})

	t.Run("RecentActivityHonorsLimit", func(t *testing.T) {
		resultRepo := new(MockQuizResultRepository)
		cfg := testConfig()
		cfg.Quiz.RecentResultsLimit = 1
		svc := NewAnalyticsService(resultRepo, cfg)

		now := time.Now()
		history := []domain.QuizResult{
			{ID: "res-2", Score: 90, CompletedAt: now},
			{ID: "res-1", Score: 40, CompletedAt: now.Add(-time.Hour)},
		}
		resultRepo.On("ListBySession", ctx, "sess-1", 0).Return(history, nil)

		resp, err := svc.GetAnalytics(ctx, "sess-1")

		require.NoError(t, err)
		require.Len(t, resp.RecentActivity, 1)
		assert.Equal(t, "res-2", resp.RecentActivity[0].ID)
	})
}
