package dto

import "time"

// AnalyticsOverview aggregates a session's full quiz history.
// AverageScore is the mean of per-quiz percentages, deliberately not
// recomputed from raw correct/total counts.
type AnalyticsOverview struct {
	TotalQuizzes   int              `json:"total_quizzes"`
	AverageScore   int              `json:"average_score"`
	TotalTimeSpent int              `json:"total_time_spent"`
	TotalQuestions int              `json:"total_questions"`
	BestChapter    *ChapterOverview `json:"best_chapter,omitempty"`
	WorstChapter   *ChapterOverview `json:"worst_chapter,omitempty"`
}

// ChapterOverview names a chapter together with its aggregate score
type ChapterOverview struct {
	Chapter      string `json:"chapter"`
	AverageScore int    `json:"average_score"`
}

// TrendPoint is one result inside the trailing trend window
type TrendPoint struct {
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	TimeSpent int       `json:"time_spent"`
}

// ChapterAnalytics aggregates one chapter across the full history
type ChapterAnalytics struct {
	Chapter        string `json:"chapter"`
	AverageScore   int    `json:"average_score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
	Attempts       int    `json:"attempts"`
}

// ActivityEntry is one recently completed result
type ActivityEntry struct {
	ID             string    `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AnalyticsResponse is the full derived report for one session
// @Description Performance analytics report
type AnalyticsResponse struct {
	Overview         AnalyticsOverview  `json:"overview"`
	PerformanceTrend []TrendPoint       `json:"performance_trend"`
	ChapterAnalytics []ChapterAnalytics `json:"chapter_analytics"`
	RecentActivity   []ActivityEntry    `json:"recent_activity"`
}
