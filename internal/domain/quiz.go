package domain

import (
	"math"
	"time"
)

// Quiz is an immutable filter snapshot plus the realized question sample.
// It is created once at assembly time; EndedAt is set exactly once, at
// submission. QuestionCount records the realized sample size, which may be
// smaller than the caller's request when a short pool was confirmed, and it
// doubles as the score denominator at grading time.
type Quiz struct {
	ID               string
	SessionID        string // optional owner; empty for anonymous quizzes
	QuestionCount    int
	SelectedChapters []string
	SelectedYears    []int
	TimedMode        bool
	QuestionIDs      []string // presentation order
	StartedAt        time.Time
	EndedAt          *time.Time
	CreatedAt        time.Time
}

// NewQuiz creates a new Quiz instance
func NewQuiz(sessionID string, questionCount int, chapters []string, years []int, timedMode bool, questionIDs []string) *Quiz {
	now := time.Now()
	return &Quiz{
		SessionID:        sessionID,
		QuestionCount:    questionCount,
		SelectedChapters: chapters,
		SelectedYears:    years,
		TimedMode:        timedMode,
		QuestionIDs:      questionIDs,
		StartedAt:        now,
		CreatedAt:        now,
	}
}

// Elapsed returns the server-derived duration between start and end, and
// whether the quiz has been submitted. This is deliberately kept separate
// from the client-reported TimeSpent on the result; the two values are
// exposed side by side and never reconciled.
func (q *Quiz) Elapsed() (time.Duration, bool) {
	if q.EndedAt == nil {
		return 0, false
	}
	return q.EndedAt.Sub(q.StartedAt), true
}

// ChapterScore is a correct/total tally for one chapter.
type ChapterScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ChapterPerformance maps chapter name to its tally within one result.
type ChapterPerformance map[string]ChapterScore

// QuizResult records one graded submission. The schema permits multiple
// results per quiz; submission is at-least-once, not exactly-once.
type QuizResult struct {
	ID                 string
	QuizID             string
	SessionID          string
	Answers            map[string]string // question ID -> submitted letter; unanswered absent
	Score              int               // integer percentage 0-100
	TotalQuestions     int               // copied from the quiz at submission time
	TimeSpent          int               // client-reported, seconds
	ChapterPerformance ChapterPerformance
	CompletedAt        time.Time
}

// Percentage computes an integer percentage score with half-up rounding.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
