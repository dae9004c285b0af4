package dto

import "time"

// CreateQuizRequest carries the quiz setup filters
// @Description Request body for assembling a quiz
type CreateQuizRequest struct {
	QuestionCount    int      `json:"question_count"`
	SelectedChapters []string `json:"selected_chapters"`
	SelectedYears    []int    `json:"selected_years"`
	TimedMode        bool     `json:"timed_mode"`
}

// QuizResponse represents an assembled quiz in the API response
type QuizResponse struct {
	ID               string     `json:"id"`
	QuestionCount    int        `json:"question_count"`
	SelectedChapters []string   `json:"selected_chapters"`
	SelectedYears    []int      `json:"selected_years"`
	TimedMode        bool       `json:"timed_mode"`
	QuestionIDs      []string   `json:"question_ids"`
	StartedAt        time.Time  `json:"started_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// QuizWithQuestionsResponse pairs a quiz with its realized questions
type QuizWithQuestionsResponse struct {
	Quiz      QuizResponse       `json:"quiz"`
	Questions []QuestionResponse `json:"questions"`
}

// SubmitQuizRequest carries the submitted answers for grading
// @Description Request body for submitting a quiz
type SubmitQuizRequest struct {
	Answers   map[string]string `json:"answers"`
	TimeSpent int               `json:"time_spent"`
}

// ChapterScoreResponse is a correct/total tally for one chapter
type ChapterScoreResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// QuizResultResponse represents a graded submission. ElapsedSeconds is the
// server-derived duration; TimeSpent is what the client reported. Both are
// exposed, neither is authoritative.
type QuizResultResponse struct {
	ID                 string                          `json:"id"`
	QuizID             string                          `json:"quiz_id"`
	Answers            map[string]string               `json:"answers"`
	Score              int                             `json:"score"`
	TotalQuestions     int                             `json:"total_questions"`
	TimeSpent          int                             `json:"time_spent"`
	ElapsedSeconds     *int                            `json:"elapsed_seconds,omitempty"`
	ChapterPerformance map[string]ChapterScoreResponse `json:"chapter_performance"`
	CompletedAt        time.Time                       `json:"completed_at"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
