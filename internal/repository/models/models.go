package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a []string column as a JSON array
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s, func() { *s = StringSlice{} })
}

// IntSlice stores an []int column as a JSON array
type IntSlice []int

// Value implements the driver.Valuer interface
func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (s *IntSlice) Scan(value interface{}) error {
	return scanJSON(value, s, func() { *s = IntSlice{} })
}

// StringMap stores a map[string]string column as a JSON object
type StringMap map[string]string

// Value implements the driver.Valuer interface
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (m *StringMap) Scan(value interface{}) error {
	return scanJSON(value, m, func() { *m = StringMap{} })
}

// ChapterTally mirrors the per-chapter correct/total pair inside the
// chapter_performance JSON column.
type ChapterTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ChapterTallyMap stores a map[string]ChapterTally column as a JSON object
type ChapterTallyMap map[string]ChapterTally

// Value implements the driver.Valuer interface
func (m ChapterTallyMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (m *ChapterTallyMap) Scan(value interface{}) error {
	return scanJSON(value, m, func() { *m = ChapterTallyMap{} })
}

func scanJSON(value interface{}, dest interface{}, reset func()) error {
	if value == nil {
		reset()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(data) == 0 || string(data) == "null" {
		reset()
		return nil
	}
	return json.Unmarshal(data, dest)
}

// Question row in the questions table
type Question struct {
	ID            string      `db:"id"`
	Year          int         `db:"year"`
	Statement     string      `db:"statement"`
	Options       StringSlice `db:"options"`
	CorrectAnswer string      `db:"correct_answer"`
	Chapter       string      `db:"chapter"`
	BookSection   string      `db:"book_section"`
}

// Quiz row in the quizzes table
type Quiz struct {
	ID               string       `db:"id"`
	SessionID        string       `db:"session_id"`
	QuestionCount    int          `db:"question_count"`
	SelectedChapters StringSlice  `db:"selected_chapters"`
	SelectedYears    IntSlice     `db:"selected_years"`
	TimedMode        bool         `db:"timed_mode"`
	QuestionIDs      StringSlice  `db:"question_ids"`
	StartedAt        time.Time    `db:"started_at"`
	EndedAt          sql.NullTime `db:"ended_at"`
	CreatedAt        time.Time    `db:"created_at"`
}

// QuizResult row in the quiz_results table
type QuizResult struct {
	ID                 string          `db:"id"`
	QuizID             string          `db:"quiz_id"`
	SessionID          string          `db:"session_id"`
	Answers            StringMap       `db:"answers"`
	Score              int             `db:"score"`
	TotalQuestions     int             `db:"total_questions"`
	TimeSpent          int             `db:"time_spent"`
	ChapterPerformance ChapterTallyMap `db:"chapter_performance"`
	CompletedAt        time.Time       `db:"completed_at"`
}
