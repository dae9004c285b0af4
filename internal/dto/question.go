package dto

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID            string   `json:"id"`
	Year          int      `json:"year"`
	Statement     string   `json:"statement"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Chapter       string   `json:"chapter"`
	BookSection   string   `json:"book_section"`
}

// ImportQuestion is one structured question record in a bulk import request.
// Malformed records are rejected at this boundary before reaching the core.
type ImportQuestion struct {
	Year          int      `json:"year"`
	Statement     string   `json:"statement"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Chapter       string   `json:"chapter"`
	BookSection   string   `json:"book_section"`
}

// ImportQuestionsRequest represents a bulk question import
type ImportQuestionsRequest struct {
	Questions []ImportQuestion `json:"questions"`
}

// ImportQuestionsResponse reports how many records were imported
type ImportQuestionsResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// QuestionStatsResponse summarizes the question bank
// @Description Question bank statistics
type QuestionStatsResponse struct {
	TotalQuestions int      `json:"total_questions"`
	Chapters       []string `json:"chapters"`
	Years          []int    `json:"years"`
}

// PartResponse groups the chapters belonging to one book section
type PartResponse struct {
	PartID   string   `json:"part_id"`
	PartName string   `json:"part_name"`
	Chapters []string `json:"chapters"`
}
