package domain

import "strings"

// AnswerLetters are the valid option labels, positionally mapped to Options.
const AnswerLetters = "ABCDE"

const (
	MinOptions = 4
	MaxOptions = 5
)

// Question represents a single exam question. Questions are immutable once
// created and enter the system only through bulk import.
type Question struct {
	ID            string
	Year          int
	Statement     string
	Options       []string // 4-5 alternatives, positionally mapped to A..E
	CorrectAnswer string   // single letter A-E, must index into Options
	Chapter       string
	BookSection   string
}

// NewQuestion creates a new Question instance
func NewQuestion(year int, statement string, options []string, correctAnswer, chapter, bookSection string) *Question {
	return &Question{
		Year:          year,
		Statement:     statement,
		Options:       options,
		CorrectAnswer: strings.ToUpper(strings.TrimSpace(correctAnswer)),
		Chapter:       chapter,
		BookSection:   bookSection,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	var errs ValidationErrors
	if q.Year == 0 {
		errs = append(errs, NewMissingFieldError("year"))
	}
	if strings.TrimSpace(q.Statement) == "" {
		errs = append(errs, NewMissingFieldError("statement"))
	}
	if strings.TrimSpace(q.Chapter) == "" {
		errs = append(errs, NewMissingFieldError("chapter"))
	}
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		errs = append(errs, NewOutOfRangeError("options", len(q.Options), MinOptions, MaxOptions))
	}
	if !isAnswerLetter(q.CorrectAnswer) {
		errs = append(errs, NewInvalidFormatError("correct_answer", q.CorrectAnswer))
	} else if idx := strings.Index(AnswerLetters, q.CorrectAnswer); idx >= len(q.Options) {
		// The answer letter must point at an existing option.
		errs = append(errs, NewInvalidFormatError("correct_answer", q.CorrectAnswer))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsCorrect reports whether the submitted letter matches the question key.
// The match is exact and case-sensitive; an empty answer is never correct.
func (q *Question) IsCorrect(answer string) bool {
	return answer != "" && answer == q.CorrectAnswer
}

func isAnswerLetter(s string) bool {
	return len(s) == 1 && strings.Contains(AnswerLetters, s)
}

// Part groups the chapters that belong to one book section.
type Part struct {
	ID       string
	Name     string
	Chapters []string
}
