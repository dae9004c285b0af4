package validation

import (
	"regexp"
	"strings"

	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
)

// Validator provides request validation functionality
type Validator struct {
	maxQuestionCount int
}

// NewValidator creates a new validator instance
func NewValidator(maxQuestionCount int) *Validator {
	return &Validator{maxQuestionCount: maxQuestionCount}
}

// ValidateCreateQuizRequest validates the quiz setup filters
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuestionCount < 1 || req.QuestionCount > v.maxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("question_count", req.QuestionCount, 1, v.maxQuestionCount))
	}
	if len(req.SelectedChapters) == 0 {
		errors = append(errors, domain.NewMissingFieldError("selected_chapters"))
	}
	for _, chapter := range req.SelectedChapters {
		if strings.TrimSpace(chapter) == "" {
			errors = append(errors, domain.NewInvalidFormatError("selected_chapters", chapter))
			break
		}
	}
	if len(req.SelectedYears) == 0 {
		errors = append(errors, domain.NewMissingFieldError("selected_years"))
	}

	return errors
}

// ValidateSubmitQuizRequest validates a quiz submission
func (v *Validator) ValidateSubmitQuizRequest(quizID string, req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", quizID))
	}

	if req.TimeSpent < 0 {
		errors = append(errors, domain.NewOutOfRangeError("time_spent", req.TimeSpent, 0, int(^uint(0)>>1)))
	}

	for questionID, answer := range req.Answers {
		if !isAnswerLetter(answer) {
			errors = append(errors, domain.NewInvalidFormatError("answers."+questionID, answer))
		}
	}

	return errors
}

// ValidateImportRequest validates the shape of a bulk import; per-record
// structural rules live on domain.Question.Validate.
func (v *Validator) ValidateImportRequest(req *dto.ImportQuestionsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(req.Questions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("questions"))
	}
	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isAnswerLetter checks if the string is a single A-E option label
func isAnswerLetter(s string) bool {
	return len(s) == 1 && strings.Contains(domain.AnswerLetters, s)
}
