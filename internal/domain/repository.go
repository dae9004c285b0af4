package domain

import (
	"context"
	"time"
)

// QuestionRepository defines the interface for question persistence.
// Lookup methods return (nil, nil) when no row matches.
type QuestionRepository interface {
	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id string) (*Question, error)

	// GetByIDs retrieves the questions whose IDs are in ids. Missing IDs are
	// silently absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]Question, error)

	// GetAll returns every question
	GetAll(ctx context.Context) ([]Question, error)

	// GetByFilters returns the questions whose chapter is in chapters AND
	// whose year is in years
	GetByFilters(ctx context.Context, chapters []string, years []int) ([]Question, error)

	// Count returns the total number of questions
	Count(ctx context.Context) (int, error)

	// ListChapters returns the distinct chapter labels
	ListChapters(ctx context.Context) ([]string, error)

	// ListYears returns the distinct years, newest first
	ListYears(ctx context.Context) ([]int, error)

	// ListParts returns chapters grouped by book section
	ListParts(ctx context.Context) ([]Part, error)

	// SaveAll persists a batch of questions atomically
	SaveAll(ctx context.Context, questions []*Question) error
}

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// Save persists a new quiz
	Save(ctx context.Context, quiz *Quiz) error

	// GetByID retrieves a quiz by its ID, or (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*Quiz, error)

	// SetEndedAt stamps the quiz end time. It is set exactly once, at
	// submission; later calls overwrite only on repeated submissions.
	SetEndedAt(ctx context.Context, id string, endedAt time.Time) error
}

// QuizResultRepository defines the interface for quiz result persistence
type QuizResultRepository interface {
	// Save persists a new quiz result
	Save(ctx context.Context, result *QuizResult) error

	// GetByID retrieves a result by its ID, or (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*QuizResult, error)

	// GetByQuizID returns every result recorded for one quiz
	GetByQuizID(ctx context.Context, quizID string) ([]QuizResult, error)

	// ListBySession returns a session's results ordered by completion time
	// descending. limit <= 0 means no limit. An empty session ID scopes the
	// listing to ownerless results.
	ListBySession(ctx context.Context, sessionID string, limit int) ([]QuizResult, error)
}
