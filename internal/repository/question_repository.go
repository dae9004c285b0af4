package repository

import (
	"context"
	"database/sql"
	"fmt"

	"exam-prep/internal/domain"
	"exam-prep/internal/repository/models"
	"exam-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, year, statement, options, correct_answer, chapter, book_section`

// SQLXQuestionRepository implements domain.QuestionRepository using sqlx
type SQLXQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new instance of SQLXQuestionRepository
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &SQLXQuestionRepository{db: db}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:            m.ID,
		Year:          m.Year,
		Statement:     m.Statement,
		Options:       m.Options,
		CorrectAnswer: m.CorrectAnswer,
		Chapter:       m.Chapter,
		BookSection:   m.BookSection,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:            q.ID,
		Year:          q.Year,
		Statement:     q.Statement,
		Options:       models.StringSlice(q.Options),
		CorrectAnswer: q.CorrectAnswer,
		Chapter:       q.Chapter,
		BookSection:   q.BookSection,
	}
}

// GetByID implements domain.QuestionRepository
func (r *SQLXQuestionRepository) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	var m models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %s: %w", id, err)
	}
	return toDomainQuestion(&m), nil
}

// GetByIDs implements domain.QuestionRepository
func (r *SQLXQuestionRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		return []domain.Question{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+questionColumns+` FROM questions WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build question lookup query: %w", err)
	}

	var rows []models.Question
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by IDs: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetAll implements domain.QuestionRepository
func (r *SQLXQuestionRepository) GetAll(ctx context.Context) ([]domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY year DESC, chapter`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// GetByFilters implements domain.QuestionRepository. A question qualifies
// only when its chapter is in chapters AND its year is in years.
func (r *SQLXQuestionRepository) GetByFilters(ctx context.Context, chapters []string, years []int) ([]domain.Question, error) {
	if len(chapters) == 0 || len(years) == 0 {
		return []domain.Question{}, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+questionColumns+` FROM questions WHERE chapter IN (?) AND year IN (?)`,
		chapters, years)
	if err != nil {
		return nil, fmt.Errorf("failed to build filter query: %w", err)
	}

	var rows []models.Question
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get questions by filters: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// Count implements domain.QuestionRepository
func (r *SQLXQuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// ListChapters implements domain.QuestionRepository
func (r *SQLXQuestionRepository) ListChapters(ctx context.Context) ([]string, error) {
	var chapters []string
	query := `SELECT DISTINCT chapter FROM questions ORDER BY chapter`
	if err := r.db.SelectContext(ctx, &chapters, query); err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	return chapters, nil
}

// ListYears implements domain.QuestionRepository
func (r *SQLXQuestionRepository) ListYears(ctx context.Context) ([]int, error) {
	var years []int
	query := `SELECT DISTINCT year FROM questions ORDER BY year DESC`
	if err := r.db.SelectContext(ctx, &years, query); err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	return years, nil
}

// ListParts implements domain.QuestionRepository
func (r *SQLXQuestionRepository) ListParts(ctx context.Context) ([]domain.Part, error) {
	var rows []struct {
		BookSection string `db:"book_section"`
		Chapter     string `db:"chapter"`
	}
	query := `SELECT DISTINCT book_section, chapter FROM questions ORDER BY book_section, chapter`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	var parts []domain.Part
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.BookSection]
		if !ok {
			i = len(parts)
			index[row.BookSection] = i
			parts = append(parts, domain.Part{
				ID:   fmt.Sprintf("part-%02d", i+1),
				Name: row.BookSection,
			})
		}
		parts[i].Chapters = append(parts[i].Chapters, row.Chapter)
	}
	return parts, nil
}

// SaveAll implements domain.QuestionRepository. The batch is inserted in one
// transaction; a single malformed row aborts the whole import.
func (r *SQLXQuestionRepository) SaveAll(ctx context.Context, questions []*domain.Question) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO questions (` + questionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, q := range questions {
		m := fromDomainQuestion(q)
		if m.ID == "" {
			m.ID = util.NewULID()
		}
		if _, err := tx.ExecContext(ctx, query,
			m.ID, m.Year, m.Statement, m.Options, m.CorrectAnswer, m.Chapter, m.BookSection,
		); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
		q.ID = m.ID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import transaction: %w", err)
	}
	return nil
}

func toDomainQuestions(rows []models.Question) []domain.Question {
	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, *toDomainQuestion(&rows[i]))
	}
	return questions
}
