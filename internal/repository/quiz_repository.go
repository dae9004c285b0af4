package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"exam-prep/internal/domain"
	"exam-prep/internal/repository/models"
	"exam-prep/internal/util"

	"github.com/jmoiron/sqlx"
)

const quizColumns = `id, session_id, question_count, selected_chapters, selected_years, timed_mode, question_ids, started_at, ended_at, created_at`

// SQLXQuizRepository implements domain.QuizRepository using sqlx
type SQLXQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of SQLXQuizRepository
func NewSQLXQuizRepository(db *sqlx.DB) domain.QuizRepository {
	return &SQLXQuizRepository{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	var endedAt *time.Time
	if m.EndedAt.Valid {
		t := m.EndedAt.Time
		endedAt = &t
	}
	return &domain.Quiz{
		ID:               m.ID,
		SessionID:        m.SessionID,
		QuestionCount:    m.QuestionCount,
		SelectedChapters: m.SelectedChapters,
		SelectedYears:    m.SelectedYears,
		TimedMode:        m.TimedMode,
		QuestionIDs:      m.QuestionIDs,
		StartedAt:        m.StartedAt,
		EndedAt:          endedAt,
		CreatedAt:        m.CreatedAt,
	}
}

func fromDomainQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	var endedAt sql.NullTime
	if q.EndedAt != nil {
		endedAt = sql.NullTime{Time: *q.EndedAt, Valid: true}
	}
	return &models.Quiz{
		ID:               q.ID,
		SessionID:        q.SessionID,
		QuestionCount:    q.QuestionCount,
		SelectedChapters: models.StringSlice(q.SelectedChapters),
		SelectedYears:    models.IntSlice(q.SelectedYears),
		TimedMode:        q.TimedMode,
		QuestionIDs:      models.StringSlice(q.QuestionIDs),
		StartedAt:        q.StartedAt,
		EndedAt:          endedAt,
		CreatedAt:        q.CreatedAt,
	}
}

// Save implements domain.QuizRepository
func (r *SQLXQuizRepository) Save(ctx context.Context, quiz *domain.Quiz) error {
	m := fromDomainQuiz(quiz)
	if m == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	if m.ID == "" {
		m.ID = util.NewULID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO quizzes (` + quizColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.SessionID, m.QuestionCount, m.SelectedChapters, m.SelectedYears,
		m.TimedMode, m.QuestionIDs, m.StartedAt, m.EndedAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	quiz.ID = m.ID
	quiz.CreatedAt = m.CreatedAt
	return nil
}

// GetByID implements domain.QuizRepository
func (r *SQLXQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var m models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = ?`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&m), nil
}

// SetEndedAt implements domain.QuizRepository
func (r *SQLXQuizRepository) SetEndedAt(ctx context.Context, id string, endedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE quizzes SET ended_at = ? WHERE id = ?`, endedAt, id)
	if err != nil {
		return fmt.Errorf("failed to set quiz end time: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check quiz end time update: %w", err)
	}
	if affected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}
