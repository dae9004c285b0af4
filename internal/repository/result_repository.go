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

const resultColumns = `id, quiz_id, session_id, answers, score, total_questions, time_spent, chapter_performance, completed_at`

// SQLXQuizResultRepository implements domain.QuizResultRepository using sqlx
type SQLXQuizResultRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizResultRepository creates a new instance of SQLXQuizResultRepository
func NewSQLXQuizResultRepository(db *sqlx.DB) domain.QuizResultRepository {
	return &SQLXQuizResultRepository{db: db}
}

func toDomainQuizResult(m *models.QuizResult) *domain.QuizResult {
	if m == nil {
		return nil
	}
	perf := make(domain.ChapterPerformance, len(m.ChapterPerformance))
	for chapter, tally := range m.ChapterPerformance {
		perf[chapter] = domain.ChapterScore{Correct: tally.Correct, Total: tally.Total}
	}
	return &domain.QuizResult{
		ID:                 m.ID,
		QuizID:             m.QuizID,
		SessionID:          m.SessionID,
		Answers:            m.Answers,
		Score:              m.Score,
		TotalQuestions:     m.TotalQuestions,
		TimeSpent:          m.TimeSpent,
		ChapterPerformance: perf,
		CompletedAt:        m.CompletedAt,
	}
}

func fromDomainQuizResult(r *domain.QuizResult) *models.QuizResult {
	if r == nil {
		return nil
	}
	perf := make(models.ChapterTallyMap, len(r.ChapterPerformance))
	for chapter, score := range r.ChapterPerformance {
		perf[chapter] = models.ChapterTally{Correct: score.Correct, Total: score.Total}
	}
	return &models.QuizResult{
		ID:                 r.ID,
		QuizID:             r.QuizID,
		SessionID:          r.SessionID,
		Answers:            models.StringMap(r.Answers),
		Score:              r.Score,
		TotalQuestions:     r.TotalQuestions,
		TimeSpent:          r.TimeSpent,
		ChapterPerformance: perf,
		CompletedAt:        r.CompletedAt,
	}
}

// Save implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) Save(ctx context.Context, result *domain.QuizResult) error {
	m := fromDomainQuizResult(result)
	if m == nil {
		return fmt.Errorf("cannot save nil quiz result")
	}
	if m.ID == "" {
		m.ID = util.NewULID()
	}
	if m.CompletedAt.IsZero() {
		m.CompletedAt = time.Now()
	}

	query := `INSERT INTO quiz_results (` + resultColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.QuizID, m.SessionID, m.Answers, m.Score,
		m.TotalQuestions, m.TimeSpent, m.ChapterPerformance, m.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}

	result.ID = m.ID
	result.CompletedAt = m.CompletedAt
	return nil
}

// GetByID implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) GetByID(ctx context.Context, id string) (*domain.QuizResult, error) {
	var m models.QuizResult
	query := `SELECT ` + resultColumns + ` FROM quiz_results WHERE id = ?`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz result by ID %s: %w", id, err)
	}
	return toDomainQuizResult(&m), nil
}

// GetByQuizID implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) GetByQuizID(ctx context.Context, quizID string) ([]domain.QuizResult, error) {
	var rows []models.QuizResult
	query := `SELECT ` + resultColumns + ` FROM quiz_results WHERE quiz_id = ? ORDER BY completed_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get quiz results for quiz %s: %w", quizID, err)
	}
	return toDomainQuizResults(rows), nil
}

// ListBySession implements domain.QuizResultRepository
func (r *SQLXQuizResultRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.QuizResult, error) {
	query := `SELECT ` + resultColumns + ` FROM quiz_results WHERE session_id = ? ORDER BY completed_at DESC`
	args := []interface{}{sessionID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []models.QuizResult
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list quiz results for session: %w", err)
	}
	return toDomainQuizResults(rows), nil
}

func toDomainQuizResults(rows []models.QuizResult) []domain.QuizResult {
	results := make([]domain.QuizResult, 0, len(rows))
	for i := range rows {
		results = append(results, *toDomainQuizResult(&rows[i]))
	}
	return results
}
