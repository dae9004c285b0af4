package repository

import (
	"context"
	"regexp"
	"testing"

	"exam-prep/internal/domain"
	"exam-prep/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func questionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "year", "statement", "options", "correct_answer", "chapter", "book_section"})
}

func TestToDomainQuestion(t *testing.T) {
	m := &models.Question{
		ID:            "q1",
		Year:          2023,
		Statement:     "statement",
		Options:       models.StringSlice{"a", "b", "c", "d"},
		CorrectAnswer: "B",
		Chapter:       "Psoriasis",
		BookSection:   "Part I",
	}

	q := toDomainQuestion(m)
	assert.NotNil(t, q)
	assert.Equal(t, m.ID, q.ID)
	assert.Equal(t, m.Year, q.Year)
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
	assert.Equal(t, m.CorrectAnswer, q.CorrectAnswer)

	assert.Nil(t, toDomainQuestion(nil))
}

func TestSQLXQuestionRepository_GetByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuestionRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM questions WHERE id = \?`).
			WithArgs("q1").
			WillReturnRows(questionRows().AddRow("q1", 2023, "statement", `["a","b","c","d"]`, "A", "Psoriasis", "Part I"))

		q, err := repo.GetByID(ctx, "q1")

		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, "q1", q.ID)
		assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFoundReturnsNilNil", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM questions WHERE id = \?`).
			WithArgs("missing").
			WillReturnRows(questionRows())

		q, err := repo.GetByID(ctx, "missing")

		require.NoError(t, err)
		assert.Nil(t, q)
	})
}

func TestSQLXQuestionRepository_GetByFilters(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuestionRepository(db)
	ctx := context.Background()

	t.Run("EmptyFilterSetShortCircuits", func(t *testing.T) {
		qs, err := repo.GetByFilters(ctx, nil, []int{2023})
		require.NoError(t, err)
		assert.Empty(t, qs)

		qs, err = repo.GetByFilters(ctx, []string{"Psoriasis"}, nil)
		require.NoError(t, err)
		assert.Empty(t, qs)
		// No query must reach the database for empty filters.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExpandsInClauses", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE chapter IN (?, ?) AND year IN (?)`)).
			WithArgs("Psoriasis", "Acne", 2023).
			WillReturnRows(questionRows().
				AddRow("q1", 2023, "s1", `["a","b","c","d"]`, "A", "Psoriasis", "Part I").
				AddRow("q2", 2023, "s2", `["a","b","c","d"]`, "C", "Acne", "Part II"))

		qs, err := repo.GetByFilters(ctx, []string{"Psoriasis", "Acne"}, []int{2023})

		require.NoError(t, err)
		require.Len(t, qs, 2)
		assert.Equal(t, "Acne", qs[1].Chapter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXQuestionRepository_GetByIDs(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuestionRepository(db)
	ctx := context.Background()

	t.Run("EmptyIDs", func(t *testing.T) {
		qs, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, qs)
	})

	t.Run("MissingIDsSilentlyAbsent", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id IN (?, ?)`)).
			WithArgs("q1", "q-gone").
			WillReturnRows(questionRows().AddRow("q1", 2023, "s1", `["a","b","c","d"]`, "A", "Psoriasis", "Part I"))

		qs, err := repo.GetByIDs(ctx, []string{"q1", "q-gone"})

		require.NoError(t, err)
		require.Len(t, qs, 1)
		assert.Equal(t, "q1", qs[0].ID)
	})
}

func TestSQLXQuestionRepository_Stats(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuestionRepository(db)
	ctx := context.Background()

	t.Run("Count", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM questions`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		count, err := repo.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, 42, count)
	})

	t.Run("ListChapters", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT chapter FROM questions ORDER BY chapter`).
			WillReturnRows(sqlmock.NewRows([]string{"chapter"}).AddRow("Acne").AddRow("Psoriasis"))

		chapters, err := repo.ListChapters(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"Acne", "Psoriasis"}, chapters)
	})

	t.Run("ListYearsNewestFirst", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT year FROM questions ORDER BY year DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"year"}).AddRow(2023).AddRow(2022))

		years, err := repo.ListYears(ctx)

		require.NoError(t, err)
		assert.Equal(t, []int{2023, 2022}, years)
	})
}

func TestSQLXQuestionRepository_ListParts(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuestionRepository(db)

	mock.ExpectQuery(`SELECT DISTINCT book_section, chapter FROM questions`).
		WillReturnRows(sqlmock.NewRows([]string{"book_section", "chapter"}).
			AddRow("Neoplasms of the Skin", "Basal Cell Carcinoma").
			AddRow("Neoplasms of the Skin", "Melanoma").
			AddRow("Vesiculobullous Diseases", "Pemphigus"))

	parts, err := repo.ListParts(context.Background())

	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.Equal(t, "part-01", parts[0].ID)
	assert.Equal(t, "Neoplasms of the Skin", parts[0].Name)
	assert.Equal(t, []string{"Basal Cell Carcinoma", "Melanoma"}, parts[0].Chapters)
	assert.Equal(t, "part-02", parts[1].ID)
	assert.Equal(t, []string{"Pemphigus"}, parts[1].Chapters)
}

func TestSQLXQuestionRepository_SaveAll(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXQuestionRepository(db)
	ctx := context.Background()

	questions := []*domain.Question{
		{Year: 2023, Statement: "s1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "A", Chapter: "Psoriasis", BookSection: "Part I"},
		{Year: 2022, Statement: "s2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "B", Chapter: "Acne", BookSection: "Part II"},
	}

	t.Run("CommitsBatch", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO questions`).
			WithArgs(sqlmock.AnyArg(), 2023, "s1", `["a","b","c","d"]`, "A", "Psoriasis", "Part I").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO questions`).
			WithArgs(sqlmock.AnyArg(), 2022, "s2", `["a","b","c","d"]`, "B", "Acne", "Part II").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.SaveAll(ctx, questions)

		require.NoError(t, err)
		// IDs are assigned during the insert.
		assert.NotEmpty(t, questions[0].ID)
		assert.NotEmpty(t, questions[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
