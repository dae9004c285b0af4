package service

import (
	"context"
	"time"

	"exam-prep/internal/config"
	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/logger"

	"go.uber.org/zap"
)

// QuizService defines quiz assembly, retrieval and grading operations
type QuizService interface {
	// CreateQuiz assembles a quiz from the filtered pool. It fails with
	// ErrInsufficientPool when fewer questions match than requested; the
	// caller then confirms via ConfirmQuiz.
	CreateQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)

	// ConfirmQuiz assembles a quiz from the same filters, accepting a
	// smaller realized count when the pool is short.
	ConfirmQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)

	// GetQuizWithQuestions returns a quiz together with its questions in
	// presentation order.
	GetQuizWithQuestions(ctx context.Context, id string) (*dto.QuizWithQuestionsResponse, error)

	// SubmitQuiz grades a submission and persists the result.
	SubmitQuiz(ctx context.Context, sessionID, quizID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error)

	// GetResult returns one graded result.
	GetResult(ctx context.Context, id string) (*dto.QuizResultResponse, error)

	// GetRecentResults returns the session's latest results.
	GetRecentResults(ctx context.Context, sessionID string, limit int) ([]dto.QuizResultResponse, error)
}

// quizService implements QuizService
type quizService struct {
	questionRepo domain.QuestionRepository
	quizRepo     domain.QuizRepository
	resultRepo   domain.QuizResultRepository
	sampler      *domain.Sampler
	cfg          *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	questionRepo domain.QuestionRepository,
	quizRepo domain.QuizRepository,
	resultRepo domain.QuizResultRepository,
	sampler *domain.Sampler,
	cfg *config.Config,
) QuizService {
	return &quizService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
		resultRepo:   resultRepo,
		sampler:      sampler,
		cfg:          cfg,
	}
}

// CreateQuiz implements QuizService
func (s *quizService) CreateQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	pool, err := s.questionRepo.GetByFilters(ctx, req.SelectedChapters, req.SelectedYears)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch question pool", err)
	}

	sampled, err := s.sampler.Sample(pool, req.QuestionCount)
	if err != nil {
		return nil, err
	}
	return s.persistQuiz(ctx, sessionID, req, sampled)
}

// ConfirmQuiz implements QuizService. It is the explicit confirmation entry
// point: the realized count is min(available, requested) and only an empty
// pool is still rejected.
func (s *quizService) ConfirmQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	pool, err := s.questionRepo.GetByFilters(ctx, req.SelectedChapters, req.SelectedYears)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch question pool", err)
	}

	sampled, err := s.sampler.SampleUpTo(pool, req.QuestionCount)
	if err != nil {
		return nil, err
	}
	if len(sampled) < req.QuestionCount {
		logger.Get().Info("Quiz confirmed with reduced question count",
			zap.Int("requested", req.QuestionCount),
			zap.Int("realized", len(sampled)),
		)
	}
	return s.persistQuiz(ctx, sessionID, req, sampled)
}

func (s *quizService) persistQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest, sampled []domain.Question) (*dto.QuizResponse, error) {
	questionIDs := make([]string, len(sampled))
	for i, q := range sampled {
		questionIDs[i] = q.ID
	}

	// QuestionCount records the realized count, which doubles as the score
	// denominator at grading time.
	quiz := domain.NewQuiz(sessionID, len(sampled), req.SelectedChapters, req.SelectedYears, req.TimedMode, questionIDs)
	if err := s.quizRepo.Save(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz assembled",
		zap.String("quizID", quiz.ID),
		zap.Int("questionCount", quiz.QuestionCount),
		zap.Strings("chapters", quiz.SelectedChapters),
	)
	return toQuizResponse(quiz), nil
}

// GetQuizWithQuestions implements QuizService
func (s *quizService) GetQuizWithQuestions(ctx context.Context, id string) (*dto.QuizWithQuestionsResponse, error) {
	quiz, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	byID, err := s.lookupQuestions(ctx, quiz.QuestionIDs)
	if err != nil {
		return nil, err
	}

	// Presentation order follows the quiz's sampled order; questions deleted
	// since assembly are simply skipped here.
	questions := make([]dto.QuestionResponse, 0, len(quiz.QuestionIDs))
	for _, questionID := range quiz.QuestionIDs {
		if q, ok := byID[questionID]; ok {
			questions = append(questions, toQuestionResponse(q))
		}
	}

	return &dto.QuizWithQuestionsResponse{
		Quiz:      *toQuizResponse(quiz),
		Questions: questions,
	}, nil
}

// SubmitQuiz implements QuizService. Grading matches each submitted letter
// against the question key; an absent answer is never correct. A question
// deleted after assembly still counts toward the score denominator (the
// quiz's realized count) but is excluded from chapter statistics.
func (s *quizService) SubmitQuiz(ctx context.Context, sessionID, quizID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	byID, err := s.lookupQuestions(ctx, quiz.QuestionIDs)
	if err != nil {
		return nil, err
	}

	correctCount := 0
	performance := domain.ChapterPerformance{}
	for _, questionID := range quiz.QuestionIDs {
		question, ok := byID[questionID]
		if !ok {
			logger.Get().Warn("Quiz references a deleted question; kept in score denominator",
				zap.String("quizID", quiz.ID),
				zap.String("questionID", questionID),
			)
			continue
		}

		isCorrect := question.IsCorrect(req.Answers[questionID])
		if isCorrect {
			correctCount++
		}

		score := performance[question.Chapter]
		score.Total++
		if isCorrect {
			score.Correct++
		}
		performance[question.Chapter] = score
	}

	// The end timestamp is stamped server-side at grading; the client's
	// self-reported TimeSpent is stored verbatim next to it.
	endedAt := time.Now()
	result := &domain.QuizResult{
		QuizID:             quiz.ID,
		SessionID:          sessionID,
		Answers:            req.Answers,
		Score:              domain.Percentage(correctCount, quiz.QuestionCount),
		TotalQuestions:     quiz.QuestionCount,
		TimeSpent:          req.TimeSpent,
		ChapterPerformance: performance,
		CompletedAt:        endedAt,
	}
	if err := s.resultRepo.Save(ctx, result); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz result", err)
	}

	// The result is the record of grading; the quiz end stamp is derived
	// bookkeeping, so if it fails the saved result still stands.
	if err := s.quizRepo.SetEndedAt(ctx, quiz.ID, endedAt); err != nil {
		logger.Get().Warn("Failed to stamp quiz end time",
			zap.String("quizID", quiz.ID),
			zap.Error(err),
		)
	}
	quiz.EndedAt = &endedAt

	logger.Get().Info("Quiz graded",
		zap.String("quizID", quiz.ID),
		zap.String("resultID", result.ID),
		zap.Int("score", result.Score),
	)
	return toQuizResultResponse(result, quiz), nil
}

// GetResult implements QuizService
func (s *quizService) GetResult(ctx context.Context, id string) (*dto.QuizResultResponse, error) {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz result", err)
	}
	if result == nil {
		return nil, domain.NewResultNotFoundError(id)
	}

	quiz, err := s.quizRepo.GetByID(ctx, result.QuizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz for result", err)
	}
	return toQuizResultResponse(result, quiz), nil
}

// GetRecentResults implements QuizService
func (s *quizService) GetRecentResults(ctx context.Context, sessionID string, limit int) ([]dto.QuizResultResponse, error) {
	if limit <= 0 {
		limit = s.cfg.Quiz.RecentResultsLimit
	}
	results, err := s.resultRepo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz results", err)
	}

	responses := make([]dto.QuizResultResponse, 0, len(results))
	for i := range results {
		responses = append(responses, *toQuizResultResponse(&results[i], nil))
	}
	return responses, nil
}

func (s *quizService) lookupQuestions(ctx context.Context, ids []string) (map[string]domain.Question, error) {
	questions, err := s.questionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz questions", err)
	}
	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID, nil
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	return &dto.QuizResponse{
		ID:               quiz.ID,
		QuestionCount:    quiz.QuestionCount,
		SelectedChapters: quiz.SelectedChapters,
		SelectedYears:    quiz.SelectedYears,
		TimedMode:        quiz.TimedMode,
		QuestionIDs:      quiz.QuestionIDs,
		StartedAt:        quiz.StartedAt,
		EndedAt:          quiz.EndedAt,
		CreatedAt:        quiz.CreatedAt,
	}
}

func toQuestionResponse(q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:            q.ID,
		Year:          q.Year,
		Statement:     q.Statement,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Chapter:       q.Chapter,
		BookSection:   q.BookSection,
	}
}

// toQuizResultResponse renders a result; when the originating quiz is
// available the server-derived elapsed time is included alongside the
// client-reported one.
func toQuizResultResponse(result *domain.QuizResult, quiz *domain.Quiz) *dto.QuizResultResponse {
	performance := make(map[string]dto.ChapterScoreResponse, len(result.ChapterPerformance))
	for chapter, score := range result.ChapterPerformance {
		performance[chapter] = dto.ChapterScoreResponse{Correct: score.Correct, Total: score.Total}
	}

	resp := &dto.QuizResultResponse{
		ID:                 result.ID,
		QuizID:             result.QuizID,
		Answers:            result.Answers,
		Score:              result.Score,
		TotalQuestions:     result.TotalQuestions,
		TimeSpent:          result.TimeSpent,
		ChapterPerformance: performance,
		CompletedAt:        result.CompletedAt,
	}
	if quiz != nil {
		if elapsed, done := quiz.Elapsed(); done {
			seconds := int(elapsed.Seconds())
			resp.ElapsedSeconds = &seconds
		}
	}
	return resp
}
