package service

import (
	"context"
	"encoding/json"
	"time"

	"exam-prep/internal/cache"
	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionService defines question bank operations
type QuestionService interface {
	// ListQuestions returns questions matching the given filters. Empty
	// filter slices mean "no filtering" on that axis.
	ListQuestions(ctx context.Context, chapters []string, years []int) ([]dto.QuestionResponse, error)

	// GetStats returns bank-wide counts and the distinct filter values.
	GetStats(ctx context.Context) (*dto.QuestionStatsResponse, error)

	// ListParts returns the book's part/chapter hierarchy derived from the
	// stored questions.
	ListParts(ctx context.Context) ([]dto.PartResponse, error)

	// ImportQuestions bulk-loads a batch, skipping records that fail
	// validation.
	ImportQuestions(ctx context.Context, req *dto.ImportQuestionsRequest) (*dto.ImportQuestionsResponse, error)
}

type questionService struct {
	questionRepo domain.QuestionRepository
	cacheAdapter domain.Cache
	statsTTL     time.Duration
}

// NewQuestionService creates a new instance of questionService. cacheAdapter
// may be nil, in which case stats and parts are computed on every call.
func NewQuestionService(questionRepo domain.QuestionRepository, cacheAdapter domain.Cache, statsTTL time.Duration) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		cacheAdapter: cacheAdapter,
		statsTTL:     statsTTL,
	}
}

func statsCacheKey() string {
	return cache.GenerateCacheKey("question", "stats", "all")
}

func partsCacheKey() string {
	return cache.GenerateCacheKey("question", "parts", "all")
}

// ListQuestions implements QuestionService
func (s *questionService) ListQuestions(ctx context.Context, chapters []string, years []int) ([]dto.QuestionResponse, error) {
	var (
		questions []domain.Question
		err       error
	)
	if len(chapters) == 0 && len(years) == 0 {
		questions, err = s.questionRepo.GetAll(ctx)
	} else {
		questions, err = s.questionRepo.GetByFilters(ctx, chapters, years)
	}
	if err != nil {
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	responses := make([]dto.QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = toQuestionResponse(q)
	}
	return responses, nil
}

// GetStats implements QuestionService. The three aggregate queries run
// concurrently and the assembled result is cached.
func (s *questionService) GetStats(ctx context.Context) (*dto.QuestionStatsResponse, error) {
	if cached, ok := s.fromCache(ctx, statsCacheKey()); ok {
		var stats dto.QuestionStatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	var (
		total    int
		chapters []string
		years    []int
	)
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.questionRepo.Count(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		chapters, err = s.questionRepo.ListChapters(groupCtx)
		return err
	})
	g.Go(func() error {
		var err error
		years, err = s.questionRepo.ListYears(groupCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to compute question stats", err)
	}

	stats := &dto.QuestionStatsResponse{
		TotalQuestions: total,
		Chapters:       chapters,
		Years:          years,
	}
	s.toCache(ctx, statsCacheKey(), stats)
	return stats, nil
}

// ListParts implements QuestionService
func (s *questionService) ListParts(ctx context.Context) ([]dto.PartResponse, error) {
	if cached, ok := s.fromCache(ctx, partsCacheKey()); ok {
		var parts []dto.PartResponse
		if err := json.Unmarshal([]byte(cached), &parts); err == nil {
			return parts, nil
		}
	}

	parts, err := s.questionRepo.ListParts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list parts", err)
	}

	responses := make([]dto.PartResponse, len(parts))
	for i, p := range parts {
		responses[i] = dto.PartResponse{PartID: p.ID, PartName: p.Name, Chapters: p.Chapters}
	}
	s.toCache(ctx, partsCacheKey(), responses)
	return responses, nil
}

// ImportQuestions implements QuestionService. Records that fail domain
// validation are skipped with a warning; the batch fails only when nothing
// valid remains.
func (s *questionService) ImportQuestions(ctx context.Context, req *dto.ImportQuestionsRequest) (*dto.ImportQuestionsResponse, error) {
	valid := make([]*domain.Question, 0, len(req.Questions))
	skipped := 0
	for i, record := range req.Questions {
		question := domain.NewQuestion(record.Year, record.Statement, record.Options, record.CorrectAnswer, record.Chapter, record.BookSection)
		if err := question.Validate(); err != nil {
			skipped++
			logger.Get().Warn("Skipping invalid question record",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, question)
	}
	if len(valid) == 0 {
		return nil, domain.NewInvalidInputError("No valid questions in import batch")
	}

	if err := s.questionRepo.SaveAll(ctx, valid); err != nil {
		return nil, domain.NewInternalError("Failed to save imported questions", err)
	}

	// Stored filter values changed, so the cached aggregates are stale.
	s.invalidate(ctx, statsCacheKey(), partsCacheKey())

	logger.Get().Info("Imported question batch",
		zap.Int("imported", len(valid)),
		zap.Int("skipped", skipped),
	)
	return &dto.ImportQuestionsResponse{
		Message:  "Questions imported successfully",
		Imported: len(valid),
		Skipped:  skipped,
	}, nil
}

func (s *questionService) fromCache(ctx context.Context, key string) (string, bool) {
	if s.cacheAdapter == nil {
		return "", false
	}
	value, err := s.cacheAdapter.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

func (s *questionService) toCache(ctx context.Context, key string, value any) {
	if s.cacheAdapter == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cacheAdapter.Set(ctx, key, string(payload), s.statsTTL); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *questionService) invalidate(ctx context.Context, keys ...string) {
	if s.cacheAdapter == nil {
		return
	}
	for _, key := range keys {
		if err := s.cacheAdapter.Delete(ctx, key); err != nil {
			logger.Get().Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
