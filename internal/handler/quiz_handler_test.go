package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/handler"
	"exam-prep/internal/middleware"
	"exam-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	CreateQuizFunc           func(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	ConfirmQuizFunc          func(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuizWithQuestionsFunc func(ctx context.Context, id string) (*dto.QuizWithQuestionsResponse, error)
	SubmitQuizFunc           func(ctx context.Context, sessionID, quizID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error)
	GetResultFunc            func(ctx context.Context, id string) (*dto.QuizResultResponse, error)
	GetRecentResultsFunc     func(ctx context.Context, sessionID string, limit int) ([]dto.QuizResultResponse, error)
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, sessionID, req)
	}
	panic("MockQuizService.CreateQuizFunc not implemented")
}
func (m *MockQuizService) ConfirmQuiz(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	if m.ConfirmQuizFunc != nil {
		return m.ConfirmQuizFunc(ctx, sessionID, req)
	}
	panic("MockQuizService.ConfirmQuizFunc not implemented")
}
func (m *MockQuizService) GetQuizWithQuestions(ctx context.Context, id string) (*dto.QuizWithQuestionsResponse, error) {
	if m.GetQuizWithQuestionsFunc != nil {
		return m.GetQuizWithQuestionsFunc(ctx, id)
	}
	panic("MockQuizService.GetQuizWithQuestionsFunc not implemented")
}
func (m *MockQuizService) SubmitQuiz(ctx context.Context, sessionID, quizID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, sessionID, quizID, req)
	}
	panic("MockQuizService.SubmitQuizFunc not implemented")
}
func (m *MockQuizService) GetResult(ctx context.Context, id string) (*dto.QuizResultResponse, error) {
	if m.GetResultFunc != nil {
		return m.GetResultFunc(ctx, id)
	}
	panic("MockQuizService.GetResultFunc not implemented")
}
func (m *MockQuizService) GetRecentResults(ctx context.Context, sessionID string, limit int) ([]dto.QuizResultResponse, error) {
	if m.GetRecentResultsFunc != nil {
		return m.GetRecentResultsFunc(ctx, sessionID, limit)
	}
	panic("MockQuizService.GetRecentResultsFunc not implemented")
}

const validQuizID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"

func newQuizTestApp(svc *MockQuizService) *fiber.App {
	quizHandler := handler.NewQuizHandler(svc, validation.NewValidator(80))
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Post("/quizzes", quizHandler.CreateQuiz)
	app.Post("/quizzes/confirm", quizHandler.ConfirmQuiz)
	app.Get("/quizzes/:id", quizHandler.GetQuiz)
	app.Post("/quizzes/:id/results", quizHandler.SubmitQuiz)
	return app
}

func TestQuizHandler_CreateQuiz(t *testing.T) {
	validRequest := dto.CreateQuizRequest{
		QuestionCount:    5,
		SelectedChapters: []string{"Psoriasis"},
		SelectedYears:    []int{2023},
	}

	t.Run("Created", func(t *testing.T) {
		svc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
				assert.Equal(t, 5, req.QuestionCount)
				return &dto.QuizResponse{ID: validQuizID, QuestionCount: 5}, nil
			},
		}
		app := newQuizTestApp(svc)

		body, _ := json.Marshal(validRequest)
		req := httptest.NewRequest("POST", "/quizzes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("InsufficientPoolIs409WithCounts", func(t *testing.T) {
		svc := &MockQuizService{
			CreateQuizFunc: func(ctx context.Context, sessionID string, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
				return nil, domain.NewInsufficientPoolError(3, 5)
			},
		}
		app := newQuizTestApp(svc)

		body, _ := json.Marshal(validRequest)
		req := httptest.NewRequest("POST", "/quizzes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		var errResp middleware.ErrorResponse
		payload, _ := io.ReadAll(resp.Body)
		require.NoError(t, json.Unmarshal(payload, &errResp))
		assert.Equal(t, string(domain.ErrInsufficientPool), errResp.Code)
		assert.EqualValues(t, 3, errResp.Details["available"])
		assert.EqualValues(t, 5, errResp.Details["requested"])
	})

	t.Run("ValidationFailureIs400", func(t *testing.T) {
		app := newQuizTestApp(&MockQuizService{})

		body, _ := json.Marshal(dto.CreateQuizRequest{QuestionCount: 0})
		req := httptest.NewRequest("POST", "/quizzes", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuizHandler_SubmitQuiz(t *testing.T) {
	t.Run("PassesSessionFromLocals", func(t *testing.T) {
		var gotSessionID string
		svc := &MockQuizService{
			SubmitQuizFunc: func(ctx context.Context, sessionID, quizID string, req *dto.SubmitQuizRequest) (*dto.QuizResultResponse, error) {
				gotSessionID = sessionID
				return &dto.QuizResultResponse{ID: "res-1", QuizID: quizID, Score: 50}, nil
			},
		}
		quizHandler := handler.NewQuizHandler(svc, validation.NewValidator(80))
		app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
		app.Post("/quizzes/:id/results", func(c *fiber.Ctx) error {
			c.Locals(middleware.SessionIDKey, "sess-1")
			return quizHandler.SubmitQuiz(c)
		})

		body, _ := json.Marshal(dto.SubmitQuizRequest{Answers: map[string]string{"q1": "A"}})
		req := httptest.NewRequest("POST", "/quizzes/"+validQuizID+"/results", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "sess-1", gotSessionID)
	})

	t.Run("InvalidAnswerLetterIs400", func(t *testing.T) {
		app := newQuizTestApp(&MockQuizService{})

		body, _ := json.Marshal(dto.SubmitQuizRequest{Answers: map[string]string{"q1": "F"}})
		req := httptest.NewRequest("POST", "/quizzes/"+validQuizID+"/results", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestQuizHandler_GetQuiz(t *testing.T) {
	t.Run("NotFoundIs404", func(t *testing.T) {
		svc := &MockQuizService{
			GetQuizWithQuestionsFunc: func(ctx context.Context, id string) (*dto.QuizWithQuestionsResponse, error) {
				return nil, domain.NewQuizNotFoundError(id)
			},
		}
		app := newQuizTestApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/quizzes/"+validQuizID, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
