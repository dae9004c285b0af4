package handler

import (
	"strconv"

	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/middleware"
	"exam-prep/internal/service"
	"exam-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz assembly, retrieval and grading API requests
type QuizHandler struct {
	quizService service.QuizService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validator:   validator,
	}
}

// CreateQuiz godoc
// @Summary Assemble a quiz
// @Description Samples questions matching the filters. Responds 409 with the available count when the pool is smaller than requested.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz setup filters"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	req, err := h.parseCreateRequest(c)
	if err != nil {
		return err
	}

	quiz, err := h.quizService.CreateQuiz(c.Context(), middleware.SessionID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// ConfirmQuiz godoc
// @Summary Confirm a reduced quiz
// @Description Assembles a quiz from a short pool, accepting fewer questions than requested
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz setup filters"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quizzes/confirm [post]
func (h *QuizHandler) ConfirmQuiz(c *fiber.Ctx) error {
	req, err := h.parseCreateRequest(c)
	if err != nil {
		return err
	}

	quiz, err := h.quizService.ConfirmQuiz(c.Context(), middleware.SessionID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// GetQuiz godoc
// @Summary Get a quiz with its questions
// @Description Returns a quiz and its questions in presentation order
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizWithQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.quizService.GetQuizWithQuestions(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SubmitQuiz godoc
// @Summary Submit answers for grading
// @Description Grades the submission against the quiz's questions and records the result
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.SubmitQuizRequest true "Submitted answers"
// @Success 201 {object} dto.QuizResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quizzes/{id}/results [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	quizID := c.Params("id")

	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateSubmitQuizRequest(quizID, &req); errs != nil {
		return errs
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), middleware.SessionID(c), quizID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetResult godoc
// @Summary Get a graded result
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/results/{id} [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	result, err := h.quizService.GetResult(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ListResults godoc
// @Summary List recent results
// @Description Lists the caller's latest graded results, newest first
// @Tags results
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} dto.QuizResultResponse
// @Router /api/results [get]
func (h *QuizHandler) ListResults(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
		}
		limit = parsed
	}

	results, err := h.quizService.GetRecentResults(c.Context(), middleware.SessionID(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

func (h *QuizHandler) parseCreateRequest(c *fiber.Ctx) (*dto.CreateQuizRequest, error) {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuizRequest(&req); errs != nil {
		return nil, errs
	}
	return &req, nil
}
