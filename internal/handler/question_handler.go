package handler

import (
	"strconv"
	"strings"

	"exam-prep/internal/domain"
	"exam-prep/internal/dto"
	"exam-prep/internal/service"
	"exam-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question bank API requests
type QuestionHandler struct {
	questionService service.QuestionService
	validator       *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionService service.QuestionService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		validator:       validator,
	}
}

// ListQuestions godoc
// @Summary List questions
// @Description Lists questions, optionally filtered by chapters and years
// @Tags questions
// @Produce json
// @Param chapters query string false "Comma-separated chapter names"
// @Param years query string false "Comma-separated years"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	chapters := splitParam(c.Query("chapters"))
	years, err := parseYears(c.Query("years"))
	if err != nil {
		return err
	}

	questions, err := h.questionService.ListQuestions(c.Context(), chapters, years)
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// GetStats godoc
// @Summary Get question bank statistics
// @Description Returns the total question count and the distinct chapters and years
// @Tags questions
// @Produce json
// @Success 200 {object} dto.QuestionStatsResponse
// @Router /api/questions/stats [get]
func (h *QuestionHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.questionService.GetStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// ListParts godoc
// @Summary List book parts
// @Description Returns chapters grouped by book section
// @Tags questions
// @Produce json
// @Success 200 {array} dto.PartResponse
// @Router /api/parts [get]
func (h *QuestionHandler) ListParts(c *fiber.Ctx) error {
	parts, err := h.questionService.ListParts(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(parts)
}

// ImportQuestions godoc
// @Summary Import questions
// @Description Bulk-imports structured question records, skipping invalid ones
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.ImportQuestionsRequest true "Question records"
// @Success 201 {object} dto.ImportQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/questions/import [post]
func (h *QuestionHandler) ImportQuestions(c *fiber.Ctx) error {
	var req dto.ImportQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateImportRequest(&req); errs != nil {
		return errs
	}

	resp, err := h.questionService.ImportQuestions(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseYears(raw string) ([]int, error) {
	values := splitParam(raw)
	if len(values) == 0 {
		return nil, nil
	}
	years := make([]int, 0, len(values))
	for _, v := range values {
		year, err := strconv.Atoi(v)
		if err != nil {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError("years", v)}
		}
		years = append(years, year)
	}
	return years, nil
}
