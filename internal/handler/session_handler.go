package handler

import (
	"exam-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles anonymous session issuance
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSession godoc
// @Summary Create an anonymous session
// @Description Issues a session token that scopes quizzes and results to the caller
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /api/session [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	session, err := h.sessionService.IssueSession()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}
