package handler

import (
	"exam-prep/internal/middleware"
	"exam-prep/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles performance analytics API requests
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetAnalytics godoc
// @Summary Get performance analytics
// @Description Returns the caller's aggregated performance report: overview, trend, per-chapter breakdown and recent activity
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Router /api/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	report, err := h.analyticsService.GetAnalytics(c.Context(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(report)
}
