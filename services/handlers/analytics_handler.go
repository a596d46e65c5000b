package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/shared"
)

type AnalyticsHandler struct {
	analyticsSvc AnalyticsServiceInterface
}

func NewAnalyticsHandler(analyticsSvc AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// @Summary Track usage
// @Tags analytics
// @Accept json
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Param request body dto.TrackUsageRequest true "Event"
// @Success 200 {object} model.UsageAnalytics
// @Failure 422 {object} dto.ValidationErrorResponse
// @Router /api/analytics [post]
func (h *AnalyticsHandler) TrackUsage(c *fiber.Ctx) error {
	var req dto.TrackUsageRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	event, err := h.analyticsSvc.TrackUsage(c.UserContext(), userID(c), req)
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, event)
}

// @Summary Usage summary
// @Description Per-feature totals and the last 7 days of activity
// @Tags analytics
// @Produce json
// @Param user_id query string false "User id" default(anonymous)
// @Success 200 {object} dto.UsageSummaryResponse
// @Router /api/analytics/summary [get]
func (h *AnalyticsHandler) GetUsageSummary(c *fiber.Ctx) error {
	return shared.ResponseOK(c, h.analyticsSvc.GetUsageSummary(c.UserContext(), userID(c)))
}
