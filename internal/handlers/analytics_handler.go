package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fieldforce/sales-agent-api/internal/core/analytics"
	"github.com/fieldforce/sales-agent-api/internal/core/chart"
	"github.com/fieldforce/sales-agent-api/internal/models"
)

type AnalyticsHandler struct {
	advanced *analytics.Agent
	renderer *chart.Renderer
}

func NewAnalyticsHandler(advanced *analytics.Agent, renderer *chart.Renderer) *AnalyticsHandler {
	return &AnalyticsHandler{
		advanced: advanced,
		renderer: renderer,
	}
}

// Advanced godoc
// @Summary Run an advanced analytics query
// @Description Returns the raw analytics result: narrative, charts and data rows
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Analytics query"
// @Success 200 {object} analytics.Result
// @Failure 400 {object} map[string]interface{}
// @Router /api/analytics/advanced [post]
func (h *AnalyticsHandler) Advanced(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(h.advanced.Process(req.Message))
}

// DashboardCharts godoc
// @Summary Render the sales dashboard charts
// @Description Returns four named charts as PNG data URIs; a failed chart maps to an empty string
// @Tags Analytics
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/dashboard/charts [get]
func (h *AnalyticsHandler) DashboardCharts(c *fiber.Ctx) error {
	return c.JSON(h.renderer.Dashboard())
}
