package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the dashboard overview
// @Description KPI cards, charts, insights, and obligations for an industry. Defaults to the onboarded industry.
// @Tags Dashboard
// @Produce json
// @Param industry query string false "Industry id (tourism, construction, retail, ...)"
// @Success 200 {object} map[string]interface{}
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	overview := h.dashboardService.Overview(c.Query("industry"))

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   overview,
	})
}
