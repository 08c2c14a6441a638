package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type AlertHandler struct {
	alertService *services.AlertService
}

func NewAlertHandler(alertService *services.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// ListAlerts godoc
// @Summary List active alerts
// @Description Active alerts sorted by urgency, newest first within a tier. "critical" filters on urgency; any other value is a category match.
// @Tags Alerts
// @Produce json
// @Param filter query string false "all, critical, or a category name" default(all)
// @Param limit query int false "Truncate the feed after sorting"
// @Success 200 {object} map[string]interface{}
// @Router /alerts [get]
func (h *AlertHandler) ListAlerts(c *fiber.Ctx) error {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	feed := h.alertService.Feed(c.Query("filter"), limit)

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   feed,
	})
}

// GetAlertStats godoc
// @Summary Alert summary statistics
// @Description Counts, category breakdown, and total savings/risk across active alerts
// @Tags Alerts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /alerts/stats [get]
func (h *AlertHandler) GetAlertStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.alertService.Stats(),
	})
}

// DismissAlert godoc
// @Summary Dismiss an alert
// @Description Hides the alert from the feed. Dismissing twice is a no-op.
// @Tags Alerts
// @Produce json
// @Param id path string true "Alert id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /alerts/{id}/dismiss [patch]
func (h *AlertHandler) DismissAlert(c *fiber.Ctx) error {
	if err := h.alertService.Dismiss(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.alertService.Stats(),
	})
}
