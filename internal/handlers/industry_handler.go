package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
)

type IndustryHandler struct{}

func NewIndustryHandler() *IndustryHandler {
	return &IndustryHandler{}
}

// ListIndustries godoc
// @Summary List selectable industries
// @Tags Industries
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /industries [get]
func (h *IndustryHandler) ListIndustries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   industry.Available(),
	})
}

// GetIndustryConfig godoc
// @Summary Get an industry's dashboard configuration
// @Description Industries without native data resolve through their template to a complete config
// @Tags Industries
// @Produce json
// @Param id path string true "Industry id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{id} [get]
func (h *IndustryHandler) GetIndustryConfig(c *fiber.Ctx) error {
	cfg, ok := industry.Resolve(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown industry",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   cfg,
	})
}

// GetWidgetCatalog godoc
// @Summary Get the widget catalog for an industry
// @Description Universal widgets plus the industry-specific ones
// @Tags Industries
// @Produce json
// @Param id path string true "Industry id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{id}/widgets/catalog [get]
func (h *IndustryHandler) GetWidgetCatalog(c *fiber.Ctx) error {
	widgets, err := industry.WidgetCatalog(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   widgets,
	})
}
