package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type WidgetHandler struct {
	widgetService *services.WidgetService
}

func NewWidgetHandler(widgetService *services.WidgetService) *WidgetHandler {
	return &WidgetHandler{
		widgetService: widgetService,
	}
}

// GetLayout godoc
// @Summary Get the widget layout for an industry
// @Description Returns the ordered dashboard layout, creating the industry default on first access
// @Tags Widgets
// @Produce json
// @Param industry path string true "Industry id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets/layout [get]
func (h *WidgetHandler) GetLayout(c *fiber.Ctx) error {
	layout, err := h.widgetService.Layout(c.Params("industry"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   layout,
	})
}

// GetPool godoc
// @Summary Get the widgets available to add
// @Description Catalog widgets not yet on the industry's dashboard
// @Tags Widgets
// @Produce json
// @Param industry path string true "Industry id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets/pool [get]
func (h *WidgetHandler) GetPool(c *fiber.Ctx) error {
	pool, err := h.widgetService.Pool(c.Params("industry"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   pool,
	})
}

// AddWidget godoc
// @Summary Add a widget to the layout
// @Description Appends a catalog widget to the end of the layout, enabled
// @Tags Widgets
// @Accept json
// @Produce json
// @Param industry path string true "Industry id"
// @Param widget body object true "Widget id" example({"widgetId": "fx-exposure"})
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets [post]
func (h *WidgetHandler) AddWidget(c *fiber.Ctx) error {
	var req struct {
		WidgetID string `json:"widgetId"`
	}
	if err := c.BodyParser(&req); err != nil || req.WidgetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "widgetId is required",
		})
	}

	layout, err := h.widgetService.Add(c.Params("industry"), req.WidgetID)
	if err != nil {
		return widgetError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   layout,
	})
}

// RemoveWidget godoc
// @Summary Remove a widget from the layout
// @Description Deletes the widget and renumbers the remaining positions
// @Tags Widgets
// @Produce json
// @Param industry path string true "Industry id"
// @Param id path string true "Widget id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets/{id} [delete]
func (h *WidgetHandler) RemoveWidget(c *fiber.Ctx) error {
	layout, err := h.widgetService.Remove(c.Params("industry"), c.Params("id"))
	if err != nil {
		return widgetError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   layout,
	})
}

// ToggleWidget godoc
// @Summary Toggle a widget's visibility
// @Description Flips the enabled flag without changing the widget's position
// @Tags Widgets
// @Produce json
// @Param industry path string true "Industry id"
// @Param id path string true "Widget id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets/{id}/toggle [patch]
func (h *WidgetHandler) ToggleWidget(c *fiber.Ctx) error {
	layout, err := h.widgetService.Toggle(c.Params("industry"), c.Params("id"))
	if err != nil {
		return widgetError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   layout,
	})
}

// MoveWidget godoc
// @Summary Move a widget up or down
// @Description Swaps the widget with its neighbour. Boundary moves are no-ops.
// @Tags Widgets
// @Accept json
// @Produce json
// @Param industry path string true "Industry id"
// @Param id path string true "Widget id"
// @Param direction body object true "Move direction" example({"direction": "up"})
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets/{id}/move [patch]
func (h *WidgetHandler) MoveWidget(c *fiber.Ctx) error {
	var req struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	layout, err := h.widgetService.Move(c.Params("industry"), c.Params("id"), req.Direction)
	if err != nil {
		if errors.Is(err, services.ErrWidgetNotFound) {
			return widgetError(c, err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   layout,
	})
}

// ResetLayout godoc
// @Summary Reset the layout to the industry default
// @Tags Widgets
// @Produce json
// @Param industry path string true "Industry id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /industries/{industry}/widgets/reset [post]
func (h *WidgetHandler) ResetLayout(c *fiber.Ctx) error {
	layout, err := h.widgetService.Reset(c.Params("industry"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   layout,
	})
}

func widgetError(c *fiber.Ctx, err error) error {
	status := fiber.StatusNotFound
	if errors.Is(err, services.ErrWidgetAlreadyAdded) {
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
