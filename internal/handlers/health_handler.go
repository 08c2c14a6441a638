package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	storageDriver string
}

func NewHealthHandler(storageDriver string) *HealthHandler {
	return &HealthHandler{storageDriver: storageDriver}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "pocket-cfo-api",
		"storage": h.storageDriver,
	})
}
