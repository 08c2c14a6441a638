package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type ScenarioHandler struct {
	scenarioService *services.ScenarioService
}

func NewScenarioHandler(scenarioService *services.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
	}
}

// ListScenarios godoc
// @Summary List scenarios
// @Description All what-if scenarios plus the active selection
// @Tags Scenarios
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *fiber.Ctx) error {
	scenarios, activeID := h.scenarioService.List()

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"scenarios":        scenarios,
			"activeScenarioId": activeID,
		},
	})
}

// GetScenario godoc
// @Summary Get a scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *fiber.Ctx) error {
	scn, err := h.scenarioService.Get(c.Params("id"))
	if err != nil {
		return scenarioError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   scn,
	})
}

// CreateScenario godoc
// @Summary Create a blank scenario
// @Description Adds a "New Scenario" with neutral levers and makes it active
// @Tags Scenarios
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *fiber.Ctx) error {
	created, err := h.scenarioService.Create()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   created,
	})
}

// DuplicateScenario godoc
// @Summary Duplicate a scenario
// @Description Deep copy named "... (Copy)", never a baseline, activated on creation
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario id"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /scenarios/{id}/duplicate [post]
func (h *ScenarioHandler) DuplicateScenario(c *fiber.Ctx) error {
	created, err := h.scenarioService.Duplicate(c.Params("id"))
	if err != nil {
		return scenarioError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   created,
	})
}

// UpdateScenario godoc
// @Summary Update a scenario
// @Description Replaces name, description, parameters, and results. The baseline flag is immutable.
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario id"
// @Param scenario body catalog.Scenario true "Scenario fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *fiber.Ctx) error {
	var req catalog.Scenario
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.scenarioService.Update(c.Params("id"), req)
	if err != nil {
		return scenarioError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   updated,
	})
}

// DeleteScenario godoc
// @Summary Delete a scenario
// @Description A deleted active selection falls back to the first remaining scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *fiber.Ctx) error {
	if err := h.scenarioService.Delete(c.Params("id")); err != nil {
		return scenarioError(c, err)
	}

	scenarios, activeID := h.scenarioService.List()
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"scenarios":        scenarios,
			"activeScenarioId": activeID,
		},
	})
}

// ActivateScenario godoc
// @Summary Switch the active scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /scenarios/{id}/activate [patch]
func (h *ScenarioHandler) ActivateScenario(c *fiber.Ctx) error {
	if err := h.scenarioService.SetActive(c.Params("id")); err != nil {
		return scenarioError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"activeScenarioId": c.Params("id"),
		},
	})
}

func scenarioError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrScenarioNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
