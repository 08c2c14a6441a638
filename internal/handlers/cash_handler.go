package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/metrics"
	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type CashHandler struct {
	collectionService *services.CollectionService
}

func NewCashHandler(collectionService *services.CollectionService) *CashHandler {
	return &CashHandler{
		collectionService: collectionService,
	}
}

// GetARAging godoc
// @Summary Accounts receivable aging
// @Description Aging buckets with the overdue total and the estimated collection opportunity
// @Tags Cash
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cash/ar-aging [get]
func (h *CashHandler) GetARAging(c *fiber.Ctx) error {
	total := metrics.TotalOverdue(catalog.ARAging)

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"buckets":               catalog.ARAging,
			"totalOverdue":          total,
			"collectionOpportunity": metrics.CollectionOpportunity(total),
		},
	})
}

// GetCollectionsQueue godoc
// @Summary Collections queue
// @Description Overdue customers with risk levels, suggested actions, and contact scripts
// @Tags Cash
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cash/collections [get]
func (h *CashHandler) GetCollectionsQueue(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.collectionService.Queue(),
	})
}

// ListCollectionTasks godoc
// @Summary List collection follow-up tasks
// @Tags Cash
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cash/collections/tasks [get]
func (h *CashHandler) ListCollectionTasks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.collectionService.Tasks(),
	})
}

// CreateCollectionTask godoc
// @Summary Create a follow-up task from a queue entry
// @Tags Cash
// @Accept json
// @Produce json
// @Param task body object true "Queue entry" example({"customerId": "1"})
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /cash/collections/tasks [post]
func (h *CashHandler) CreateCollectionTask(c *fiber.Ctx) error {
	var req struct {
		CustomerID string `json:"customerId"`
	}
	if err := c.BodyParser(&req); err != nil || req.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customerId is required",
		})
	}

	task, err := h.collectionService.CreateTask(req.CustomerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   task,
	})
}

// UpdateCollectionTask godoc
// @Summary Update a follow-up task
// @Description Sets the status and/or appends a note
// @Tags Cash
// @Accept json
// @Produce json
// @Param id path string true "Task id"
// @Param update body object true "Update" example({"status": "in_progress", "note": "Called, promised Friday"})
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /cash/collections/tasks/{id} [patch]
func (h *CashHandler) UpdateCollectionTask(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.collectionService.UpdateTask(c.Params("id"), req.Status, req.Note)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
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
		"data":   task,
	})
}
