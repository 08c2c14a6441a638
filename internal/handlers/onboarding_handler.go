package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type OnboardingHandler struct {
	onboardingService *services.OnboardingService
}

func NewOnboardingHandler(onboardingService *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingService: onboardingService,
	}
}

// GetProfile godoc
// @Summary Get the business profile
// @Tags Onboarding
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /profile [get]
func (h *OnboardingHandler) GetProfile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   h.onboardingService.Profile(),
	})
}

// SaveProfile godoc
// @Summary Save the business profile
// @Description Validates and stores the profile, marking setup complete. The business name is required; the industry, when given, must be known.
// @Tags Onboarding
// @Accept json
// @Produce json
// @Param profile body industry.BusinessProfile true "Business profile"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /profile [put]
func (h *OnboardingHandler) SaveProfile(c *fiber.Ctx) error {
	var req industry.BusinessProfile
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, err := h.onboardingService.SaveProfile(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   saved,
	})
}
