package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/metrics"
)

type TaxHandler struct{}

func NewTaxHandler() *TaxHandler {
	return &TaxHandler{}
}

// GetGSTPosition godoc
// @Summary GST filing position
// @Description Per-period GST breakdowns plus the current (unpaid) obligation. Zero-rated exports are reported but excluded from GST on sales.
// @Tags Tax
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tax/gst [get]
func (h *TaxHandler) GetGSTPosition(c *fiber.Ctx) error {
	breakdowns := make([]metrics.GSTBreakdown, 0, len(catalog.GSTObligations))
	for _, o := range catalog.GSTObligations {
		breakdowns = append(breakdowns, metrics.BreakdownGST(o))
	}

	data := fiber.Map{
		"obligations": catalog.GSTObligations,
		"breakdowns":  breakdowns,
	}
	if current, ok := metrics.CurrentGSTObligation(catalog.GSTObligations); ok {
		data["current"] = metrics.BreakdownGST(current)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// GetPayrollObligations godoc
// @Summary Payroll obligations
// @Description Upcoming payroll, KiwiSaver, ACC, and PAYE obligations
// @Tags Tax
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tax/payroll [get]
func (h *TaxHandler) GetPayrollObligations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   catalog.PayrollObligations,
	})
}
