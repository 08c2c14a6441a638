package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arohalabs/pocket-cfo-be/internal/core/export"
	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// DownloadReport godoc
// @Summary Download a financial report
// @Description Renders one of the standard documents (monthly-summary, investor-update, ar-aging, gst) as PDF or Excel
// @Tags Reports
// @Produce application/pdf
// @Param type path string true "Report type" Enums(monthly-summary, investor-update, ar-aging, gst)
// @Param format query string false "pdf or xlsx" default(pdf)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Router /reports/{type} [get]
func (h *ReportHandler) DownloadReport(c *fiber.Ctx) error {
	formatRaw := c.Query("format", "pdf")
	format, err := export.ParseFormat(formatRaw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	data, contentType, filename, err := h.reportService.Generate(c.Params("type"), format)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
