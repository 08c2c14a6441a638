package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/core/export"
	"github.com/arohalabs/pocket-cfo-be/internal/core/reports"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

func newReportService() *ReportService {
	container := state.NewContainer(state.DefaultSnapshot(), nil)
	return NewReportService(container, reports.NewBuilder("en-NZ"))
}

func TestReportServiceGeneratePDF(t *testing.T) {
	svc := newReportService()

	data, contentType, filename, err := svc.Generate(ReportMonthlySummary, export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "monthly-summary.pdf", filename)
	assert.Equal(t, []byte("%PDF"), data[:4])
}

func TestReportServiceGenerateExcel(t *testing.T) {
	svc := newReportService()

	for _, reportType := range []string{ReportInvestorUpdate, ReportARAging, ReportGST} {
		data, contentType, filename, err := svc.Generate(reportType, export.FormatExcel)
		require.NoError(t, err, reportType)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
		assert.Equal(t, reportType+".xlsx", filename)
		assert.NotEmpty(t, data)
	}
}

func TestReportServiceUnknownType(t *testing.T) {
	svc := newReportService()

	_, _, _, err := svc.Generate("quarterly-board-pack", export.FormatPDF)
	assert.Error(t, err)
}
