package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	report := NewReport("Monthly Financial Summary", "Cash position at a glance.")
	report.AddSection(Section{
		Title:   "Key Metrics",
		Content: "Runway is holding steady.",
		Table: &Table{
			Headers: []string{"Metric", "Value"},
			Rows: [][]interface{}{
				{"Cash Runway", "6.8 months"},
				{"Monthly Burn", "$65,000.00"},
			},
		},
	})
	report.AddSection(Section{
		Title: "Cashflow",
		Table: &Table{
			Headers: []string{"Month", "Total"},
			Rows: [][]interface{}{
				{"Jan", "$12,000.00"},
				{"Feb", "-$3,000.00"},
			},
		},
	})
	return report
}

func TestExcelExport(t *testing.T) {
	var buf bytes.Buffer
	err := NewExcelExporter().Export(sampleReport(), &buf)
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestPDFExport(t *testing.T) {
	var buf bytes.Buffer
	err := NewPDFExporter().Export(sampleReport(), &buf)
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
	assert.Equal(t, []byte("%PDF"), buf.Bytes()[:4])
}

func TestExportRejectsEmptyReport(t *testing.T) {
	empty := NewReport("Empty", "")

	var buf bytes.Buffer
	assert.Error(t, NewExcelExporter().Export(empty, &buf))
	assert.Error(t, NewPDFExporter().Export(empty, &buf))
}

func TestServiceExport(t *testing.T) {
	svc := NewService()

	data, contentType, err := svc.Export(sampleReport(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.NotEmpty(t, data)

	data, contentType, err = svc.Export(sampleReport(), FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.NotEmpty(t, data)

	_, _, err = svc.Export(sampleReport(), Format("docx"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"xlsx", FormatExcel, false},
		{"csv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "Sheet3", sanitizeSheetName("", 2))
	assert.Equal(t, "Cashflow", sanitizeSheetName("Cashflow", 0))

	long := "A very long section title that exceeds the sheet limit"
	assert.Len(t, []rune(sanitizeSheetName(long, 0)), 31)
}

func TestColumnNumberToName(t *testing.T) {
	assert.Equal(t, "A", columnNumberToName(1))
	assert.Equal(t, "Z", columnNumberToName(26))
	assert.Equal(t, "AA", columnNumberToName(27))
}
