package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter implements PDF export using gofpdf. Sections render
// sequentially: heading, narrative paragraph, then table.
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export writes the report to PDF format
func (p *PDFExporter) Export(report *Report, writer io.Writer) error {
	if len(report.Sections) == 0 {
		return fmt.Errorf("report has no sections")
	}

	style := report.Style

	orientation := "P"
	if style.Orientation == "landscape" {
		orientation = "L"
	}

	pageSize := style.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	pdf.AddPage()

	// gofpdf ships only the core fonts, so anything else falls back
	fontFamily := "Arial"
	pdf.SetFont(fontFamily, "", style.FontSize)

	if report.Title != "" {
		pdf.SetFont(fontFamily, "B", 16)
		pdf.Cell(0, 10, report.Title)
		pdf.Ln(12)
	}

	if report.Description != "" {
		pdf.SetFont(fontFamily, "", style.FontSize)
		pdf.MultiCell(0, 5, report.Description, "", "", false)
		pdf.Ln(4)
	}

	if !report.CreatedAt.IsZero() {
		pdf.SetFont(fontFamily, "I", 8)
		stamp := fmt.Sprintf("Generated: %s", report.CreatedAt.Format("2006-01-02 15:04:05"))
		if report.Author != "" {
			stamp += fmt.Sprintf(" | %s", report.Author)
		}
		pdf.Cell(0, 5, stamp)
		pdf.Ln(10)
	}

	for _, section := range report.Sections {
		if err := p.writeSection(pdf, fontFamily, style, &section); err != nil {
			return fmt.Errorf("failed to render section %q: %w", section.Title, err)
		}
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

func (p *PDFExporter) writeSection(pdf *gofpdf.Fpdf, fontFamily string, style Style, section *Section) error {
	if pdf.GetY() > 250 {
		pdf.AddPage()
	}

	if section.Title != "" {
		pdf.SetFont(fontFamily, "B", 12)
		pdf.Cell(0, 8, section.Title)
		pdf.Ln(9)
	}

	if section.Content != "" {
		pdf.SetFont(fontFamily, "", style.FontSize)
		pdf.MultiCell(0, 5, section.Content, "", "", false)
		pdf.Ln(3)
	}

	if section.Table == nil {
		pdf.Ln(4)
		return nil
	}

	pageWidth, _ := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	numCols := len(section.Table.Headers)
	if numCols == 0 {
		return fmt.Errorf("table has no headers")
	}
	colWidth := usableWidth / float64(numCols)

	drawHeader := func() {
		pdf.SetFont(fontFamily, "B", style.FontSize)
		if style.HeaderBgColor != "" {
			r, g, b := hexToRGB(style.HeaderBgColor)
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
		}
		for _, header := range section.Table.Headers {
			pdf.CellFormat(colWidth, 7, header, "1", 0, "C", style.HeaderBgColor != "", 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(fontFamily, "", style.FontSize)
	}

	drawHeader()

	for rowIdx, row := range section.Table.Rows {
		if style.AlternateRows {
			if rowIdx%2 == 0 {
				r, g, b := hexToRGB(style.RowBgColor1)
				pdf.SetFillColor(r, g, b)
			} else {
				r, g, b := hexToRGB(style.RowBgColor2)
				pdf.SetFillColor(r, g, b)
			}
		}

		for colIdx, value := range row {
			valueStr := fmt.Sprintf("%v", value)
			align := "L"
			if colIdx > 0 {
				align = "R"
			}
			pdf.CellFormat(colWidth, 6, valueStr, "1", 0, align, style.AlternateRows, 0, "")
		}
		pdf.Ln(-1)

		// Near the bottom of an A4 page
		if pdf.GetY() > 270 {
			pdf.AddPage()
			drawHeader()
		}
	}

	pdf.Ln(6)
	return nil
}

// GetContentType returns the MIME type for PDF files
func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// hexToRGB converts hex color to RGB values
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
