package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize. Each report
// section becomes its own worksheet.
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export writes the report to Excel format, one sheet per section.
func (e *ExcelExporter) Export(report *Report, writer io.Writer) error {
	if len(report.Sections) == 0 {
		return fmt.Errorf("report has no sections")
	}

	f := excelize.NewFile()
	defer f.Close()

	for idx, section := range report.Sections {
		sheetName := sanitizeSheetName(section.Title, idx)
		if idx == 0 {
			f.SetSheetName("Sheet1", sheetName)
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return fmt.Errorf("failed to create sheet %q: %w", sheetName, err)
			}
		}

		if err := e.writeSection(f, sheetName, report, &section); err != nil {
			return fmt.Errorf("failed to write section %q: %w", section.Title, err)
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

func (e *ExcelExporter) writeSection(f *excelize.File, sheet string, report *Report, section *Section) error {
	style := report.Style
	rowIndex := 1

	if section.Title != "" {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIndex), section.Title)
		titleStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold:   true,
				Size:   14,
				Family: style.FontFamily,
			},
		})
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("A%d", rowIndex), titleStyle)
		rowIndex++
	}

	if section.Content != "" {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowIndex), section.Content)
		rowIndex++
	}
	rowIndex++ // blank row before the table

	if section.Table == nil {
		return nil
	}

	headerStyle, err := e.createHeaderStyle(f, style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := rowIndex
	for colIndex, header := range section.Table.Headers {
		cell := columnNumberToName(colIndex+1) + strconv.Itoa(rowIndex)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)

		if width, ok := style.ColumnWidths[colIndex]; ok {
			colName := columnNumberToName(colIndex + 1)
			f.SetColWidth(sheet, colName, colName, width)
		}
	}
	rowIndex++

	var oddRowStyle, evenRowStyle int
	if style.AlternateRows {
		oddRowStyle, _ = e.createRowStyle(f, style, style.RowBgColor1)
		evenRowStyle, _ = e.createRowStyle(f, style, style.RowBgColor2)
	} else {
		oddRowStyle, _ = e.createRowStyle(f, style, style.RowBgColor1)
		evenRowStyle = oddRowStyle
	}

	for rowIdx, row := range section.Table.Rows {
		for colIndex, value := range row {
			cell := columnNumberToName(colIndex+1) + strconv.Itoa(rowIndex)
			f.SetCellValue(sheet, cell, value)

			if rowIdx%2 == 0 {
				f.SetCellStyle(sheet, cell, cell, oddRowStyle)
			} else {
				f.SetCellStyle(sheet, cell, cell, evenRowStyle)
			}
		}
		rowIndex++
	}

	if style.FreezeHeader {
		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			XSplit:      0,
			YSplit:      headerRow,
			TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if style.AutoFilter && len(section.Table.Headers) > 0 {
		lastCol := columnNumberToName(len(section.Table.Headers))
		lastRow := headerRow + len(section.Table.Rows)
		f.AutoFilter(sheet, fmt.Sprintf("A%d:%s%d", headerRow, lastCol, lastRow), nil)
	}

	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

// createHeaderStyle creates the header style
func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style Style) (int, error) {
	headerStyle := &excelize.Style{
		Font: &excelize.Font{
			Bold:   style.HeaderBold,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	}

	return f.NewStyle(headerStyle)
}

// createRowStyle creates a row style with background color
func (e *ExcelExporter) createRowStyle(f *excelize.File, style Style, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{
			Size:   style.FontSize,
			Family: style.FontFamily,
		},
	}

	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}

	return f.NewStyle(rowStyle)
}

// sanitizeSheetName keeps sheet names within Excel's 31 character limit
// and never empty.
func sanitizeSheetName(title string, idx int) string {
	if title == "" {
		return fmt.Sprintf("Sheet%d", idx+1)
	}
	runes := []rune(title)
	if len(runes) > 31 {
		return string(runes[:31])
	}
	return title
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

// stripHashFromColor removes # from hex color codes
func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
