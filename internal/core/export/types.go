package export

import (
	"io"
	"time"
)

// Format represents the export file format
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// Exporter is the interface for all export formats
type Exporter interface {
	Export(report *Report, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// Table holds tabular data for one report section.
type Table struct {
	Headers []string
	Rows    [][]interface{}
}

// Section is one titled block of a report: a paragraph, a table, or both.
type Section struct {
	Title   string
	Content string
	Table   *Table
}

// Report represents a multi-section financial document
type Report struct {
	Title       string
	Description string
	Author      string
	CreatedAt   time.Time
	Sections    []Section
	Style       Style
}

// Style defines styling options for exports
type Style struct {
	// PDF specific
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	// Common styling
	HeaderBold    bool
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	// Font settings
	FontFamily string
	FontSize   float64

	// Excel specific
	FreezeHeader bool
	AutoFilter   bool
	ColumnWidths map[int]float64 // Column index -> width
}

// DefaultStyle returns default export styling
func DefaultStyle() Style {
	return Style{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBold:    true,
		HeaderBgColor: "#1B4965",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontFamily:    "Arial",
		FontSize:      10,
		FreezeHeader:  true,
		AutoFilter:    false,
		ColumnWidths:  make(map[int]float64),
	}
}

// NewReport builds a report shell with default styling.
func NewReport(title, description string) *Report {
	return &Report{
		Title:       title,
		Description: description,
		Author:      "Pocket CFO",
		CreatedAt:   time.Now(),
		Style:       DefaultStyle(),
	}
}

// AddSection appends a section and returns the report for chaining.
func (r *Report) AddSection(section Section) *Report {
	r.Sections = append(r.Sections, section)
	return r
}
