package export

import (
	"bytes"
	"fmt"
	"io"
)

// Service provides high-level export functionality
type Service struct {
	pdfExporter   Exporter
	excelExporter Exporter
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		pdfExporter:   NewPDFExporter(),
		excelExporter: NewExcelExporter(),
	}
}

// Export renders the report in the requested format and returns the
// bytes together with the content type.
func (s *Service) Export(report *Report, format Format) ([]byte, string, error) {
	exporter, err := s.exporterFor(format)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := exporter.Export(report, &buf); err != nil {
		return nil, "", fmt.Errorf("export failed: %w", err)
	}

	return buf.Bytes(), exporter.GetContentType(), nil
}

// ExportToWriter renders the report directly to a writer
func (s *Service) ExportToWriter(report *Report, format Format, writer io.Writer) error {
	exporter, err := s.exporterFor(format)
	if err != nil {
		return err
	}
	return exporter.Export(report, writer)
}

// GetContentType returns the content type for the given format
func (s *Service) GetContentType(format Format) string {
	exporter, err := s.exporterFor(format)
	if err != nil {
		return "application/octet-stream"
	}
	return exporter.GetContentType()
}

// GetFileExtension returns the file extension for the given format
func (s *Service) GetFileExtension(format Format) string {
	exporter, err := s.exporterFor(format)
	if err != nil {
		return ".bin"
	}
	return exporter.GetFileExtension()
}

// ParseFormat validates a format string from a request
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatExcel:
		return FormatExcel, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", raw)
	}
}

func (s *Service) exporterFor(format Format) (Exporter, error) {
	switch format {
	case FormatPDF:
		return s.pdfExporter, nil
	case FormatExcel:
		return s.excelExporter, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
