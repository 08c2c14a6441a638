package services

import (
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/export"
	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/core/reports"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

// Report types available for download.
const (
	ReportMonthlySummary = "monthly-summary"
	ReportInvestorUpdate = "investor-update"
	ReportARAging        = "ar-aging"
	ReportGST            = "gst"
)

// ReportService renders the downloadable financial documents.
type ReportService struct {
	container *state.Container
	builder   *reports.Builder
	exporter  *export.Service
}

func NewReportService(container *state.Container, builder *reports.Builder) *ReportService {
	return &ReportService{
		container: container,
		builder:   builder,
		exporter:  export.NewService(),
	}
}

// Generate builds a report and renders it in the requested format,
// returning the bytes, content type, and a download filename.
func (s *ReportService) Generate(reportType string, format export.Format) ([]byte, string, string, error) {
	report, err := s.build(reportType)
	if err != nil {
		return nil, "", "", err
	}

	data, contentType, err := s.exporter.Export(report, format)
	if err != nil {
		return nil, "", "", err
	}

	filename := reportType + s.exporter.GetFileExtension(format)
	return data, contentType, filename, nil
}

func (s *ReportService) build(reportType string) (*export.Report, error) {
	snap := s.container.Snapshot()
	dataset := s.datasetFor(snap.Profile)

	switch reportType {
	case ReportMonthlySummary:
		return s.builder.MonthlySummary(dataset.KPIs, dataset.Cashflow, dataset.Obligations), nil
	case ReportInvestorUpdate:
		return s.builder.InvestorUpdate(dataset.KPIs, snap.Scenarios), nil
	case ReportARAging:
		return s.builder.ARAgingReport(catalog.ARAging, catalog.CollectionsQueue), nil
	case ReportGST:
		return s.builder.GSTReport(catalog.GSTObligations), nil
	default:
		return nil, fmt.Errorf("unknown report type: %s", reportType)
	}
}

func (s *ReportService) datasetFor(profile industry.BusinessProfile) catalog.Dataset {
	template := "tourism"
	if cfg, ok := industry.Resolve(profile.Industry); ok {
		template = cfg.ID
	}
	return catalog.DatasetFor(template)
}
