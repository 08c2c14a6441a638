package reports

import (
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/export"
	"github.com/arohalabs/pocket-cfo-be/internal/core/metrics"
)

// Builder assembles the standard financial documents from the current
// book of data. Currency formatting follows the configured locale.
type Builder struct {
	locale string
}

func NewBuilder(locale string) *Builder {
	return &Builder{locale: locale}
}

// kpiLine pairs a KPI key with how its value reads in a report.
type kpiLine struct {
	key    string
	label  string
	format string
}

var summaryKPIs = []kpiLine{
	{"runway", "Cash Runway", "months"},
	{"monthlyBurn", "Monthly Burn", "currency"},
	{"cashOnHand", "Cash on Hand", "currency"},
	{"mrr", "Monthly Recurring Revenue", "currency"},
	{"bookingRevenue", "Booking Revenue", "currency"},
	{"revenueGrowth", "Revenue Growth", "percentage"},
	{"cancellationRate", "Cancellation Rate", "percentage"},
}

// MonthlySummary covers KPIs, the cashflow ledger, and obligations.
func (b *Builder) MonthlySummary(kpis map[string]catalog.KPI, cashflow []catalog.CashflowMonth, obligations []catalog.Obligation) *export.Report {
	report := export.NewReport("Monthly Financial Summary", "Cash position, burn, and upcoming obligations at a glance.")

	report.AddSection(export.Section{
		Title: "Key Metrics",
		Table: b.kpiTable(kpis),
	})

	cashRows := make([][]interface{}, 0, len(cashflow))
	for _, m := range cashflow {
		cashRows = append(cashRows, []interface{}{
			m.Month,
			b.money(m.Operating),
			b.money(m.Investing),
			b.money(m.Financing),
			b.money(m.Total),
		})
	}
	report.AddSection(export.Section{
		Title: "Cashflow",
		Table: &export.Table{
			Headers: []string{"Month", "Operating", "Investing", "Financing", "Total"},
			Rows:    cashRows,
		},
	})

	obligationRows := make([][]interface{}, 0, len(obligations))
	for _, o := range obligations {
		obligationRows = append(obligationRows, []interface{}{
			o.Description,
			o.Type,
			b.money(o.Amount),
			o.DueDate,
			o.Status,
		})
	}
	report.AddSection(export.Section{
		Title: "Upcoming Obligations",
		Table: &export.Table{
			Headers: []string{"Obligation", "Type", "Amount", "Due", "Status"},
			Rows:    obligationRows,
		},
	})

	return report
}

// InvestorUpdate narrates runway and growth for an external audience.
func (b *Builder) InvestorUpdate(kpis map[string]catalog.KPI, scenarios []catalog.Scenario) *export.Report {
	report := export.NewReport("Investor Update", "Runway, burn, and the scenarios under consideration.")

	runway := kpis["runway"]
	burn := kpis["monthlyBurn"]
	report.AddSection(export.Section{
		Title: "Headline",
		Content: fmt.Sprintf("Current runway stands at %.1f months against a monthly burn of %s.",
			runway.Value, b.money(burn.Value)),
		Table: b.kpiTable(kpis),
	})

	scenarioRows := make([][]interface{}, 0, len(scenarios))
	for _, s := range scenarios {
		label := s.Name
		if s.IsBaseline {
			label += " (baseline)"
		}
		scenarioRows = append(scenarioRows, []interface{}{
			label,
			fmt.Sprintf("%+.1f months", s.Results.RunwayChange),
			breakEvenLabel(s.Results.BreakEvenMonth),
			b.money(s.Results.CashflowImpact),
		})
	}
	report.AddSection(export.Section{
		Title: "Scenarios",
		Table: &export.Table{
			Headers: []string{"Scenario", "Runway Change", "Break Even", "Cashflow Impact"},
			Rows:    scenarioRows,
		},
	})

	return report
}

// ARAgingReport breaks receivables into buckets and lists the
// collections queue with the recovery estimate.
func (b *Builder) ARAgingReport(buckets []catalog.ARAgingBucket, queue []catalog.CollectionItem) *export.Report {
	total := metrics.TotalOverdue(buckets)
	opportunity := metrics.CollectionOpportunity(total)

	report := export.NewReport("Accounts Receivable Aging",
		fmt.Sprintf("Total overdue %s with an estimated %s recoverable.", b.money(total), b.money(opportunity)))

	bucketRows := make([][]interface{}, 0, len(buckets))
	for _, bucket := range buckets {
		bucketRows = append(bucketRows, []interface{}{
			bucket.Bucket,
			b.money(bucket.Amount),
			bucket.Count,
			metrics.FormatPercent(bucket.Percentage, b.locale),
		})
	}
	report.AddSection(export.Section{
		Title: "Aging Buckets",
		Table: &export.Table{
			Headers: []string{"Bucket", "Amount", "Invoices", "Share"},
			Rows:    bucketRows,
		},
	})

	queueRows := make([][]interface{}, 0, len(queue))
	for _, item := range queue {
		queueRows = append(queueRows, []interface{}{
			item.CustomerName,
			b.money(item.Amount),
			item.DaysOverdue,
			string(item.RiskLevel),
			item.SuggestedAction,
		})
	}
	report.AddSection(export.Section{
		Title: "Collections Queue",
		Table: &export.Table{
			Headers: []string{"Customer", "Amount", "Days Overdue", "Risk", "Suggested Action"},
			Rows:    queueRows,
		},
	})

	return report
}

// GSTReport summarizes the filing position period by period.
func (b *Builder) GSTReport(obligations []catalog.GSTObligation) *export.Report {
	report := export.NewReport("GST Position", "Filing obligations and the current period breakdown.")

	rows := make([][]interface{}, 0, len(obligations))
	for _, o := range obligations {
		breakdown := metrics.BreakdownGST(o)
		rows = append(rows, []interface{}{
			o.Period,
			b.money(breakdown.GSTOnSales),
			b.money(breakdown.InputTaxCredits),
			b.money(breakdown.NetPayable),
			o.DueDate,
			o.Status,
		})
	}
	report.AddSection(export.Section{
		Title: "Filing Periods",
		Table: &export.Table{
			Headers: []string{"Period", "GST on Sales", "Input Tax Credits", "Net Payable", "Due", "Status"},
			Rows:    rows,
		},
	})

	return report
}

func (b *Builder) kpiTable(kpis map[string]catalog.KPI) *export.Table {
	rows := make([][]interface{}, 0, len(summaryKPIs))
	for _, line := range summaryKPIs {
		kpi, ok := kpis[line.key]
		if !ok {
			continue
		}
		rows = append(rows, []interface{}{
			line.label,
			b.kpiValue(kpi.Value, line.format),
			metrics.FormatPercent(kpi.Change, b.locale),
			string(kpi.Trend),
		})
	}
	return &export.Table{
		Headers: []string{"Metric", "Value", "Change", "Trend"},
		Rows:    rows,
	}
}

func (b *Builder) kpiValue(value float64, format string) string {
	switch format {
	case "currency":
		return b.money(value)
	case "percentage":
		return metrics.FormatPercent(value, b.locale)
	case "months":
		return fmt.Sprintf("%.1f months", value)
	default:
		return fmt.Sprintf("%.0f", value)
	}
}

func breakEvenLabel(month int) string {
	if month <= 0 {
		return "not reached"
	}
	return fmt.Sprintf("month %d", month)
}

func (b *Builder) money(v float64) string {
	return metrics.FormatCurrency(v, b.locale)
}
