package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func TestMonthlySummarySections(t *testing.T) {
	b := NewBuilder("en-NZ")

	report := b.MonthlySummary(catalog.TourismKPIs, catalog.TourismCashflowHistory, catalog.UpcomingObligations)

	require.Len(t, report.Sections, 3)
	assert.Equal(t, "Key Metrics", report.Sections[0].Title)
	assert.Equal(t, "Cashflow", report.Sections[1].Title)
	assert.Equal(t, "Upcoming Obligations", report.Sections[2].Title)

	kpiTable := report.Sections[0].Table
	require.NotNil(t, kpiTable)
	assert.NotEmpty(t, kpiTable.Rows)
	assert.Equal(t, "Cash Runway", kpiTable.Rows[0][0])
	assert.Equal(t, "6.8 months", kpiTable.Rows[0][1])

	cashTable := report.Sections[1].Table
	require.NotNil(t, cashTable)
	assert.Len(t, cashTable.Rows, len(catalog.TourismCashflowHistory))
}

func TestMonthlySummarySkipsMissingKPIs(t *testing.T) {
	b := NewBuilder("en-NZ")

	kpis := map[string]catalog.KPI{
		"runway": {Value: 12.5, Trend: catalog.TrendDown},
	}
	report := b.MonthlySummary(kpis, nil, nil)

	kpiTable := report.Sections[0].Table
	require.Len(t, kpiTable.Rows, 1)
	assert.Equal(t, "Cash Runway", kpiTable.Rows[0][0])
}

func TestInvestorUpdate(t *testing.T) {
	b := NewBuilder("en-NZ")

	report := b.InvestorUpdate(catalog.CurrentKPIs, catalog.SeedScenarios())

	require.Len(t, report.Sections, 2)
	assert.Contains(t, report.Sections[0].Content, "12.5 months")

	scenarioTable := report.Sections[1].Table
	require.NotNil(t, scenarioTable)
	require.Len(t, scenarioTable.Rows, 3)
	assert.Equal(t, "Base Case (baseline)", scenarioTable.Rows[0][0])
}

func TestARAgingReport(t *testing.T) {
	b := NewBuilder("en-NZ")

	report := b.ARAgingReport(catalog.ARAging, catalog.CollectionsQueue)

	require.Len(t, report.Sections, 2)
	assert.Contains(t, report.Description, "122,000")
	assert.Contains(t, report.Description, "85,400")

	bucketTable := report.Sections[0].Table
	require.NotNil(t, bucketTable)
	assert.Len(t, bucketTable.Rows, 4)

	queueTable := report.Sections[1].Table
	require.NotNil(t, queueTable)
	assert.Len(t, queueTable.Rows, len(catalog.CollectionsQueue))
}

func TestGSTReport(t *testing.T) {
	b := NewBuilder("en-NZ")

	report := b.GSTReport(catalog.GSTObligations)

	require.Len(t, report.Sections, 1)
	table := report.Sections[0].Table
	require.NotNil(t, table)
	require.Len(t, table.Rows, len(catalog.GSTObligations))

	// current period nets out to 10,660 payable
	assert.Contains(t, table.Rows[0][3], "10,660")
}

func TestBreakEvenLabel(t *testing.T) {
	assert.Equal(t, "not reached", breakEvenLabel(0))
	assert.Equal(t, "month 18", breakEvenLabel(18))
}
