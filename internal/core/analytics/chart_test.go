package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func TestCashflowChart(t *testing.T) {
	chart := CashflowChart(catalog.CashflowHistory)

	assert.Equal(t, "bar", chart.Type)
	require.Len(t, chart.Labels, 12)
	require.Len(t, chart.Data, 4)
	assert.Equal(t, "Operating", chart.Data[0].Name)
	assert.Equal(t, 45000.0, chart.Data[0].Values[0])
	assert.Equal(t, "Total", chart.Data[3].Name)
	assert.Equal(t, 536000.0, chart.Data[3].Values[2], "Mar 2024 includes the financing round")
}

func TestRunwayChartSplitsActualAndProjected(t *testing.T) {
	chart := RunwayChart(catalog.RunwayProjection)

	require.Len(t, chart.Data, 2)
	actual, projected := chart.Data[0], chart.Data[1]

	assert.Equal(t, 1850000.0, actual.Values[0], "Dec 2024 is an actual reading")
	assert.Nil(t, projected.Values[0])

	assert.Nil(t, actual.Values[1])
	assert.Equal(t, 1705000.0, projected.Values[1])

	last := len(chart.Labels) - 1
	assert.Equal(t, -35000.0, projected.Values[last], "projection runs through cash-out")
}

func TestCashProjectionChart(t *testing.T) {
	chart := CashProjectionChart(catalog.TourismCashProjection)

	require.Len(t, chart.Labels, 12)
	assert.Equal(t, 420000.0, chart.Data[0].Values[0])
	assert.Nil(t, chart.Data[0].Values[1], "only the first month has an actual")
	assert.Equal(t, 445000.0, chart.Data[1].Values[1])
}

func TestFXChart(t *testing.T) {
	chart := FXChart(catalog.FXRates)

	require.Len(t, chart.Data, 2)
	assert.Equal(t, "NZD/AUD", chart.Data[0].Name)
	assert.Equal(t, 0.94, chart.Data[0].Values[0])
	assert.Equal(t, "NZD/USD", chart.Data[1].Name)
}

func TestRevenuePie(t *testing.T) {
	pie := RevenuePie(catalog.TourismRevenueBreakdown)

	assert.Equal(t, "pie", pie.Type)
	require.Len(t, pie.Values, 4)
	assert.Equal(t, 45000.0, pie.Values[0])
	assert.Equal(t, 28000.0, pie.Values[1])
}

func TestExpensePie(t *testing.T) {
	pie := ExpensePie(catalog.TourismExpenseCategories)

	require.Len(t, pie.Values, 7)
	assert.Equal(t, "Payroll", pie.Labels[0])
	assert.Equal(t, 54500.0, pie.Values[0])
}

func TestKPICards(t *testing.T) {
	order := []string{"runway", "monthlyBurn", "cancellationRate", "missing"}
	config := map[string]StatCardConfig{
		"runway":           {Title: "Cash Runway", Format: "months"},
		"monthlyBurn":      {Title: "Monthly Burn", Format: "currency"},
		"cancellationRate": {Title: "Cancellation Rate", Format: "percentage"},
	}

	cards := KPICards(catalog.TourismKPIs, order, config)

	require.Len(t, cards, 3, "unknown keys are skipped")
	assert.Equal(t, "Cash Runway", cards[0].Title)
	assert.Equal(t, "6.8 months", cards[0].Value)
	assert.Equal(t, "down", cards[0].Trend)

	assert.Equal(t, "$65.0K", cards[1].Value)
	assert.Equal(t, []float64{58000, 61000, 59000, 63000, 67000, 65000}, cards[1].Sparkline)

	assert.Equal(t, "12.3%", cards[2].Value)
}

func TestFormatStatValue(t *testing.T) {
	tests := []struct {
		value  float64
		format string
		want   string
	}{
		{1850000, "currency", "$1.9M"},
		{65000, "currency", "$65.0K"},
		{790, "currency", "$790"},
		{15.3, "percentage", "15.3%"},
		{847, "number", "847"},
		{1520, "number", "1.5K"},
		{6.8, "months", "6.8 months"},
		{0.94, "", "0.94"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatStatValue(tt.value, tt.format))
	}
}
