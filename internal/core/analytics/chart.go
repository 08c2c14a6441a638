// Package analytics converts catalog datasets into presentation-ready
// chart payloads and stat cards for the dashboard.
package analytics

import (
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

// CashflowChart builds the stacked monthly cashflow bar chart.
func CashflowChart(history []catalog.CashflowMonth) ChartData {
	labels := make([]string, len(history))
	operating := make([]interface{}, len(history))
	investing := make([]interface{}, len(history))
	financing := make([]interface{}, len(history))
	total := make([]interface{}, len(history))

	for i, m := range history {
		labels[i] = m.Month
		operating[i] = m.Operating
		investing[i] = m.Investing
		financing[i] = m.Financing
		total[i] = m.Total
	}

	return ChartData{
		Type:   "bar",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "Operating", Values: operating},
			{Name: "Investing", Values: investing},
			{Name: "Financing", Values: financing},
			{Name: "Total", Values: total},
		},
	}
}

// RunwayChart builds the cash balance line chart, splitting actual and
// projected months into separate series so clients can style them apart.
func RunwayChart(projection []catalog.RunwayPoint) ChartData {
	labels := make([]string, len(projection))
	actual := make([]interface{}, len(projection))
	projected := make([]interface{}, len(projection))

	for i, p := range projection {
		labels[i] = p.Month
		if p.Projected {
			projected[i] = p.CashBalance
		} else {
			actual[i] = p.CashBalance
		}
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "Actual", Values: actual},
			{Name: "Projected", Values: projected},
		},
	}
}

// CashProjectionChart builds the forward cash projection line chart.
func CashProjectionChart(points []catalog.CashProjectionPoint) ChartData {
	labels := make([]string, len(points))
	actual := make([]interface{}, len(points))
	projected := make([]interface{}, len(points))

	for i, p := range points {
		labels[i] = p.Month
		if p.Actual != nil {
			actual[i] = *p.Actual
		}
		projected[i] = p.Projected
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "Actual", Values: actual},
			{Name: "Projected", Values: projected},
		},
	}
}

// SeasonalityChart builds the seasonal revenue curve with bookings.
func SeasonalityChart(seasonality []catalog.SeasonalityMonth) ChartData {
	labels := make([]string, len(seasonality))
	revenue := make([]interface{}, len(seasonality))
	bookings := make([]interface{}, len(seasonality))

	for i, m := range seasonality {
		labels[i] = m.Month
		revenue[i] = m.Revenue
		bookings[i] = float64(m.Bookings)
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "Revenue", Values: revenue},
			{Name: "Bookings", Values: bookings},
		},
	}
}

// FXChart builds the multi-line FX rate chart from the NZD perspective.
func FXChart(rates []catalog.FXRate) ChartData {
	labels := make([]string, len(rates))
	aud := make([]interface{}, len(rates))
	usd := make([]interface{}, len(rates))

	for i, r := range rates {
		labels[i] = r.Date
		aud[i] = r.NZDAUDRate
		usd[i] = r.NZDUSDRate
	}

	return ChartData{
		Type:   "line",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "NZD/AUD", Values: aud},
			{Name: "NZD/USD", Values: usd},
		},
	}
}

// RevenuePie breaks monthly revenue down by source.
func RevenuePie(b catalog.RevenueBreakdown) PieChartData {
	return PieChartData{
		Type:   "pie",
		Labels: []string{"Subscription MRR", "Booking Fees", "AU Revenue", "One-off Services"},
		Values: []float64{b.SubscriptionMRR, b.BookingFees, b.AUDRevenue, b.OneOffServices},
	}
}

// ExpensePie breaks monthly operating spend down by category.
func ExpensePie(e catalog.ExpenseCategories) PieChartData {
	return PieChartData{
		Type:   "pie",
		Labels: []string{"Payroll", "Marketing", "Infrastructure", "Office", "Insurance", "Legal", "Other"},
		Values: []float64{e.Payroll, e.Marketing, e.Infrastructure, e.Office, e.Insurance, e.Legal, e.Other},
	}
}

// ProjectHistoryChart builds the completed-projects revenue and margin
// trend for construction dashboards.
func ProjectHistoryChart(history []catalog.ProjectHistoryMonth) ChartData {
	labels := make([]string, len(history))
	revenue := make([]interface{}, len(history))
	margin := make([]interface{}, len(history))

	for i, m := range history {
		labels[i] = m.Month
		revenue[i] = m.Revenue
		margin[i] = m.Margin
	}

	return ChartData{
		Type:   "bar",
		Labels: labels,
		Data: []ChartSeries{
			{Name: "Revenue", Values: revenue},
			{Name: "Margin %", Values: margin},
		},
	}
}

// KPICards renders KPIs as stat cards in the given order. Unknown keys
// are skipped rather than rendered empty.
func KPICards(kpis map[string]catalog.KPI, order []string, config map[string]StatCardConfig) []StatCard {
	cards := make([]StatCard, 0, len(order))
	for _, key := range order {
		kpi, ok := kpis[key]
		if !ok {
			continue
		}
		cfg := config[key]
		title := cfg.Title
		if title == "" {
			title = key
		}
		cards = append(cards, StatCard{
			Title:       title,
			Value:       formatStatValue(kpi.Value, cfg.Format),
			Change:      kpi.Change,
			ChangeLabel: kpi.Period,
			Trend:       trendLabel(kpi.Trend),
			Sparkline:   kpi.Sparkline,
			Icon:        cfg.Icon,
		})
	}
	return cards
}

func trendLabel(t catalog.Trend) string {
	switch t {
	case catalog.TrendUp:
		return "up"
	case catalog.TrendDown:
		return "down"
	default:
		return "neutral"
	}
}

func formatStatValue(num float64, format string) string {
	switch format {
	case "currency":
		if num >= 1000000 {
			return fmt.Sprintf("$%.1fM", num/1000000)
		} else if num >= 1000 {
			return fmt.Sprintf("$%.1fK", num/1000)
		}
		return fmt.Sprintf("$%.0f", num)
	case "percentage":
		return fmt.Sprintf("%.1f%%", num)
	case "months":
		return fmt.Sprintf("%.1f months", num)
	case "number":
		if num >= 1000000 {
			return fmt.Sprintf("%.1fM", num/1000000)
		} else if num >= 1000 {
			return fmt.Sprintf("%.1fK", num/1000)
		}
		return fmt.Sprintf("%.0f", num)
	default:
		return fmt.Sprintf("%.2f", num)
	}
}
