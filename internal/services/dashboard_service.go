package services

import (
	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/analytics"
	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

// DashboardOverview is the complete payload behind the main dashboard.
type DashboardOverview struct {
	Industry    string                 `json:"industry"`
	KPICards    []analytics.StatCard   `json:"kpiCards"`
	Charts      map[string]interface{} `json:"charts"`
	Insights    []catalog.Insight      `json:"insights"`
	Obligations []catalog.Obligation   `json:"obligations"`
}

// DashboardService assembles the dashboard from the fixtures backing
// the resolved industry.
type DashboardService struct {
	container *state.Container
}

func NewDashboardService(container *state.Container) *DashboardService {
	return &DashboardService{container: container}
}

// cardOrders decides which KPIs headline each industry variant.
var cardOrders = map[string][]string{
	"tourism":      {"runway", "monthlyBurn", "mrr", "bookingRevenue", "bookings30d", "cancellationRate"},
	"construction": {"runway", "monthlyBurn", "averageProjectMargin", "workInProgressValue", "activeProjects", "laborEfficiency", "retentionsHeld", "materialsVariance"},
	"generic":      {"runway", "monthlyBurn", "cashOnHand", "revenueGrowth"},
}

var cardConfigs = map[string]analytics.StatCardConfig{
	"runway":               {Title: "Cash Runway", Format: "months", Icon: "⏳"},
	"monthlyBurn":          {Title: "Monthly Burn", Format: "currency", Icon: "🔥"},
	"cashOnHand":           {Title: "Cash on Hand", Format: "currency", Icon: "💰"},
	"mrr":                  {Title: "Monthly Recurring Revenue", Format: "currency", Icon: "🔁"},
	"bookingRevenue":       {Title: "Booking Revenue", Format: "currency", Icon: "🎫"},
	"bookings30d":          {Title: "Bookings (30d)", Format: "number", Icon: "📅"},
	"cancellationRate":     {Title: "Cancellation Rate", Format: "percentage", Icon: "🚫"},
	"revenueGrowth":        {Title: "Revenue Growth", Format: "percentage", Icon: "📈"},
	"averageProjectMargin": {Title: "Avg Project Margin", Format: "percentage", Icon: "📐"},
	"workInProgressValue":  {Title: "Work in Progress", Format: "currency", Icon: "🏗️"},
	"activeProjects":       {Title: "Active Projects", Format: "number", Icon: "📋"},
	"laborEfficiency":      {Title: "Labor Efficiency", Format: "percentage", Icon: "👷"},
	"retentionsHeld":       {Title: "Retentions Held", Format: "currency", Icon: "🔒"},
	"materialsVariance":    {Title: "Materials Variance", Format: "percentage", Icon: "🧱"},
}

// Overview builds the dashboard for an industry. An empty industry id
// falls back to the stored business profile.
func (s *DashboardService) Overview(industryID string) DashboardOverview {
	if industryID == "" {
		industryID = s.container.Snapshot().Profile.Industry
	}

	template := "tourism"
	if cfg, ok := industry.Resolve(industryID); ok {
		template = cfg.ID
	}
	dataset := catalog.DatasetFor(template)

	order, ok := cardOrders[template]
	if !ok {
		order = cardOrders["generic"]
	}

	charts := map[string]interface{}{
		"cashflow":       analytics.CashflowChart(dataset.Cashflow),
		"cashProjection": analytics.CashProjectionChart(dataset.CashProjection),
		"runway":         analytics.RunwayChart(dataset.RunwayProjection),
	}

	switch template {
	case "tourism":
		charts["seasonality"] = analytics.SeasonalityChart(catalog.Seasonality)
		charts["fxRates"] = analytics.FXChart(catalog.FXRates)
		if dataset.RevenueBreakdown != nil {
			charts["revenueBreakdown"] = analytics.RevenuePie(*dataset.RevenueBreakdown)
		}
		if dataset.ExpenseCategories != nil {
			charts["expenseCategories"] = analytics.ExpensePie(*dataset.ExpenseCategories)
		}
	case "construction":
		charts["projectHistory"] = analytics.ProjectHistoryChart(catalog.ProjectHistory)
	}

	return DashboardOverview{
		Industry:    template,
		KPICards:    analytics.KPICards(dataset.KPIs, order, cardConfigs),
		Charts:      charts,
		Insights:    dataset.Insights,
		Obligations: dataset.Obligations,
	}
}
