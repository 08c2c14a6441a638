// Package industry holds the per-industry dashboard configurations.
// Industries without native data borrow another variant through an
// explicit Template field instead of silently serving the wrong config.
package industry

import (
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/core/widgets"
)

// Config is the full dashboard configuration for one industry variant.
type Config struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Icon             string           `json:"icon"`
	Color            string           `json:"color"`
	PrimaryMetrics   []string         `json:"primaryMetrics"`
	AlertThemes      []string         `json:"alerts"`
	DashboardWidgets []widgets.Widget `json:"dashboardWidgets"`
	Challenges       []string         `json:"challenges"`
	Opportunities    []string         `json:"opportunities"`
}

// Industry is a selectable industry. Template names the config variant
// it resolves to; empty means it has a native config.
type Industry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Examples    []string `json:"examples"`
	Template    string   `json:"template,omitempty"`
}

var tourismConfig = Config{
	ID:          "tourism",
	Name:        "Tourism & Hospitality",
	Description: "Adventure tourism, accommodation, and travel experiences",
	Icon:        "🏔️",
	Color:       "from-blue-500 to-cyan-600",
	PrimaryMetrics: []string{
		"Seasonal Revenue Variance",
		"Booking Conversion Rate",
		"Average Booking Value",
		"Cancellation Rate",
		"Peak Season Utilization",
		"Customer Acquisition Cost",
		"Weather Impact Factor",
	},
	AlertThemes: []string{
		"Seasonal cash flow planning",
		"Weather-dependent revenue risks",
		"International customer FX exposure",
		"Tourism levy compliance",
		"Peak season pricing optimization",
	},
	DashboardWidgets: []widgets.Widget{
		{
			ID:               "seasonal-revenue",
			Title:            "Seasonal Revenue Tracking",
			Type:             widgets.TypeChart,
			Category:         "Revenue",
			Description:      "Monthly revenue with seasonal patterns and weather correlation",
			DataSource:       "seasonalRevenue",
			IndustrySpecific: true,
			Size:             "large",
			DefaultEnabled:   true,
		},
		{
			ID:               "booking-metrics",
			Title:            "Booking Performance",
			Type:             widgets.TypeKPI,
			Category:         "Operations",
			Description:      "Booking conversion, cancellations, and average values",
			DataSource:       "bookingData",
			IndustrySpecific: true,
			Size:             "medium",
			DefaultEnabled:   true,
		},
		{
			ID:               "weather-impact",
			Title:            "Weather Impact Analysis",
			Type:             widgets.TypeInsight,
			Category:         "Risk",
			Description:      "How weather conditions affect bookings and revenue",
			DataSource:       "weatherData",
			IndustrySpecific: true,
			Size:             "medium",
			DefaultEnabled:   true,
		},
		{
			ID:               "international-fx",
			Title:            "Currency Exposure",
			Type:             widgets.TypeAlert,
			Category:         "Risk",
			Description:      "FX risk from international customers",
			DataSource:       "fxData",
			IndustrySpecific: true,
			Size:             "small",
			DefaultEnabled:   true,
		},
	},
	Challenges: []string{
		"Seasonal cash flow management",
		"Weather-dependent revenue",
		"International customer payment processing",
		"Peak season staff management",
		"Equipment and insurance costs",
	},
	Opportunities: []string{
		"Dynamic pricing optimization",
		"Off-season activity development",
		"Corporate group packages",
		"International market expansion",
		"Digital marketing efficiency",
	},
}

var constructionConfig = Config{
	ID:          "construction",
	Name:        "Construction & Trades",
	Description: "Building, renovation, and specialized trade services",
	Icon:        "🏗️",
	Color:       "from-orange-500 to-amber-600",
	PrimaryMetrics: []string{
		"Project Margin %",
		"Work in Progress Value",
		"Cash Flow from Operations",
		"Materials Cost Variance",
		"Labor Efficiency Ratio",
		"Project Completion Rate",
		"Retentions Held",
	},
	AlertThemes: []string{
		"Project cost overruns",
		"Retention release timing",
		"Materials price volatility",
		"Health & safety compliance",
		"Progress billing optimization",
	},
	DashboardWidgets: []widgets.Widget{
		{
			ID:               "project-margins",
			Title:            "Project Profitability",
			Type:             widgets.TypeChart,
			Category:         "Projects",
			Description:      "Margin analysis across active and completed projects",
			DataSource:       "projectData",
			IndustrySpecific: true,
			Size:             "large",
			DefaultEnabled:   true,
		},
		{
			ID:               "wip-tracking",
			Title:            "Work in Progress",
			Type:             widgets.TypeTable,
			Category:         "Operations",
			Description:      "Current project status and financial position",
			DataSource:       "wipData",
			IndustrySpecific: true,
			Size:             "large",
			DefaultEnabled:   true,
		},
		{
			ID:               "materials-costs",
			Title:            "Materials Cost Analysis",
			Type:             widgets.TypeKPI,
			Category:         "Costs",
			Description:      "Materials cost tracking and variance analysis",
			DataSource:       "materialsData",
			IndustrySpecific: true,
			Size:             "medium",
			DefaultEnabled:   true,
		},
		{
			ID:               "retention-tracking",
			Title:            "Retentions & Progress Claims",
			Type:             widgets.TypeTable,
			Category:         "Cash Flow",
			Description:      "Track retention releases and progress billing",
			DataSource:       "retentionsData",
			IndustrySpecific: true,
			Size:             "medium",
			DefaultEnabled:   true,
		},
		{
			ID:               "labor-efficiency",
			Title:            "Labor Efficiency",
			Type:             widgets.TypeKPI,
			Category:         "Operations",
			Description:      "Labor hours vs budget across projects",
			DataSource:       "laborData",
			IndustrySpecific: true,
			Size:             "small",
			DefaultEnabled:   true,
		},
	},
	Challenges: []string{
		"Project cost control and overruns",
		"Cash flow timing with progress billing",
		"Materials price volatility",
		"Skilled labor availability and costs",
		"Health and safety compliance costs",
	},
	Opportunities: []string{
		"Improved project estimation accuracy",
		"Better supplier relationships and pricing",
		"Technology adoption for efficiency",
		"Specialization in high-margin areas",
		"Government contract opportunities",
	},
}

var configs = map[string]Config{
	"tourism":      tourismConfig,
	"construction": constructionConfig,
}

var industries = []Industry{
	{
		ID:          "tourism",
		Name:        "Tourism & Hospitality",
		Description: "Adventure tourism, accommodation, tours, and travel experiences",
		Icon:        "🏔️",
		Examples:    []string{"Adventure tours", "Hotels & lodges", "Travel agencies", "Event venues"},
	},
	{
		ID:          "construction",
		Name:        "Construction & Trades",
		Description: "Building, renovation, and specialized trade services",
		Icon:        "🏗️",
		Examples:    []string{"General contractors", "Electrical", "Plumbing", "Renovation"},
	},
	{
		ID:          "retail",
		Name:        "Retail & E-commerce",
		Description: "Physical and online retail businesses",
		Icon:        "🛍️",
		Examples:    []string{"Online stores", "Boutiques", "Specialty retail", "Marketplaces"},
		Template:    "tourism",
	},
	{
		ID:          "services",
		Name:        "Professional Services",
		Description: "Consulting, agencies, and service-based businesses",
		Icon:        "💼",
		Examples:    []string{"Consulting", "Marketing agencies", "Legal services", "Accounting"},
		Template:    "tourism",
	},
	{
		ID:          "manufacturing",
		Name:        "Manufacturing",
		Description: "Production and manufacturing businesses",
		Icon:        "🏭",
		Examples:    []string{"Food production", "Electronics", "Textiles", "Industrial goods"},
		Template:    "construction",
	},
	{
		ID:          "healthcare",
		Name:        "Healthcare & Wellness",
		Description: "Medical, dental, and wellness services",
		Icon:        "🏥",
		Examples:    []string{"Medical practices", "Dental clinics", "Wellness centers", "Pharmacies"},
		Template:    "tourism",
	},
}

// Available lists the selectable industries.
func Available() []Industry {
	out := make([]Industry, len(industries))
	copy(out, industries)
	return out
}

// Resolve returns the config an industry id serves, following the
// Template indirection for industries without native data.
func Resolve(id string) (Config, bool) {
	for _, ind := range industries {
		if ind.ID != id {
			continue
		}
		key := ind.ID
		if ind.Template != "" {
			key = ind.Template
		}
		cfg, ok := configs[key]
		return cfg, ok
	}
	return Config{}, false
}

// UniversalWidgets is the widget catalog available to every industry.
func UniversalWidgets() []widgets.Widget {
	return []widgets.Widget{
		{ID: "cash-runway", Title: "Cash Runway", Type: widgets.TypeKPI, Category: "Cash Flow", Description: "Months of runway based on current burn rate", DataSource: "cashFlow", Size: "small", DefaultEnabled: true},
		{ID: "monthly-burn", Title: "Monthly Burn Rate", Type: widgets.TypeKPI, Category: "Cash Flow", Description: "Monthly operating expenses and burn", DataSource: "expenses", Size: "small", DefaultEnabled: true},
		{ID: "revenue-growth", Title: "Revenue Growth", Type: widgets.TypeChart, Category: "Revenue", Description: "Monthly revenue trends and growth rates", DataSource: "revenue", Size: "large", DefaultEnabled: true},
		{ID: "profit-margins", Title: "Profit Margins", Type: widgets.TypeKPI, Category: "Profitability", Description: "Gross and net profit margin tracking", DataSource: "profitability", Size: "medium", DefaultEnabled: true},
		{ID: "accounts-receivable", Title: "Accounts Receivable", Type: widgets.TypeTable, Category: "Cash Flow", Description: "Outstanding invoices and aging analysis", DataSource: "receivables", Size: "large", DefaultEnabled: false},
		{ID: "expense-breakdown", Title: "Expense Categories", Type: widgets.TypeChart, Category: "Expenses", Description: "Breakdown of operating expenses by category", DataSource: "expenses", Size: "medium", DefaultEnabled: false},
		{ID: "tax-obligations", Title: "Tax & Compliance", Type: widgets.TypeAlert, Category: "Compliance", Description: "Upcoming tax obligations and deadlines", DataSource: "compliance", Size: "medium", DefaultEnabled: true},
		{ID: "kpi-summary", Title: "KPI Summary", Type: widgets.TypeKPI, Category: "Overview", Description: "Key performance indicators overview", DataSource: "kpis", Size: "large", DefaultEnabled: true},
		{ID: "cash-flow-forecast", Title: "Cash Flow Forecast", Type: widgets.TypeChart, Category: "Cash Flow", Description: "12-month cash flow projection", DataSource: "cashProjection", Size: "large", DefaultEnabled: false},
		{ID: "budget-variance", Title: "Budget vs Actual", Type: widgets.TypeChart, Category: "Planning", Description: "Budget variance analysis", DataSource: "budget", Size: "medium", DefaultEnabled: false},
	}
}

// WidgetCatalog is the full catalog for an industry: universal widgets
// followed by the industry-specific ones.
func WidgetCatalog(industryID string) ([]widgets.Widget, error) {
	cfg, ok := Resolve(industryID)
	if !ok {
		return nil, fmt.Errorf("unknown industry %q", industryID)
	}
	out := UniversalWidgets()
	out = append(out, cfg.DashboardWidgets...)
	return out, nil
}

// Validate checks that every registered industry resolves to a complete
// config and that no widget catalog carries duplicate ids.
func Validate() error {
	for _, ind := range industries {
		cfg, ok := Resolve(ind.ID)
		if !ok {
			return fmt.Errorf("industry %q does not resolve to a config", ind.ID)
		}
		if cfg.Name == "" || len(cfg.PrimaryMetrics) == 0 || len(cfg.DashboardWidgets) == 0 {
			return fmt.Errorf("industry %q resolves to an incomplete config", ind.ID)
		}
		catalog, err := WidgetCatalog(ind.ID)
		if err != nil {
			return err
		}
		seen := make(map[string]struct{}, len(catalog))
		for _, w := range catalog {
			if _, dup := seen[w.ID]; dup {
				return fmt.Errorf("industry %q widget catalog has duplicate id %q", ind.ID, w.ID)
			}
			seen[w.ID] = struct{}{}
		}
	}
	return nil
}
