package catalog

// Tourism dataset: Aroha's tour operating + booking platform (NZD).

var TourismKPIs = map[string]KPI{
	"runway": {
		Value:  6.8,
		Change: -0.4,
		Trend:  TrendDown,
		Period: "months",
	},
	"monthlyBurn": {
		Value:     65000,
		Change:    5000,
		Trend:     TrendUp,
		Sparkline: []float64{58000, 61000, 59000, 63000, 67000, 65000},
		Period:    "monthly",
	},
	"mrr": {
		Value:     45000,
		Change:    3200,
		Trend:     TrendUp,
		Sparkline: []float64{38000, 40000, 42000, 41500, 43800, 45000},
		Period:    "monthly",
	},
	"bookingRevenue": {
		Value:     28000,
		Change:    -2100,
		Trend:     TrendDown,
		Sparkline: []float64{45000, 38000, 32000, 29000, 26000, 28000},
		Period:    "monthly",
	},
	"bookings30d": {
		Value:  847,
		Change: -89,
		Trend:  TrendDown,
		Period: "30 days",
	},
	"cancellationRate": {
		Value:  12.3,
		Change: 1.8,
		Trend:  TrendUp,
		Period: "30 days",
	},
}

var Seasonality = []SeasonalityMonth{
	{Month: "Jan", Multiplier: 1.6, Bookings: 1520, Revenue: 76000, CancellationRate: 8.2},
	{Month: "Feb", Multiplier: 1.4, Bookings: 1330, Revenue: 66500, CancellationRate: 9.1},
	{Month: "Mar", Multiplier: 1.3, Bookings: 1235, Revenue: 61750, CancellationRate: 10.5},
	{Month: "Apr", Multiplier: 1.0, Bookings: 950, Revenue: 47500, CancellationRate: 11.2},
	{Month: "May", Multiplier: 0.7, Bookings: 665, Revenue: 33250, CancellationRate: 14.8},
	{Month: "Jun", Multiplier: 0.7, Bookings: 665, Revenue: 33250, CancellationRate: 15.2},
	{Month: "Jul", Multiplier: 0.7, Bookings: 665, Revenue: 33250, CancellationRate: 13.9},
	{Month: "Aug", Multiplier: 0.7, Bookings: 665, Revenue: 33250, CancellationRate: 14.1},
	{Month: "Sep", Multiplier: 0.9, Bookings: 855, Revenue: 42750, CancellationRate: 12.7},
	{Month: "Oct", Multiplier: 1.0, Bookings: 950, Revenue: 47500, CancellationRate: 11.8},
	{Month: "Nov", Multiplier: 1.2, Bookings: 1140, Revenue: 57000, CancellationRate: 10.3},
	{Month: "Dec", Multiplier: 1.45, Bookings: 1378, Revenue: 68900, CancellationRate: 9.1},
}

var FXRates = []FXRate{
	{Date: "2024-07", NZDAUDRate: 0.94, NZDUSDRate: 0.61},
	{Date: "2024-08", NZDAUDRate: 0.92, NZDUSDRate: 0.59},
	{Date: "2024-09", NZDAUDRate: 0.95, NZDUSDRate: 0.62},
	{Date: "2024-10", NZDAUDRate: 0.93, NZDUSDRate: 0.60},
	{Date: "2024-11", NZDAUDRate: 0.96, NZDUSDRate: 0.63},
	{Date: "2024-12", NZDAUDRate: 0.94, NZDUSDRate: 0.61},
}

var ARAging = []ARAgingBucket{
	{Bucket: "0-30", Amount: 52000, Count: 34, Percentage: 42.6},
	{Bucket: "31-60", Amount: 38000, Count: 22, Percentage: 31.1},
	{Bucket: "61-90", Amount: 21000, Count: 12, Percentage: 17.2},
	{Bucket: "90+", Amount: 11000, Count: 8, Percentage: 9.0},
}

var CollectionsQueue = []CollectionItem{
	{
		ID:               "1",
		CustomerName:     "Auckland Adventures Ltd",
		Amount:           8900,
		DaysOverdue:      45,
		LastContact:      "2024-12-15",
		PredictedPayDate: "2025-01-10",
		RiskLevel:        RiskMedium,
		SuggestedAction:  "Send payment reminder with seasonal discount offer",
		ContactScript:    "Hi Sarah, hope your December bookings are going well! Just following up on invoice #2847 for $8,900. With peak season approaching, would a 5% early payment discount help with your cash flow planning?",
	},
	{
		ID:               "2",
		CustomerName:     "Rotorua Experience Co",
		Amount:           12400,
		DaysOverdue:      67,
		LastContact:      "2024-12-01",
		PredictedPayDate: "2025-01-25",
		RiskLevel:        RiskHigh,
		SuggestedAction:  "Phone call + payment plan discussion",
		ContactScript:    "Hi Mike, calling about invoice #2793 for $12,400 now 67 days overdue. I understand winter was tough for tourism operators. Can we discuss a payment plan that works around your peak season cash flow?",
	},
	{
		ID:               "3",
		CustomerName:     "Bay of Islands Tours",
		Amount:           4200,
		DaysOverdue:      23,
		LastContact:      "2024-12-20",
		PredictedPayDate: "2025-01-05",
		RiskLevel:        RiskLow,
		SuggestedAction:  "Automated reminder",
	},
	{
		ID:               "4",
		CustomerName:     "Queenstown Action Sports",
		Amount:           15600,
		DaysOverdue:      89,
		LastContact:      "2024-11-28",
		PredictedPayDate: "2025-02-15",
		RiskLevel:        RiskHigh,
		SuggestedAction:  "Escalate to collections agency",
	},
}

// GST obligations on the NZ 2-monthly filing cycle.
var GSTObligations = []GSTObligation{
	{
		Period:           "Nov-Dec 2024",
		DueDate:          "2025-01-28",
		EstimatedAmount:  13400,
		Status:           "upcoming",
		TaxableSupplies:  102600,
		ZeroRatedExports: 8900,
		InputTaxCredits:  4730,
	},
	{
		Period:           "Sep-Oct 2024",
		DueDate:          "2024-11-28",
		EstimatedAmount:  11200,
		Status:           "paid",
		TaxableSupplies:  89400,
		ZeroRatedExports: 7200,
		InputTaxCredits:  4850,
	},
}

var PayrollObligations = []PayrollObligation{
	{ID: "1", Type: "salary", Description: "Fortnightly payroll", Amount: 18200, DueDate: "2025-01-09", Frequency: "fortnightly", Employees: 7},
	{ID: "2", Type: "kiwisaver", Description: "KiwiSaver employer contributions (3%)", Amount: 1640, DueDate: "2025-01-20", Frequency: "monthly", Employees: 7},
	{ID: "3", Type: "acc", Description: "ACC levies (1.45%)", Amount: 790, DueDate: "2025-01-20", Frequency: "monthly", Employees: 7},
	{ID: "4", Type: "paye", Description: "PAYE and student loan deductions", Amount: 7200, DueDate: "2025-01-20", Frequency: "monthly", Employees: 7},
}

var TourismCashflowHistory = []CashflowMonth{
	{Month: "Jan 2024", Operating: 35000, Investing: -15000, Financing: 0, Total: 20000},
	{Month: "Feb 2024", Operating: 42000, Investing: -8000, Financing: 0, Total: 34000},
	{Month: "Mar 2024", Operating: 38000, Investing: -12000, Financing: 500000, Total: 526000},
	{Month: "Apr 2024", Operating: 25000, Investing: -20000, Financing: 0, Total: 5000},
	{Month: "May 2024", Operating: 18000, Investing: -15000, Financing: 0, Total: 3000},
	{Month: "Jun 2024", Operating: 16000, Investing: -18000, Financing: 0, Total: -2000},
	{Month: "Jul 2024", Operating: 19000, Investing: -22000, Financing: 0, Total: -3000},
	{Month: "Aug 2024", Operating: 22000, Investing: -25000, Financing: 0, Total: -3000},
	{Month: "Sep 2024", Operating: 28000, Investing: -19000, Financing: 0, Total: 9000},
	{Month: "Oct 2024", Operating: 35000, Investing: -16000, Financing: 0, Total: 19000},
	{Month: "Nov 2024", Operating: 48000, Investing: -14000, Financing: 0, Total: 34000},
	{Month: "Dec 2024", Operating: 52000, Investing: -13000, Financing: 0, Total: 39000},
}

var TourismCashProjection = []CashProjectionPoint{
	{Month: "Dec 2024", Actual: f(420000), Projected: 420000, Seasonal: true},
	{Month: "Jan 2025", Projected: 445000, Seasonal: true},
	{Month: "Feb 2025", Projected: 468000, Seasonal: true},
	{Month: "Mar 2025", Projected: 485000, Seasonal: true},
	{Month: "Apr 2025", Projected: 445000},
	{Month: "May 2025", Projected: 395000},
	{Month: "Jun 2025", Projected: 345000},
	{Month: "Jul 2025", Projected: 295000},
	{Month: "Aug 2025", Projected: 245000},
	{Month: "Sep 2025", Projected: 205000},
	{Month: "Oct 2025", Projected: 165000},
	{Month: "Nov 2025", Projected: 135000},
}

var TourismRevenueBreakdown = RevenueBreakdown{
	SubscriptionMRR: 45000,
	BookingFees:     28000,
	AUDRevenue:      9800,
	OneOffServices:  3200,
}

var TourismExpenseCategories = ExpenseCategories{
	Payroll:        54500,
	Marketing:      12000,
	Infrastructure: 8500,
	Office:         4200,
	Insurance:      1800,
	Legal:          2200,
	Other:          3800,
}

// SeedAlerts returns a fresh copy of the proactive CFO alert feed so
// dismiss state in one container never leaks into another.
func SeedAlerts() []Alert {
	alerts := make([]Alert, len(cfoAlerts))
	copy(alerts, cfoAlerts)
	return alerts
}

var cfoAlerts = []Alert{
	{
		ID:              "runway-critical-001",
		Type:            "critical",
		Category:        "cashflow",
		Title:           "Critical: Runway Below 9 Months",
		Description:     "Your current runway of 6.8 months is approaching dangerous territory for tourism businesses facing seasonal volatility.",
		Insight:         "Tourism businesses need 12+ months runway to survive off-season periods. With summer ending, you're entering lower revenue months without adequate buffer.",
		Impact:          "Risk of cash-out during May-August off-season. Potential forced closure or emergency funding at unfavorable terms.",
		Urgency:         UrgencyCritical,
		EstimatedRisk:   420000,
		Actions:         []string{"Reduce non-essential spend immediately", "Accelerate collections", "Consider bridge funding", "Review Q1 scenarios"},
		CreatedAt:       "2024-12-28T10:30:00Z",
		BusinessContext: "NZ tourism with high seasonality",
		RelatedMetrics:  []string{"runway", "monthlyBurn", "seasonalRevenue"},
	},
	{
		ID:              "customer-concentration-002",
		Type:            "warning",
		Category:        "risk",
		Title:           "Customer Concentration Risk Detected",
		Description:     "Top 3 corporate clients represent 47% of booking revenue. This creates dangerous dependency during economic uncertainty.",
		Insight:         "Tourism businesses often over-rely on large corporate accounts. Economic downturns hit corporate travel budgets first, creating sudden revenue drops.",
		Impact:          "Loss of major client could reduce revenue by $15k/month immediately. Recovery typically takes 6-12 months.",
		Urgency:         UrgencyHigh,
		EstimatedRisk:   180000,
		Actions:         []string{"Diversify client base", "Create client retention program", "Develop SME market strategy", "Add contract terms protection"},
		CreatedAt:       "2024-12-28T09:15:00Z",
		BusinessContext: "High client concentration typical in NZ tourism",
		RelatedMetrics:  []string{"bookingRevenue", "customerMix"},
	},
	{
		ID:               "gst-optimization-003",
		Type:             "opportunity",
		Category:         "compliance",
		Title:            "GST Optimization Opportunity",
		Description:      "You're missing $4,200 in GST input credits monthly by not claiming eligible expenses properly.",
		Insight:          "Many tourism operators under-claim GST on legitimate business expenses like equipment, marketing, and vehicle costs.",
		Impact:           "Recovering missed credits could improve cash flow by $50k annually while staying fully compliant.",
		Urgency:          UrgencyMedium,
		EstimatedSavings: 50400,
		Actions:          []string{"Review expense categorization", "Audit vehicle claims", "Optimize supplier GST", "Set up monthly reconciliation"},
		CreatedAt:        "2024-12-28T08:45:00Z",
		BusinessContext:  "NZ GST compliance with tourism-specific deductions",
		RelatedMetrics:   []string{"gstCredits", "expenses"},
	},
	{
		ID:               "seasonal-pricing-004",
		Type:             "opportunity",
		Category:         "growth",
		Title:            "Seasonal Pricing Strategy Gap",
		Description:      "Current pricing doesn't fully capture peak season demand. Analysis shows 18% revenue upside.",
		Insight:          "Your peak season pricing is only 40% above off-season rates. Market analysis shows 60-80% premiums are standard and accepted.",
		Impact:           "Optimized seasonal pricing could generate additional $32k in Q1 alone without affecting booking volumes.",
		Urgency:          UrgencyHigh,
		EstimatedSavings: 128000,
		Actions:          []string{"Implement dynamic pricing", "Test premium packages", "Add peak season surcharges", "Monitor competitor rates"},
		CreatedAt:        "2024-12-28T07:20:00Z",
		BusinessContext:  "NZ summer peak season pricing optimization",
		RelatedMetrics:   []string{"bookingRevenue", "seasonalMultiplier"},
	},
	{
		ID:              "forex-hedge-005",
		Type:            "warning",
		Category:        "risk",
		Title:           "Currency Exposure Risk Rising",
		Description:     "Australian customer revenue (22% of total) is unhedged while AUD/NZD volatility increases.",
		Insight:         "Tourism businesses often ignore FX risk until it hurts. A 10% AUD decline could reduce annual revenue by $25k.",
		Impact:          "Unhedged FX exposure of $280k annually. Recent volatility could impact cash flow unpredictably.",
		Urgency:         UrgencyMedium,
		EstimatedRisk:   28000,
		Actions:         []string{"Implement FX hedging strategy", "Consider NZD pricing for AU customers", "Review contract terms", "Set up FX monitoring"},
		CreatedAt:       "2024-12-27T16:30:00Z",
		BusinessContext: "Trans-Tasman tourism operations",
		RelatedMetrics:  []string{"fxExposure", "auRevenue"},
	},
	{
		ID:               "collection-efficiency-006",
		Type:             "opportunity",
		Category:         "cashflow",
		Title:            "Accounts Receivable Optimization",
		Description:      "Average collection period is 42 days vs industry best practice of 28 days. Slow collections hurt cash flow.",
		Insight:          "Tourism businesses often extend payment terms to win corporate deals, but poor collection processes compound the problem.",
		Impact:           "Faster collections could free up $18k in working capital and reduce bad debt by $3k annually.",
		Urgency:          UrgencyMedium,
		EstimatedSavings: 21000,
		Actions:          []string{"Implement automated reminders", "Offer early payment discounts", "Tighten credit terms", "Use collection agencies for overdue"},
		CreatedAt:        "2024-12-27T14:10:00Z",
		BusinessContext:  "Tourism industry payment cycles",
		RelatedMetrics:   []string{"arAging", "badDebt"},
	},
	{
		ID:               "fundraising-window-007",
		Type:             "info",
		Category:         "fundraising",
		Title:            "Optimal Fundraising Window Approaching",
		Description:      "Market conditions and your metrics suggest Q2 2025 as ideal timing for Series A fundraising.",
		Insight:          "Tourism businesses should raise during or just after peak season when metrics look strongest. Waiting too long into off-season hurts valuation.",
		Impact:           "Timing fundraising correctly could improve valuation by 15-25% and reduce dilution significantly.",
		Urgency:          UrgencyLow,
		EstimatedSavings: 75000,
		Actions:          []string{"Prepare pitch materials", "Clean up financials", "Identify target investors", "Set roadshow timeline"},
		CreatedAt:        "2024-12-27T11:45:00Z",
		BusinessContext:  "Tourism startup funding cycles",
		RelatedMetrics:   []string{"growth", "seasonality", "burn"},
	},
	{
		ID:               "cost-efficiency-008",
		Type:             "warning",
		Category:         "efficiency",
		Title:            "Software Subscription Bloat Detected",
		Description:      "Monthly SaaS costs increased 34% in 6 months to $2,847/month. Several subscriptions appear underutilized.",
		Insight:          "Growing companies often accumulate software subscriptions faster than they optimize them. Regular audits can cut 20-30% without impact.",
		Impact:           "Subscription optimization could save $8k annually while improving operational efficiency.",
		Urgency:          UrgencyLow,
		EstimatedSavings: 8400,
		Actions:          []string{"Audit all subscriptions", "Consolidate overlapping tools", "Negotiate annual discounts", "Cancel unused licenses"},
		CreatedAt:        "2024-12-26T13:20:00Z",
		BusinessContext:  "Scale-up operational efficiency",
		RelatedMetrics:   []string{"operatingExpenses", "softwareCosts"},
	},
	{
		ID:              "tax-deadline-009",
		Type:            "info",
		Category:        "compliance",
		Title:           "IRD Provisional Tax Planning",
		Description:     "Provisional tax payment due March 28th. Current estimates may be under-calculated based on seasonal performance.",
		Insight:         "Tourism businesses often underestimate provisional tax due to seasonal revenue spikes, leading to penalties and cash flow surprises.",
		Impact:          "Accurate provisioning prevents penalties and spreads tax burden. Under-estimation could cost $2-5k in penalties.",
		Urgency:         UrgencyMedium,
		EstimatedRisk:   3500,
		Actions:         []string{"Review tax calculations", "Consider payments on account", "Plan cash flow for March", "Consult tax advisor"},
		CreatedAt:       "2024-12-26T09:30:00Z",
		BusinessContext: "NZ provisional tax for tourism businesses",
		RelatedMetrics:  []string{"tax", "seasonalRevenue"},
	},
}

func f(v float64) *float64 { return &v }
