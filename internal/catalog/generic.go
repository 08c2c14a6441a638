package catalog

// Generic startup dataset used outside industry-specific views.

var CurrentKPIs = map[string]KPI{
	"runway": {
		Value:  12.5,
		Change: -0.8,
		Trend:  TrendDown,
	},
	"monthlyBurn": {
		Value:     145000,
		Change:    12000,
		Trend:     TrendUp,
		Sparkline: []float64{130000, 135000, 142000, 138000, 145000, 147000},
	},
	"cashOnHand": {
		Value:  1850000,
		Change: -145000,
		Trend:  TrendDown,
	},
	"revenueGrowth": {
		Value:  15.3,
		Change: 2.1,
		Trend:  TrendUp,
	},
}

var CashflowHistory = []CashflowMonth{
	{Month: "Jan 2024", Operating: 45000, Investing: -15000, Financing: 0, Total: 30000},
	{Month: "Feb 2024", Operating: 52000, Investing: -8000, Financing: 0, Total: 44000},
	{Month: "Mar 2024", Operating: 48000, Investing: -12000, Financing: 500000, Total: 536000},
	{Month: "Apr 2024", Operating: 55000, Investing: -20000, Financing: 0, Total: 35000},
	{Month: "May 2024", Operating: 51000, Investing: -15000, Financing: 0, Total: 36000},
	{Month: "Jun 2024", Operating: 58000, Investing: -18000, Financing: 0, Total: 40000},
	{Month: "Jul 2024", Operating: 62000, Investing: -22000, Financing: 0, Total: 40000},
	{Month: "Aug 2024", Operating: 65000, Investing: -25000, Financing: 0, Total: 40000},
	{Month: "Sep 2024", Operating: 59000, Investing: -19000, Financing: 0, Total: 40000},
	{Month: "Oct 2024", Operating: 48000, Investing: -16000, Financing: 0, Total: 32000},
	{Month: "Nov 2024", Operating: 42000, Investing: -14000, Financing: 0, Total: 28000},
	{Month: "Dec 2024", Operating: 38000, Investing: -13000, Financing: 0, Total: 25000},
}

var RunwayProjection = []RunwayPoint{
	{Month: "Dec 2024", CashBalance: 1850000, Projected: false},
	{Month: "Jan 2025", CashBalance: 1705000, Projected: true},
	{Month: "Feb 2025", CashBalance: 1560000, Projected: true},
	{Month: "Mar 2025", CashBalance: 1415000, Projected: true},
	{Month: "Apr 2025", CashBalance: 1270000, Projected: true},
	{Month: "May 2025", CashBalance: 1125000, Projected: true},
	{Month: "Jun 2025", CashBalance: 980000, Projected: true},
	{Month: "Jul 2025", CashBalance: 835000, Projected: true},
	{Month: "Aug 2025", CashBalance: 690000, Projected: true},
	{Month: "Sep 2025", CashBalance: 545000, Projected: true},
	{Month: "Oct 2025", CashBalance: 400000, Projected: true},
	{Month: "Nov 2025", CashBalance: 255000, Projected: true},
	{Month: "Dec 2025", CashBalance: 110000, Projected: true},
	{Month: "Jan 2026", CashBalance: -35000, Projected: true},
}

var Insights = []Insight{
	{
		ID:          "1",
		Title:       "Marketing spend increased 18% this month",
		Description: "Digital advertising costs are trending higher than budgeted",
		Severity:    "warning",
		Actionable:  true,
		Suggestion:  "Consider reducing ad spend by 10% to extend runway by 0.5 months",
		Impact:      "Extends runway to 13.0 months",
	},
	{
		ID:          "2",
		Title:       "Revenue growth accelerating",
		Description: "Monthly recurring revenue up 15.3% vs last month",
		Severity:    "positive",
		Actionable:  false,
		Impact:      "On track for 180% annual growth rate",
	},
	{
		ID:          "3",
		Title:       "Consider delaying Q1 hires",
		Description: "2 engineering positions planned for January",
		Severity:    "info",
		Actionable:  true,
		Suggestion:  "Delay hires to March to extend runway by 2.8 months",
		Impact:      "Extends runway to 15.3 months",
	},
	{
		ID:          "4",
		Title:       "Office lease renewal due",
		Description: "Current lease expires in March 2025",
		Severity:    "info",
		Actionable:  true,
		Suggestion:  "Negotiate remote-first policy to reduce office space",
		Impact:      "Could save $8,000/month in rent",
	},
}

var UpcomingObligations = []Obligation{
	{ID: "1", Type: "payroll", Description: "Monthly payroll", Amount: 125000, DueDate: "2025-01-15", Status: "upcoming"},
	{ID: "2", Type: "tax", Description: "GST/VAT payment", Amount: 18500, DueDate: "2025-01-28", Status: "upcoming"},
	{ID: "3", Type: "invoice", Description: "AWS infrastructure", Amount: 12800, DueDate: "2025-01-10", Status: "due"},
	{ID: "4", Type: "loan", Description: "Equipment financing", Amount: 5200, DueDate: "2025-01-20", Status: "upcoming"},
}

// SeedScenarios returns fresh copies of the sample scenarios. Each call
// deep-copies headcount slices so containers can mutate independently.
func SeedScenarios() []Scenario {
	seeds := []Scenario{
		{
			ID:          "baseline",
			Name:        "Base Case",
			Description: "Current trajectory with planned hires",
			IsBaseline:  true,
			Parameters: ScenarioParameters{
				Headcount: []HeadcountPlan{
					{Role: "Senior Engineer", Salary: 150000, StartMonth: 1},
					{Role: "Product Manager", Salary: 130000, StartMonth: 2},
				},
				MarketingSpendChange: 0,
				PricingChange:        0,
				PaymentTermsDays:     30,
			},
			Results: ScenarioResults{RunwayChange: 0, BreakEvenMonth: 18, CashflowImpact: 0},
		},
		{
			ID:          "conservative",
			Name:        "Conservative",
			Description: "Delay hires, reduce marketing spend",
			IsBaseline:  false,
			Parameters: ScenarioParameters{
				Headcount: []HeadcountPlan{
					{Role: "Senior Engineer", Salary: 150000, StartMonth: 4},
				},
				MarketingSpendChange: -20,
				PricingChange:        0,
				PaymentTermsDays:     30,
			},
			Results: ScenarioResults{RunwayChange: 3.2, BreakEvenMonth: 20, CashflowImpact: 25000},
		},
		{
			ID:          "aggressive",
			Name:        "Aggressive Growth",
			Description: "Double marketing, hire faster",
			IsBaseline:  false,
			Parameters: ScenarioParameters{
				Headcount: []HeadcountPlan{
					{Role: "Senior Engineer", Salary: 150000, StartMonth: 1},
					{Role: "Product Manager", Salary: 130000, StartMonth: 1},
					{Role: "Sales Director", Salary: 140000, StartMonth: 2},
					{Role: "Marketing Manager", Salary: 120000, StartMonth: 2},
				},
				MarketingSpendChange: 100,
				PricingChange:        15,
				PaymentTermsDays:     15,
			},
			Results: ScenarioResults{RunwayChange: -2.1, BreakEvenMonth: 14, CashflowImpact: -45000},
		},
	}
	return seeds
}

// SeedConversations returns fresh copies of the sample conversations.
func SeedConversations() []Conversation {
	return []Conversation{
		{
			ID:          "1",
			Title:       "Runway with new hires",
			LastMessage: "Your runway would decrease to 9.7 months...",
			Timestamp:   "2024-12-29 14:30",
			Messages: []ChatMessage{
				{
					ID:        "1",
					Role:      "user",
					Content:   "What happens to our runway if I hire 2 engineers next month?",
					Timestamp: "2024-12-29 14:28",
				},
				{
					ID:        "2",
					Role:      "assistant",
					Content:   "If you hire 2 senior engineers next month at $150k each, your runway would decrease from 12.5 to 9.7 months. Here's the breakdown:\n\n**Impact Analysis:**\n- Additional monthly burn: $25k (salary + benefits)\n- New runway: 9.7 months (down 2.8 months)\n- Cash depletion: October 2025 → July 2025\n\n**Recommendations:**\n- Consider staggered hiring (1 in Jan, 1 in Mar)\n- This would extend runway to 11.2 months\n- Alternative: Focus on revenue growth to offset burn",
					Timestamp: "2024-12-29 14:30",
					KPIDeltas: []KPIDelta{
						{Name: "Runway", From: 12.5, To: 9.7},
						{Name: "Monthly Burn", From: 145000, To: 170000},
					},
					Actions: []string{"Create Scenario from this", "Export as Investor Update"},
				},
			},
		},
		{
			ID:          "2",
			Title:       "Marketing budget optimization",
			LastMessage: "A 20% reduction would extend your runway...",
			Timestamp:   "2024-12-28 16:45",
			Messages: []ChatMessage{
				{
					ID:        "1",
					Role:      "user",
					Content:   "Should I reduce marketing spend to extend runway?",
					Timestamp: "2024-12-28 16:43",
				},
				{
					ID:        "2",
					Role:      "assistant",
					Content:   "A 20% reduction in marketing spend would extend your runway by 0.6 months, but consider the trade-offs:\n\n**Financial Impact:**\n- Monthly savings: $8,000\n- Extended runway: 13.1 months\n- Break-even delay: +1 month\n\n**Growth Trade-offs:**\n- Potential 15% reduction in new customer acquisition\n- May slow path to profitability\n- Consider optimizing spend rather than cutting",
					Timestamp: "2024-12-28 16:45",
					Actions:   []string{"Analyze marketing ROI", "Create Conservative Scenario"},
				},
			},
		},
	}
}
