package catalog

// Construction dataset: residential and commercial projects (NZD).

var ConstructionKPIs = map[string]KPI{
	"runway": {
		Value:  8.2,
		Change: 0.3,
		Trend:  TrendUp,
		Period: "current",
	},
	"monthlyBurn": {
		Value:     89000,
		Change:    -5.2,
		Trend:     TrendDown,
		Sparkline: []float64{95000, 92000, 94000, 91000, 89000, 87000},
		Period:    "december",
	},
	"averageProjectMargin": {
		Value:     18.5,
		Change:    2.1,
		Trend:     TrendUp,
		Sparkline: []float64{16.2, 16.8, 17.1, 17.9, 18.1, 18.5},
		Period:    "december",
	},
	"workInProgressValue": {
		Value:     485000,
		Change:    12.3,
		Trend:     TrendUp,
		Sparkline: []float64{420000, 435000, 450000, 465000, 475000, 485000},
		Period:    "december",
	},
	"activeProjects": {
		Value:  8,
		Change: 1,
		Trend:  TrendUp,
		Period: "current",
	},
	"laborEfficiency": {
		Value:     94.2,
		Change:    -1.8,
		Trend:     TrendDown,
		Sparkline: []float64{96.1, 95.8, 95.2, 94.8, 94.5, 94.2},
		Period:    "december",
	},
	"retentionsHeld": {
		Value:  67500,
		Change: 8.9,
		Trend:  TrendUp,
		Period: "current",
	},
	"materialsVariance": {
		Value:  -3.2,
		Change: -1.1,
		Trend:  TrendDown,
		Period: "december",
	},
}

var ActiveProjects = []Project{
	{
		ID:                     "proj-001",
		Name:                   "Residential Extension - Smith House",
		Client:                 "John & Mary Smith",
		Type:                   "residential",
		Status:                 "active",
		BudgetedCost:           85000,
		ActualCost:             78500,
		BudgetedRevenue:        105000,
		ActualRevenue:          78750,
		MarginPercent:          19.2,
		StartDate:              "2024-11-15",
		ExpectedCompletionDate: "2025-02-28",
		RetentionHeld:          5250,
		ProgressBillingPercent: 75,
	},
	{
		ID:                     "proj-002",
		Name:                   "Office Renovation - Tech Startup",
		Client:                 "InnovateTech Ltd",
		Type:                   "commercial",
		Status:                 "active",
		BudgetedCost:           145000,
		ActualCost:             152000,
		BudgetedRevenue:        180000,
		ActualRevenue:          126000,
		MarginPercent:          15.8,
		StartDate:              "2024-12-01",
		ExpectedCompletionDate: "2025-03-15",
		RetentionHeld:          9000,
		ProgressBillingPercent: 70,
	},
	{
		ID:                     "proj-003",
		Name:                   "Kitchen Renovation - Williams",
		Client:                 "Sarah Williams",
		Type:                   "renovation",
		Status:                 "active",
		BudgetedCost:           45000,
		ActualCost:             43200,
		BudgetedRevenue:        58000,
		ActualRevenue:          52200,
		MarginPercent:          22.1,
		StartDate:              "2024-12-10",
		ExpectedCompletionDate: "2025-01-25",
		RetentionHeld:          2900,
		ProgressBillingPercent: 90,
	},
	{
		ID:                     "proj-004",
		Name:                   "Warehouse Fit-out - Logistics Co",
		Client:                 "FastTrack Logistics",
		Type:                   "commercial",
		Status:                 "quoted",
		BudgetedCost:           220000,
		ActualCost:             0,
		BudgetedRevenue:        275000,
		ActualRevenue:          0,
		MarginPercent:          20.0,
		StartDate:              "2025-01-15",
		ExpectedCompletionDate: "2025-05-30",
		RetentionHeld:          0,
		ProgressBillingPercent: 0,
	},
}

var WIPSummary = []WorkInProgress{
	{
		ProjectID:           "proj-001",
		ProjectName:         "Smith House Extension",
		Client:              "John & Mary Smith",
		ContractValue:       105000,
		CostsToDate:         78500,
		BilledToDate:        78750,
		RemainingToBill:     26250,
		PercentComplete:     75,
		EstimatedCompletion: "2025-02-28",
		MarginToDate:        250,
	},
	{
		ProjectID:           "proj-002",
		ProjectName:         "Tech Startup Office",
		Client:              "InnovateTech Ltd",
		ContractValue:       180000,
		CostsToDate:         152000,
		BilledToDate:        126000,
		RemainingToBill:     54000,
		PercentComplete:     70,
		EstimatedCompletion: "2025-03-15",
		MarginToDate:        -26000,
	},
	{
		ProjectID:           "proj-003",
		ProjectName:         "Williams Kitchen",
		Client:              "Sarah Williams",
		ContractValue:       58000,
		CostsToDate:         43200,
		BilledToDate:        52200,
		RemainingToBill:     5800,
		PercentComplete:     90,
		EstimatedCompletion: "2025-01-25",
		MarginToDate:        9000,
	},
}

var MaterialsCosts = []MaterialsCost{
	{Category: "Timber & Lumber", Budgeted: 25000, Actual: 26800, Variance: 1800, VariancePercent: 7.2, LastUpdated: "2024-12-28"},
	{Category: "Concrete & Cement", Budgeted: 12000, Actual: 11200, Variance: -800, VariancePercent: -6.7, LastUpdated: "2024-12-27"},
	{Category: "Steel & Reinforcement", Budgeted: 18500, Actual: 19200, Variance: 700, VariancePercent: 3.8, LastUpdated: "2024-12-26"},
	{Category: "Electrical Materials", Budgeted: 8500, Actual: 8950, Variance: 450, VariancePercent: 5.3, LastUpdated: "2024-12-25"},
	{Category: "Plumbing Materials", Budgeted: 6500, Actual: 6100, Variance: -400, VariancePercent: -6.2, LastUpdated: "2024-12-24"},
	{Category: "Insulation & Drywall", Budgeted: 9500, Actual: 9850, Variance: 350, VariancePercent: 3.7, LastUpdated: "2024-12-23"},
}

var LaborEfficiencyData = []LaborEfficiency{
	{ProjectID: "proj-001", ProjectName: "Smith House Extension", BudgetedHours: 680, ActualHours: 720, Variance: 40, EfficiencyRatio: 94.4, CostPerHour: 85},
	{ProjectID: "proj-002", ProjectName: "Tech Startup Office", BudgetedHours: 920, ActualHours: 980, Variance: 60, EfficiencyRatio: 93.9, CostPerHour: 88},
	{ProjectID: "proj-003", ProjectName: "Williams Kitchen", BudgetedHours: 340, ActualHours: 325, Variance: -15, EfficiencyRatio: 104.6, CostPerHour: 82},
}

var RetentionClaims = []RetentionClaim{
	{ProjectID: "proj-005", ProjectName: "Completed - Office Building", Client: "Property Developers Ltd", RetentionAmount: 15000, ReleaseDate: "2025-01-15", DaysUntilRelease: 18, Status: "pending"},
	{ProjectID: "proj-006", ProjectName: "Completed - Residential Home", Client: "Johnson Family", RetentionAmount: 7500, ReleaseDate: "2025-02-20", DaysUntilRelease: 54, Status: "pending"},
	{ProjectID: "proj-001", ProjectName: "Smith House Extension", Client: "John & Mary Smith", RetentionAmount: 5250, ReleaseDate: "2025-05-30", DaysUntilRelease: 153, Status: "in-progress"},
}

var ProjectHistory = []ProjectHistoryMonth{
	{Month: "Jul 2024", Completed: 2, Revenue: 145000, Margin: 16.2},
	{Month: "Aug 2024", Completed: 3, Revenue: 178000, Margin: 16.8},
	{Month: "Sep 2024", Completed: 2, Revenue: 156000, Margin: 17.1},
	{Month: "Oct 2024", Completed: 4, Revenue: 234000, Margin: 17.9},
	{Month: "Nov 2024", Completed: 3, Revenue: 189000, Margin: 18.1},
	{Month: "Dec 2024", Completed: 2, Revenue: 167000, Margin: 18.5},
}

var ConstructionCashflowHistory = []CashflowMonth{
	{Month: "Jan 2024", Operating: 45000, Investing: -25000, Financing: 0, Total: 20000},
	{Month: "Feb 2024", Operating: 78000, Investing: -15000, Financing: 0, Total: 63000},
	{Month: "Mar 2024", Operating: 123000, Investing: -30000, Financing: 0, Total: 93000},
	{Month: "Apr 2024", Operating: 34000, Investing: -20000, Financing: 150000, Total: 164000},
	{Month: "May 2024", Operating: 67000, Investing: -25000, Financing: -5000, Total: 37000},
	{Month: "Jun 2024", Operating: 89000, Investing: -18000, Financing: -5000, Total: 66000},
	{Month: "Jul 2024", Operating: 112000, Investing: -22000, Financing: -5000, Total: 85000},
	{Month: "Aug 2024", Operating: 145000, Investing: -35000, Financing: -5000, Total: 105000},
	{Month: "Sep 2024", Operating: 56000, Investing: -15000, Financing: -5000, Total: 36000},
	{Month: "Oct 2024", Operating: 187000, Investing: -28000, Financing: -5000, Total: 154000},
	{Month: "Nov 2024", Operating: 89000, Investing: -20000, Financing: -5000, Total: 64000},
	{Month: "Dec 2024", Operating: 98000, Investing: -18000, Financing: -5000, Total: 75000},
}

var ConstructionCashProjection = []CashProjectionPoint{
	{Month: "Dec 2024", Actual: f(185000), Projected: 185000},
	{Month: "Jan 2025", Projected: 210000},
	{Month: "Feb 2025", Projected: 245000},
	{Month: "Mar 2025", Projected: 215000},
	{Month: "Apr 2025", Projected: 190000},
	{Month: "May 2025", Projected: 205000},
	{Month: "Jun 2025", Projected: 175000},
	{Month: "Jul 2025", Projected: 160000},
	{Month: "Aug 2025", Projected: 145000},
	{Month: "Sep 2025", Projected: 130000},
	{Month: "Oct 2025", Projected: 115000},
	{Month: "Nov 2025", Projected: 100000},
}
