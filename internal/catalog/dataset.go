package catalog

// Dataset bundles the fixtures backing one dashboard rendition. Which
// dataset applies is decided by the resolved industry template.
type Dataset struct {
	KPIs              map[string]KPI
	Cashflow          []CashflowMonth
	CashProjection    []CashProjectionPoint
	RunwayProjection  []RunwayPoint
	Insights          []Insight
	Obligations       []Obligation
	RevenueBreakdown  *RevenueBreakdown
	ExpenseCategories *ExpenseCategories
}

// DatasetFor returns the fixtures for a resolved industry template.
// Unknown templates fall back to the generic SaaS dataset.
func DatasetFor(template string) Dataset {
	switch template {
	case "tourism":
		return Dataset{
			KPIs:              TourismKPIs,
			Cashflow:          TourismCashflowHistory,
			CashProjection:    TourismCashProjection,
			RunwayProjection:  RunwayProjection,
			Insights:          Insights,
			Obligations:       UpcomingObligations,
			RevenueBreakdown:  &TourismRevenueBreakdown,
			ExpenseCategories: &TourismExpenseCategories,
		}
	case "construction":
		return Dataset{
			KPIs:             ConstructionKPIs,
			Cashflow:         ConstructionCashflowHistory,
			CashProjection:   ConstructionCashProjection,
			RunwayProjection: RunwayProjection,
			Insights:         Insights,
			Obligations:      UpcomingObligations,
		}
	default:
		return Dataset{
			KPIs:             CurrentKPIs,
			Cashflow:         CashflowHistory,
			CashProjection:   TourismCashProjection,
			RunwayProjection: RunwayProjection,
			Insights:         Insights,
			Obligations:      UpcomingObligations,
		}
	}
}
