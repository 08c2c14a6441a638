package catalog

// Trend direction for a KPI over its comparison period.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// KPI is a single headline metric with its recent movement.
type KPI struct {
	Value     float64   `json:"value"`
	Change    float64   `json:"change,omitempty"`
	Trend     Trend     `json:"trend,omitempty"`
	Sparkline []float64 `json:"sparkline,omitempty"`
	Period    string    `json:"period,omitempty"`
}

type CashflowMonth struct {
	Month     string  `json:"month"`
	Operating float64 `json:"operating"`
	Investing float64 `json:"investing"`
	Financing float64 `json:"financing"`
	Total     float64 `json:"total"`
}

type RunwayPoint struct {
	Month       string  `json:"month"`
	CashBalance float64 `json:"cashBalance"`
	Projected   bool    `json:"projected"`
}

type CashProjectionPoint struct {
	Month     string   `json:"month"`
	Actual    *float64 `json:"actual"`
	Projected float64  `json:"projected"`
	Seasonal  bool     `json:"seasonal,omitempty"`
}

type SeasonalityMonth struct {
	Month            string  `json:"month"`
	Multiplier       float64 `json:"multiplier"`
	Bookings         int     `json:"bookings"`
	Revenue          float64 `json:"revenue"`
	CancellationRate float64 `json:"cancellationRate"`
}

type FXRate struct {
	Date       string  `json:"date"`
	NZDAUDRate float64 `json:"nzdAudRate"`
	NZDUSDRate float64 `json:"nzdUsdRate"`
}

// ARAgingBucket is one band of the receivables aging report.
type ARAgingBucket struct {
	Bucket     string  `json:"bucket"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type CollectionItem struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName"`
	Amount           float64   `json:"amount"`
	DaysOverdue      int       `json:"daysOverdue"`
	LastContact      string    `json:"lastContact"`
	PredictedPayDate string    `json:"predictedPayDate"`
	RiskLevel        RiskLevel `json:"riskLevel"`
	SuggestedAction  string    `json:"suggestedAction"`
	ContactScript    string    `json:"contactScript,omitempty"`
}

type GSTObligation struct {
	Period           string  `json:"period"`
	DueDate          string  `json:"dueDate"`
	EstimatedAmount  float64 `json:"estimatedAmount"`
	Status           string  `json:"status"` // upcoming, due, paid, overdue
	TaxableSupplies  float64 `json:"taxableSupplies"`
	ZeroRatedExports float64 `json:"zeroRatedExports"`
	InputTaxCredits  float64 `json:"inputTaxCredits"`
}

type PayrollObligation struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"` // salary, wages, kiwisaver, acc, paye
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Frequency   string  `json:"frequency"`
	Employees   int     `json:"employees"`
}

type Obligation struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"` // payroll, tax, invoice, loan
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
}

// Urgency orders alerts in the feed; see alerts.Rank.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Alert is a proactive CFO alert surfaced on the alerts feed.
type Alert struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"` // warning, opportunity, critical, info
	Category         string   `json:"category"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Insight          string   `json:"insight"`
	Impact           string   `json:"impact"`
	Urgency          Urgency  `json:"urgency"`
	EstimatedSavings float64  `json:"estimatedSavings,omitempty"`
	EstimatedRisk    float64  `json:"estimatedRisk,omitempty"`
	Actions          []string `json:"actions"`
	CreatedAt        string   `json:"createdAt"`
	Dismissed        bool     `json:"dismissed"`
	BusinessContext  string   `json:"businessContext"`
	RelatedMetrics   []string `json:"relatedMetrics,omitempty"`
}

type Insight struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Severity    string  `json:"severity"` // info, warning, positive
	Actionable  bool    `json:"actionable"`
	Suggestion  string  `json:"suggestion,omitempty"`
	Impact      string  `json:"impact,omitempty"`
}

type HeadcountPlan struct {
	Role       string  `json:"role"`
	Salary     float64 `json:"salary"`
	StartMonth int     `json:"startMonth"`
}

type ScenarioParameters struct {
	Headcount            []HeadcountPlan `json:"headcount"`
	MarketingSpendChange float64         `json:"marketingSpendChange"`
	PricingChange        float64         `json:"pricingChange"`
	PaymentTermsDays     int             `json:"paymentTermsDays"`
}

// ScenarioResults holds author-supplied outcome figures. They are not
// recomputed when parameters change; callers own keeping them honest.
type ScenarioResults struct {
	RunwayChange   float64 `json:"runwayChange"`
	BreakEvenMonth int     `json:"breakEvenMonth"`
	CashflowImpact float64 `json:"cashflowImpact"`
}

type Scenario struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	IsBaseline  bool               `json:"isBaseline"`
	Parameters  ScenarioParameters `json:"parameters"`
	Results     ScenarioResults    `json:"results"`
}

type KPIDelta struct {
	Name string  `json:"name"`
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

type ChatMessage struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"` // user, assistant
	Content   string     `json:"content"`
	Timestamp string     `json:"timestamp"`
	KPIDeltas []KPIDelta `json:"kpiDeltas,omitempty"`
	Actions   []string   `json:"actions,omitempty"`
}

type Conversation struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	LastMessage string        `json:"lastMessage"`
	Timestamp   string        `json:"timestamp"`
	Messages    []ChatMessage `json:"messages"`
}

// Construction fixtures.

type Project struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Client                 string  `json:"client"`
	Type                   string  `json:"type"`   // residential, commercial, renovation, maintenance
	Status                 string  `json:"status"` // quoted, active, completed, on-hold
	BudgetedCost           float64 `json:"budgetedCost"`
	ActualCost             float64 `json:"actualCost"`
	BudgetedRevenue        float64 `json:"budgetedRevenue"`
	ActualRevenue          float64 `json:"actualRevenue"`
	MarginPercent          float64 `json:"marginPercent"`
	StartDate              string  `json:"startDate"`
	ExpectedCompletionDate string  `json:"expectedCompletionDate"`
	ActualCompletionDate   string  `json:"actualCompletionDate,omitempty"`
	RetentionHeld          float64 `json:"retentionHeld"`
	RetentionReleaseDate   string  `json:"retentionReleaseDate,omitempty"`
	ProgressBillingPercent float64 `json:"progressBillingPercent"`
}

type WorkInProgress struct {
	ProjectID           string  `json:"projectId"`
	ProjectName         string  `json:"projectName"`
	Client              string  `json:"client"`
	ContractValue       float64 `json:"contractValue"`
	CostsToDate         float64 `json:"costsToDate"`
	BilledToDate        float64 `json:"billedToDate"`
	RemainingToBill     float64 `json:"remainingToBill"`
	PercentComplete     float64 `json:"percentComplete"`
	EstimatedCompletion string  `json:"estimatedCompletion"`
	MarginToDate        float64 `json:"marginToDate"`
}

type MaterialsCost struct {
	Category        string  `json:"category"`
	Budgeted        float64 `json:"budgeted"`
	Actual          float64 `json:"actual"`
	Variance        float64 `json:"variance"`
	VariancePercent float64 `json:"variancePercent"`
	LastUpdated     string  `json:"lastUpdated"`
}

type LaborEfficiency struct {
	ProjectID       string  `json:"projectId"`
	ProjectName     string  `json:"projectName"`
	BudgetedHours   float64 `json:"budgetedHours"`
	ActualHours     float64 `json:"actualHours"`
	Variance        float64 `json:"variance"`
	EfficiencyRatio float64 `json:"efficiencyRatio"`
	CostPerHour     float64 `json:"costPerHour"`
}

type RetentionClaim struct {
	ProjectID        string  `json:"projectId"`
	ProjectName      string  `json:"projectName"`
	Client           string  `json:"client"`
	RetentionAmount  float64 `json:"retentionAmount"`
	ReleaseDate      string  `json:"releaseDate"`
	DaysUntilRelease int     `json:"daysUntilRelease"`
	Status           string  `json:"status"`
}

type ProjectHistoryMonth struct {
	Month     string  `json:"month"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"`
	Margin    float64 `json:"margin"`
}

// RevenueBreakdown splits monthly revenue by source (NZD).
type RevenueBreakdown struct {
	SubscriptionMRR float64 `json:"subscriptionMRR"`
	BookingFees     float64 `json:"bookingFees"`
	AUDRevenue      float64 `json:"audRevenue"`
	OneOffServices  float64 `json:"oneOffServices"`
}

// ExpenseCategories splits monthly operating spend (NZD).
type ExpenseCategories struct {
	Payroll        float64 `json:"payroll"`
	Marketing      float64 `json:"marketing"`
	Infrastructure float64 `json:"infrastructure"`
	Office         float64 `json:"office"`
	Insurance      float64 `json:"insurance"`
	Legal          float64 `json:"legal"`
	Other          float64 `json:"other"`
}
