package analytics

// ChartData represents generic chart data format
type ChartData struct {
	Type   string        `json:"type"`   // "line", "bar", "pie", "donut"
	Labels []string      `json:"labels"` // X-axis labels or pie segments
	Data   []ChartSeries `json:"data"`   // Y-axis data series
}

// ChartSeries represents a data series in a chart. Values may contain
// nil entries for months a series has no reading (e.g. actuals in a
// projection window).
type ChartSeries struct {
	Name   string        `json:"name"`
	Values []interface{} `json:"values"`
	Color  string        `json:"color,omitempty"`
}

// PieChartData represents pie chart specific data
type PieChartData struct {
	Type   string    `json:"type"` // "pie" or "donut"
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors,omitempty"`
}

// StatCard represents a summary statistic card
type StatCard struct {
	Title       string    `json:"title"`
	Value       string    `json:"value"`
	Change      float64   `json:"change"`       // Absolute change over the period
	ChangeLabel string    `json:"change_label"` // "vs last month", "30 days"
	Trend       string    `json:"trend"`        // "up", "down", "neutral"
	Sparkline   []float64 `json:"sparkline,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

// StatCardConfig controls how one KPI renders as a card.
type StatCardConfig struct {
	Title  string
	Format string // "number", "currency", "percentage", "months"
	Icon   string
}
