package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func testAlerts() []catalog.Alert {
	return []catalog.Alert{
		{ID: "a-low", Urgency: catalog.UrgencyLow, Category: "efficiency", Type: "warning", CreatedAt: "2024-12-26T13:20:00Z"},
		{ID: "a-critical", Urgency: catalog.UrgencyCritical, Category: "cashflow", Type: "critical", CreatedAt: "2024-12-28T10:30:00Z", EstimatedRisk: 420000},
		{ID: "a-high-old", Urgency: catalog.UrgencyHigh, Category: "risk", Type: "warning", CreatedAt: "2024-12-27T09:00:00Z", EstimatedRisk: 180000},
		{ID: "a-high-new", Urgency: catalog.UrgencyHigh, Category: "growth", Type: "opportunity", CreatedAt: "2024-12-28T07:20:00Z", EstimatedSavings: 128000},
		{ID: "a-medium", Urgency: catalog.UrgencyMedium, Category: "compliance", Type: "opportunity", CreatedAt: "2024-12-28T08:45:00Z", EstimatedSavings: 50400},
		{ID: "a-dismissed", Urgency: catalog.UrgencyCritical, Category: "cashflow", Type: "critical", CreatedAt: "2024-12-28T11:00:00Z", Dismissed: true},
	}
}

func TestSortByPriority(t *testing.T) {
	sorted := SortByPriority(testAlerts())

	ids := make([]string, 0, len(sorted))
	for _, a := range sorted {
		ids = append(ids, a.ID)
	}

	// Urgency rank descending; within the same rank newest first.
	// Dismissed alerts are not SortByPriority's concern.
	assert.Equal(t, []string{"a-dismissed", "a-critical", "a-high-new", "a-high-old", "a-medium", "a-low"}, ids)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := testAlerts()
	SortByPriority(in)
	assert.Equal(t, "a-low", in[0].ID)
}

func TestFeed(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		limit  int
		want   []string
	}{
		{
			name:   "all excludes dismissed and sorts",
			filter: All(),
			want:   []string{"a-critical", "a-high-new", "a-high-old", "a-medium", "a-low"},
		},
		{
			name:   "critical matches urgency not category",
			filter: Critical(),
			want:   []string{"a-critical"},
		},
		{
			name:   "category exact match",
			filter: Category("risk"),
			want:   []string{"a-high-old"},
		},
		{
			name:   "unknown category matches nothing",
			filter: Category("Cashflow"),
			want:   []string{},
		},
		{
			name:   "limit truncates after sorting",
			filter: All(),
			limit:  2,
			want:   []string{"a-critical", "a-high-new"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Feed(testAlerts(), tt.filter, tt.limit)
			ids := make([]string, 0, len(got))
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, All(), ParseFilter(""))
	assert.Equal(t, All(), ParseFilter("all"))
	assert.Equal(t, Critical(), ParseFilter("critical"))
	assert.Equal(t, Category("cashflow"), ParseFilter("cashflow"))
}

func TestDismiss(t *testing.T) {
	alerts := testAlerts()

	require.True(t, Dismiss(alerts, "a-critical"))
	assert.True(t, alerts[1].Dismissed)

	// Idempotent: dismissing again still reports the id as known.
	require.True(t, Dismiss(alerts, "a-critical"))
	assert.True(t, alerts[1].Dismissed)

	assert.False(t, Dismiss(alerts, "no-such-alert"))
}

func TestSummarize(t *testing.T) {
	stats := Summarize(testAlerts())

	assert.Equal(t, 5, stats.Total, "dismissed alerts excluded")
	assert.Equal(t, 1, stats.Critical)
	assert.Equal(t, 2, stats.High)
	assert.Equal(t, 2, stats.Opportunities)
	assert.Equal(t, 178400.0, stats.TotalSavings)
	assert.Equal(t, 600000.0, stats.TotalRisk)
	assert.Equal(t, 1, stats.CategoryCounts["cashflow"])
	assert.Equal(t, 1, stats.CategoryCounts["risk"])
}

func TestSummarizeCatalogSeed(t *testing.T) {
	stats := Summarize(catalog.SeedAlerts())

	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 1, stats.Critical)
	assert.Equal(t, 2, stats.High)
	assert.Equal(t, 3, stats.Opportunities)
	assert.Equal(t, 282800.0, stats.TotalSavings)
	assert.Equal(t, 631500.0, stats.TotalRisk)
}
