// Package alerts implements the proactive alert feed: filtering,
// ordering, dismissal, and summary statistics.
package alerts

import (
	"sort"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

// Rank maps urgency to its sort weight. Unknown urgencies sink to the
// bottom of the feed.
func Rank(u catalog.Urgency) int {
	switch u {
	case catalog.UrgencyCritical:
		return 4
	case catalog.UrgencyHigh:
		return 3
	case catalog.UrgencyMedium:
		return 2
	case catalog.UrgencyLow:
		return 1
	default:
		return 0
	}
}

type filterKind int

const (
	filterAll filterKind = iota
	filterCritical
	filterCategory
)

// Filter selects which alerts appear in the feed. "Critical" is not a
// category on the alert record; it matches on urgency instead, so it
// gets its own case rather than being folded into the category match.
type Filter struct {
	kind     filterKind
	category string
}

func All() Filter { return Filter{kind: filterAll} }

func Critical() Filter { return Filter{kind: filterCritical} }

func Category(name string) Filter { return Filter{kind: filterCategory, category: name} }

// ParseFilter maps the wire value to a filter. "all" and "" select
// everything, "critical" is the urgency pseudo-filter, anything else is
// an exact category match.
func ParseFilter(raw string) Filter {
	switch raw {
	case "", "all":
		return All()
	case "critical":
		return Critical()
	default:
		return Category(raw)
	}
}

func (f Filter) Matches(a catalog.Alert) bool {
	switch f.kind {
	case filterCritical:
		return a.Urgency == catalog.UrgencyCritical
	case filterCategory:
		return a.Category == f.category
	default:
		return true
	}
}

// SortByPriority orders a copy of the alerts by urgency rank descending,
// ties broken by createdAt descending (newest first). Timestamps are
// RFC 3339 so lexicographic order is chronological order.
func SortByPriority(alerts []catalog.Alert) []catalog.Alert {
	sorted := make([]catalog.Alert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := Rank(sorted[i].Urgency), Rank(sorted[j].Urgency)
		if ri != rj {
			return ri > rj
		}
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	return sorted
}

// Feed returns the active alerts matching the filter, sorted by
// priority. A positive limit truncates the result after sorting.
func Feed(alerts []catalog.Alert, f Filter, limit int) []catalog.Alert {
	active := make([]catalog.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Dismissed {
			continue
		}
		if f.Matches(a) {
			active = append(active, a)
		}
	}
	sorted := SortByPriority(active)
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}

// Dismiss marks the alert with the given id as dismissed in place.
// Already-dismissed alerts are left alone; unknown ids report false.
func Dismiss(alerts []catalog.Alert, id string) bool {
	for i := range alerts {
		if alerts[i].ID == id {
			alerts[i].Dismissed = true
			return true
		}
	}
	return false
}

// Stats summarizes the non-dismissed alerts in a single pass.
type Stats struct {
	Total          int            `json:"total"`
	Critical       int            `json:"critical"`
	High           int            `json:"high"`
	Opportunities  int            `json:"opportunities"`
	TotalSavings   float64        `json:"totalSavings"`
	TotalRisk      float64        `json:"totalRisk"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

func Summarize(alerts []catalog.Alert) Stats {
	stats := Stats{CategoryCounts: make(map[string]int)}
	for _, a := range alerts {
		if a.Dismissed {
			continue
		}
		stats.Total++
		stats.CategoryCounts[a.Category]++
		switch a.Urgency {
		case catalog.UrgencyCritical:
			stats.Critical++
		case catalog.UrgencyHigh:
			stats.High++
		}
		if a.Type == "opportunity" {
			stats.Opportunities++
		}
		stats.TotalSavings += a.EstimatedSavings
		stats.TotalRisk += a.EstimatedRisk
	}
	return stats
}
