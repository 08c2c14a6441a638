// Package widgets implements the customizable dashboard layout: a
// widget catalog plus an ordered selection with dense positions.
package widgets

// WidgetType distinguishes how a widget renders.
type WidgetType string

const (
	TypeKPI     WidgetType = "kpi"
	TypeChart   WidgetType = "chart"
	TypeTable   WidgetType = "table"
	TypeAlert   WidgetType = "alert"
	TypeInsight WidgetType = "insight"
)

type Widget struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Type             WidgetType `json:"type"`
	Category         string     `json:"category"`
	Description      string     `json:"description"`
	DataSource       string     `json:"dataSource"`
	IndustrySpecific bool       `json:"industrySpecific,omitempty"`
	Size             string     `json:"size"` // small, medium, large
	DefaultEnabled   bool       `json:"defaultEnabled"`
}

// LayoutItem is one selected widget on a dashboard. Positions always
// form a dense 0..N-1 sequence matching slice order.
type LayoutItem struct {
	Widget   Widget `json:"widget"`
	Enabled  bool   `json:"enabled"`
	Position int    `json:"position"`
}

func renumber(layout []LayoutItem) {
	for i := range layout {
		layout[i].Position = i
	}
}

// Add appends a widget to the end of the layout, enabled. Duplicate ids
// are rejected.
func Add(layout []LayoutItem, w Widget) ([]LayoutItem, bool) {
	for _, item := range layout {
		if item.Widget.ID == w.ID {
			return layout, false
		}
	}
	return append(layout, LayoutItem{Widget: w, Enabled: true, Position: len(layout)}), true
}

// Remove deletes a widget by id and renumbers the remaining positions.
func Remove(layout []LayoutItem, id string) ([]LayoutItem, bool) {
	idx := indexOf(layout, id)
	if idx < 0 {
		return layout, false
	}
	out := make([]LayoutItem, 0, len(layout)-1)
	out = append(out, layout[:idx]...)
	out = append(out, layout[idx+1:]...)
	renumber(out)
	return out, true
}

// Toggle flips the enabled flag without touching order.
func Toggle(layout []LayoutItem, id string) bool {
	idx := indexOf(layout, id)
	if idx < 0 {
		return false
	}
	layout[idx].Enabled = !layout[idx].Enabled
	return true
}

// MoveUp swaps the widget with its predecessor. Already at the top is a
// no-op that still reports the id as known.
func MoveUp(layout []LayoutItem, id string) bool {
	idx := indexOf(layout, id)
	if idx < 0 {
		return false
	}
	if idx > 0 {
		layout[idx-1], layout[idx] = layout[idx], layout[idx-1]
		renumber(layout)
	}
	return true
}

// MoveDown swaps the widget with its successor. Already at the bottom is
// a no-op that still reports the id as known.
func MoveDown(layout []LayoutItem, id string) bool {
	idx := indexOf(layout, id)
	if idx < 0 {
		return false
	}
	if idx < len(layout)-1 {
		layout[idx], layout[idx+1] = layout[idx+1], layout[idx]
		renumber(layout)
	}
	return true
}

// DefaultLayout builds the reset layout: every default-enabled widget
// from the catalog, in catalog order, all enabled.
func DefaultLayout(available []Widget) []LayoutItem {
	layout := make([]LayoutItem, 0, len(available))
	for _, w := range available {
		if w.DefaultEnabled {
			layout = append(layout, LayoutItem{Widget: w, Enabled: true, Position: len(layout)})
		}
	}
	return layout
}

// Pool returns the catalog widgets not currently in the layout.
// Matching is by exact id.
func Pool(available []Widget, layout []LayoutItem) []Widget {
	selected := make(map[string]struct{}, len(layout))
	for _, item := range layout {
		selected[item.Widget.ID] = struct{}{}
	}
	pool := make([]Widget, 0, len(available))
	for _, w := range available {
		if _, ok := selected[w.ID]; !ok {
			pool = append(pool, w)
		}
	}
	return pool
}

func indexOf(layout []LayoutItem, id string) int {
	for i, item := range layout {
		if item.Widget.ID == id {
			return i
		}
	}
	return -1
}
