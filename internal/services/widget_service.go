package services

import (
	"errors"
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/core/widgets"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

var (
	ErrWidgetNotFound     = errors.New("widget not found")
	ErrWidgetAlreadyAdded = errors.New("widget already on the dashboard")
)

// WidgetService manages per-industry dashboard layouts. Layouts
// initialize lazily from the industry's default widget set the first
// time an industry's dashboard is opened.
type WidgetService struct {
	container *state.Container
}

func NewWidgetService(container *state.Container) *WidgetService {
	return &WidgetService{container: container}
}

// Layout returns the layout for an industry, creating the default one
// on first access.
func (s *WidgetService) Layout(industryID string) ([]widgets.LayoutItem, error) {
	catalogWidgets, err := industry.WidgetCatalog(industryID)
	if err != nil {
		return nil, err
	}

	snap := s.container.Snapshot()
	if layout, ok := snap.WidgetLayouts[industryID]; ok {
		return layout, nil
	}

	layout := widgets.DefaultLayout(catalogWidgets)
	err = s.container.Update(func(snap *state.Snapshot) error {
		// Another request may have initialized it meanwhile.
		if existing, ok := snap.WidgetLayouts[industryID]; ok {
			layout = existing
			return nil
		}
		snap.WidgetLayouts[industryID] = layout
		return nil
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// Pool returns the catalog widgets not yet on the industry's dashboard.
func (s *WidgetService) Pool(industryID string) ([]widgets.Widget, error) {
	catalogWidgets, err := industry.WidgetCatalog(industryID)
	if err != nil {
		return nil, err
	}
	layout, err := s.Layout(industryID)
	if err != nil {
		return nil, err
	}
	return widgets.Pool(catalogWidgets, layout), nil
}

// Add puts a catalog widget at the end of the layout, enabled.
func (s *WidgetService) Add(industryID, widgetID string) ([]widgets.LayoutItem, error) {
	catalogWidgets, err := industry.WidgetCatalog(industryID)
	if err != nil {
		return nil, err
	}

	var target *widgets.Widget
	for i := range catalogWidgets {
		if catalogWidgets[i].ID == widgetID {
			target = &catalogWidgets[i]
			break
		}
	}
	if target == nil {
		return nil, ErrWidgetNotFound
	}

	if _, err := s.Layout(industryID); err != nil {
		return nil, err
	}

	var result []widgets.LayoutItem
	err = s.container.Update(func(snap *state.Snapshot) error {
		layout, ok := widgets.Add(snap.WidgetLayouts[industryID], *target)
		if !ok {
			return ErrWidgetAlreadyAdded
		}
		snap.WidgetLayouts[industryID] = layout
		result = layout
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Remove takes a widget off the dashboard and renumbers positions.
func (s *WidgetService) Remove(industryID, widgetID string) ([]widgets.LayoutItem, error) {
	return s.mutateLayout(industryID, func(layout []widgets.LayoutItem) ([]widgets.LayoutItem, bool) {
		return widgets.Remove(layout, widgetID)
	})
}

// Toggle flips a widget's enabled flag in place.
func (s *WidgetService) Toggle(industryID, widgetID string) ([]widgets.LayoutItem, error) {
	return s.mutateLayout(industryID, func(layout []widgets.LayoutItem) ([]widgets.LayoutItem, bool) {
		return layout, widgets.Toggle(layout, widgetID)
	})
}

// Move shifts a widget one slot up or down. Boundary moves are no-ops.
func (s *WidgetService) Move(industryID, widgetID, direction string) ([]widgets.LayoutItem, error) {
	switch direction {
	case "up":
		return s.mutateLayout(industryID, func(layout []widgets.LayoutItem) ([]widgets.LayoutItem, bool) {
			return layout, widgets.MoveUp(layout, widgetID)
		})
	case "down":
		return s.mutateLayout(industryID, func(layout []widgets.LayoutItem) ([]widgets.LayoutItem, bool) {
			return layout, widgets.MoveDown(layout, widgetID)
		})
	default:
		return nil, fmt.Errorf("invalid move direction: %s", direction)
	}
}

// Reset restores the industry's default layout.
func (s *WidgetService) Reset(industryID string) ([]widgets.LayoutItem, error) {
	catalogWidgets, err := industry.WidgetCatalog(industryID)
	if err != nil {
		return nil, err
	}

	layout := widgets.DefaultLayout(catalogWidgets)
	err = s.container.Update(func(snap *state.Snapshot) error {
		snap.WidgetLayouts[industryID] = layout
		return nil
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func (s *WidgetService) mutateLayout(industryID string, op func([]widgets.LayoutItem) ([]widgets.LayoutItem, bool)) ([]widgets.LayoutItem, error) {
	if _, err := s.Layout(industryID); err != nil {
		return nil, err
	}

	var result []widgets.LayoutItem
	err := s.container.Update(func(snap *state.Snapshot) error {
		layout, ok := op(snap.WidgetLayouts[industryID])
		if !ok {
			return ErrWidgetNotFound
		}
		snap.WidgetLayouts[industryID] = layout
		result = layout
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
