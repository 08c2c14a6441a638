package services

import (
	"errors"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/alerts"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

var ErrAlertNotFound = errors.New("alert not found")

// AlertService serves the proactive alert feed from container state.
type AlertService struct {
	container *state.Container
}

func NewAlertService(container *state.Container) *AlertService {
	return &AlertService{container: container}
}

// Feed returns active alerts matching the raw filter value, sorted by
// priority. A positive limit truncates after sorting.
func (s *AlertService) Feed(filterRaw string, limit int) []catalog.Alert {
	snap := s.container.Snapshot()
	return alerts.Feed(snap.Alerts, alerts.ParseFilter(filterRaw), limit)
}

// Dismiss hides an alert from the feed. Dismissing twice is a no-op.
func (s *AlertService) Dismiss(id string) error {
	return s.container.Update(func(snap *state.Snapshot) error {
		if !alerts.Dismiss(snap.Alerts, id) {
			return ErrAlertNotFound
		}
		return nil
	})
}

// Stats summarizes the non-dismissed alerts.
func (s *AlertService) Stats() alerts.Stats {
	snap := s.container.Snapshot()
	return alerts.Summarize(snap.Alerts)
}
