// Package monitor runs the periodic health sweep over the financial
// data. It reinstates dismissed alerts when the condition behind them
// is still live.
package monitor

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/shared/utils"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

// runwayAlertID is the alert the sweep keeps alive while runway sits
// below the configured floor.
const runwayAlertID = "runway-critical-001"

// Monitor schedules the alert sweep on a cron expression.
type Monitor struct {
	cron      *cron.Cron
	container *state.Container
	floor     float64
	schedule  string
}

// New creates a monitor. floor is the runway level, in months, below
// which the runway alert must stay active.
func New(container *state.Container, schedule string, floor float64) *Monitor {
	return &Monitor{
		cron:      cron.New(),
		container: container,
		floor:     floor,
		schedule:  schedule,
	}
}

// Start registers the sweep and starts the cron loop.
func (m *Monitor) Start() error {
	log.Println("⏰ Starting alert monitor...")

	if _, err := m.cron.AddFunc(m.schedule, m.runSweep); err != nil {
		return fmt.Errorf("failed to schedule alert sweep: %w", err)
	}

	m.cron.Start()
	log.Printf("✅ Alert monitor started: %s", m.schedule)
	return nil
}

// Stop halts the cron loop. Running sweeps finish first.
func (m *Monitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("✅ Alert monitor stopped")
}

func (m *Monitor) runSweep() {
	err := m.container.Update(func(snap *state.Snapshot) error {
		template := "tourism"
		if cfg, ok := industry.Resolve(snap.Profile.Industry); ok {
			template = cfg.ID
		}
		dataset := catalog.DatasetFor(template)

		reinstated := SweepRunway(snap.Alerts, dataset.KPIs, m.floor)
		if reinstated {
			utils.LogWarn("Runway below floor, alert reinstated", map[string]interface{}{
				"floor":    m.floor,
				"industry": snap.Profile.Industry,
			})
		}
		return nil
	})
	if err != nil {
		utils.LogError("Alert sweep failed", err, nil)
	}
}

// SweepRunway re-activates the dismissed runway alert when the runway
// KPI is below floor. Returns true when an alert was reinstated.
func SweepRunway(alerts []catalog.Alert, kpis map[string]catalog.KPI, floor float64) bool {
	runway, ok := kpis["runway"]
	if !ok || runway.Value >= floor {
		return false
	}

	for i := range alerts {
		if alerts[i].ID == runwayAlertID && alerts[i].Dismissed {
			alerts[i].Dismissed = false
			return true
		}
	}
	return false
}
