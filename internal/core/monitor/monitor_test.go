package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func sweepFixture(dismissed bool) []catalog.Alert {
	return []catalog.Alert{
		{ID: "cost-optimization-004", Urgency: catalog.UrgencyMedium},
		{ID: "runway-critical-001", Urgency: catalog.UrgencyCritical, Dismissed: dismissed},
	}
}

func TestSweepRunwayReinstatesDismissedAlert(t *testing.T) {
	alerts := sweepFixture(true)
	kpis := map[string]catalog.KPI{"runway": {Value: 6.8}}

	assert.True(t, SweepRunway(alerts, kpis, 9.0))
	assert.False(t, alerts[1].Dismissed)
}

func TestSweepRunwayLeavesActiveAlertAlone(t *testing.T) {
	alerts := sweepFixture(false)
	kpis := map[string]catalog.KPI{"runway": {Value: 6.8}}

	assert.False(t, SweepRunway(alerts, kpis, 9.0))
}

func TestSweepRunwayAboveFloor(t *testing.T) {
	alerts := sweepFixture(true)
	kpis := map[string]catalog.KPI{"runway": {Value: 12.5}}

	assert.False(t, SweepRunway(alerts, kpis, 9.0))
	assert.True(t, alerts[1].Dismissed, "alert stays dismissed while runway is healthy")
}

func TestSweepRunwayMissingKPI(t *testing.T) {
	alerts := sweepFixture(true)

	assert.False(t, SweepRunway(alerts, map[string]catalog.KPI{}, 9.0))
}
