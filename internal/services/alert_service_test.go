package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

func newAlertService() *AlertService {
	return NewAlertService(state.NewContainer(state.DefaultSnapshot(), nil))
}

func TestAlertServiceFeed(t *testing.T) {
	svc := newAlertService()

	feed := svc.Feed("all", 0)
	require.NotEmpty(t, feed)
	assert.Equal(t, catalog.UrgencyCritical, feed[0].Urgency)

	critical := svc.Feed("critical", 0)
	require.Len(t, critical, 1)
	assert.Equal(t, "runway-critical-001", critical[0].ID)

	limited := svc.Feed("all", 3)
	assert.Len(t, limited, 3)
}

func TestAlertServiceDismiss(t *testing.T) {
	svc := newAlertService()

	before := svc.Stats()
	require.NoError(t, svc.Dismiss("runway-critical-001"))

	after := svc.Stats()
	assert.Equal(t, before.Total-1, after.Total)
	assert.Equal(t, before.Critical-1, after.Critical)

	// Dismissing twice is harmless.
	require.NoError(t, svc.Dismiss("runway-critical-001"))
	assert.Equal(t, after, svc.Stats())

	assert.ErrorIs(t, svc.Dismiss("nope"), ErrAlertNotFound)
}

func TestAlertServiceStatsSeedTotals(t *testing.T) {
	svc := newAlertService()

	stats := svc.Stats()
	assert.Equal(t, 9, stats.Total)
	assert.Equal(t, 1, stats.Critical)
	assert.Equal(t, 2, stats.High)
	assert.Equal(t, 3, stats.Opportunities)
	assert.InDelta(t, 282800, stats.TotalSavings, 0.01)
	assert.InDelta(t, 631500, stats.TotalRisk, 0.01)
}
