package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

func newDashboardService() *DashboardService {
	return NewDashboardService(state.NewContainer(state.DefaultSnapshot(), nil))
}

func TestDashboardOverviewTourism(t *testing.T) {
	svc := newDashboardService()

	overview := svc.Overview("tourism")

	assert.Equal(t, "tourism", overview.Industry)
	require.Len(t, overview.KPICards, 6)
	assert.Equal(t, "Cash Runway", overview.KPICards[0].Title)
	assert.Equal(t, "6.8 months", overview.KPICards[0].Value)

	assert.Contains(t, overview.Charts, "cashflow")
	assert.Contains(t, overview.Charts, "seasonality")
	assert.Contains(t, overview.Charts, "fxRates")
	assert.Contains(t, overview.Charts, "revenueBreakdown")
	assert.NotEmpty(t, overview.Insights)
	assert.NotEmpty(t, overview.Obligations)
}

func TestDashboardOverviewTemplatedIndustry(t *testing.T) {
	svc := newDashboardService()

	// Retail has no native dataset and borrows the tourism one.
	overview := svc.Overview("retail")
	assert.Equal(t, "tourism", overview.Industry)
}

func TestDashboardOverviewConstruction(t *testing.T) {
	svc := newDashboardService()

	overview := svc.Overview("construction")

	assert.Equal(t, "construction", overview.Industry)
	require.Len(t, overview.KPICards, 8)
	assert.Contains(t, overview.Charts, "projectHistory")
	assert.NotContains(t, overview.Charts, "seasonality")
}

func TestDashboardOverviewFallsBackToProfile(t *testing.T) {
	container := state.NewContainer(state.DefaultSnapshot(), nil)
	require.NoError(t, container.Update(func(snap *state.Snapshot) error {
		snap.Profile = industry.BusinessProfile{
			BusinessName:      "Southern Builds",
			Industry:          "construction",
			PrimaryChallenges: []string{},
		}
		return nil
	}))

	overview := NewDashboardService(container).Overview("")
	assert.Equal(t, "construction", overview.Industry)
}

func TestDashboardOverviewUnknownIndustryDefaultsToTourism(t *testing.T) {
	svc := newDashboardService()

	overview := svc.Overview("lunar-mining")
	assert.Equal(t, "tourism", overview.Industry)
}
