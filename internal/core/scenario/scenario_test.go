package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func TestDefault(t *testing.T) {
	s := Default("scn-1")

	assert.Equal(t, "scn-1", s.ID)
	assert.Equal(t, "New Scenario", s.Name)
	assert.False(t, s.IsBaseline)
	assert.Empty(t, s.Parameters.Headcount)
	assert.Zero(t, s.Parameters.MarketingSpendChange)
	assert.Zero(t, s.Parameters.PricingChange)
	assert.Equal(t, 30, s.Parameters.PaymentTermsDays)
	assert.Equal(t, catalog.ScenarioResults{RunwayChange: 0, BreakEvenMonth: 18, CashflowImpact: 0}, s.Results)
}

func TestDuplicate(t *testing.T) {
	src := catalog.SeedScenarios()[0] // Base Case, baseline
	dup := Duplicate(src, "scn-copy")

	assert.Equal(t, "scn-copy", dup.ID)
	assert.Equal(t, "Base Case (Copy)", dup.Name)
	assert.False(t, dup.IsBaseline, "copies are never baselines")
	assert.Equal(t, src.Parameters, dup.Parameters)
	assert.Equal(t, src.Results, dup.Results)
}

func TestDuplicateDeepCopiesHeadcount(t *testing.T) {
	src := catalog.SeedScenarios()[0]
	dup := Duplicate(src, "scn-copy")

	dup.Parameters.Headcount[0].Salary = 999999
	assert.Equal(t, 150000.0, src.Parameters.Headcount[0].Salary)
}

func TestRemove(t *testing.T) {
	t.Run("removing the active scenario falls back to first remaining", func(t *testing.T) {
		scenarios := catalog.SeedScenarios()
		remaining, active, ok := Remove(scenarios, "baseline", "baseline")
		require.True(t, ok)
		assert.Len(t, remaining, 2)
		assert.Equal(t, "conservative", active)
	})

	t.Run("removing another scenario keeps the selection", func(t *testing.T) {
		scenarios := catalog.SeedScenarios()
		remaining, active, ok := Remove(scenarios, "aggressive", "baseline")
		require.True(t, ok)
		assert.Len(t, remaining, 2)
		assert.Equal(t, "baseline", active)
	})

	t.Run("removing the last scenario clears the selection", func(t *testing.T) {
		scenarios := []catalog.Scenario{{ID: "only"}}
		remaining, active, ok := Remove(scenarios, "only", "only")
		require.True(t, ok)
		assert.Empty(t, remaining)
		assert.Equal(t, "", active)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		scenarios := catalog.SeedScenarios()
		remaining, active, ok := Remove(scenarios, "nope", "baseline")
		assert.False(t, ok)
		assert.Len(t, remaining, 3)
		assert.Equal(t, "baseline", active)
	})
}

func TestFind(t *testing.T) {
	s, ok := Find(catalog.SeedScenarios(), "conservative")
	require.True(t, ok)
	assert.Equal(t, "Conservative", s.Name)

	_, ok = Find(catalog.SeedScenarios(), "missing")
	assert.False(t, ok)
}
