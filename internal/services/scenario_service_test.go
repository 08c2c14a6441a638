package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

func newScenarioService() *ScenarioService {
	return NewScenarioService(state.NewContainer(state.DefaultSnapshot(), nil))
}

func TestScenarioServiceCreate(t *testing.T) {
	svc := newScenarioService()

	before, _ := svc.List()
	created, err := svc.Create()
	require.NoError(t, err)

	assert.Equal(t, "New Scenario", created.Name)
	assert.False(t, created.IsBaseline)

	after, active := svc.List()
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, active, "new scenario becomes active")
}

func TestScenarioServiceDuplicate(t *testing.T) {
	svc := newScenarioService()

	scenarios, _ := svc.List()
	src := scenarios[0]

	dup, err := svc.Duplicate(src.ID)
	require.NoError(t, err)

	assert.Equal(t, src.Name+" (Copy)", dup.Name)
	assert.False(t, dup.IsBaseline)
	assert.NotEqual(t, src.ID, dup.ID)

	_, active := svc.List()
	assert.Equal(t, dup.ID, active)
}

func TestScenarioServiceDuplicateUnknown(t *testing.T) {
	svc := newScenarioService()

	_, err := svc.Duplicate("nope")
	assert.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestScenarioServiceUpdatePreservesBaseline(t *testing.T) {
	svc := newScenarioService()

	scenarios, _ := svc.List()
	baseline := scenarios[0]
	require.True(t, baseline.IsBaseline)

	updated, err := svc.Update(baseline.ID, catalog.Scenario{
		Name:       "Renamed",
		IsBaseline: false,
		Parameters: catalog.ScenarioParameters{PaymentTermsDays: 45},
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.IsBaseline, "baseline flag cannot be cleared by update")
	assert.Equal(t, 45, updated.Parameters.PaymentTermsDays)
}

func TestScenarioServiceDeleteActiveFallsBack(t *testing.T) {
	svc := newScenarioService()

	scenarios, active := svc.List()
	require.Equal(t, scenarios[0].ID, active)

	require.NoError(t, svc.Delete(active))

	remaining, newActive := svc.List()
	assert.Len(t, remaining, len(scenarios)-1)
	assert.Equal(t, remaining[0].ID, newActive)
}

func TestScenarioServiceSetActive(t *testing.T) {
	svc := newScenarioService()

	scenarios, _ := svc.List()
	require.NoError(t, svc.SetActive(scenarios[1].ID))

	_, active := svc.List()
	assert.Equal(t, scenarios[1].ID, active)

	assert.ErrorIs(t, svc.SetActive("missing"), ErrScenarioNotFound)
}
