package state

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func TestDefaultSnapshot(t *testing.T) {
	snap := DefaultSnapshot()

	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.Len(t, snap.Scenarios, 3)
	assert.Equal(t, "baseline", snap.ActiveScenarioID)
	assert.Len(t, snap.Conversations, 2)
	assert.Equal(t, "1", snap.ActiveConversationID)
	assert.Len(t, snap.Alerts, 9)
	assert.NotNil(t, snap.CollectionTasks)
	assert.NotNil(t, snap.WidgetLayouts)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	snap := DefaultSnapshot()
	snap.CollectionTasks = append(snap.CollectionTasks, CollectionTask{
		ID: "task-1", CustomerName: "Rotorua Experience Co", Amount: 12400,
		Priority: "high", Status: "pending", Notes: []string{"left voicemail"},
	})

	data, err := snap.Encode()
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestDecodeRefusesNewerSchema(t *testing.T) {
	data, err := json.Marshal(map[string]interface{}{"schema_version": SchemaVersion + 1})
	require.NoError(t, err)

	_, err = DecodeSnapshot(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestDecodeMigratesUnversionedSnapshot(t *testing.T) {
	// A v0 snapshot from before versioning: same layout, no version
	// field and missing containers.
	data := []byte(`{"scenarios":[{"id":"baseline","name":"Base Case"}],"conversations":[]}`)

	snap, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.NotNil(t, snap.CollectionTasks)
	assert.NotNil(t, snap.WidgetLayouts)
	assert.Len(t, snap.Alerts, 9, "missing alert feed reseeds from the catalog")
	require.Len(t, snap.Scenarios, 1)
	assert.Equal(t, "Base Case", snap.Scenarios[0].Name)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not json"))
	assert.Error(t, err)
}

func TestContainerUpdatePersistsAfterMutation(t *testing.T) {
	var persisted []Snapshot
	c := NewContainer(DefaultSnapshot(), func(s Snapshot) {
		persisted = append(persisted, s)
	})

	err := c.Update(func(s *Snapshot) error {
		s.ActiveScenarioID = "conservative"
		return nil
	})
	require.NoError(t, err)

	require.Len(t, persisted, 1)
	assert.Equal(t, "conservative", persisted[0].ActiveScenarioID)
	assert.Equal(t, "conservative", c.Snapshot().ActiveScenarioID)
}

func TestContainerUpdateErrorLeavesStateUntouched(t *testing.T) {
	var persistCalls int
	c := NewContainer(DefaultSnapshot(), func(Snapshot) { persistCalls++ })

	boom := errors.New("validation failed")
	err := c.Update(func(s *Snapshot) error {
		s.ActiveScenarioID = "garbage"
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, persistCalls)
	assert.Equal(t, "baseline", c.Snapshot().ActiveScenarioID)
}

func TestSnapshotIsolation(t *testing.T) {
	c := NewContainer(DefaultSnapshot(), nil)

	snap := c.Snapshot()
	snap.Scenarios[0].Name = "tampered"
	snap.Scenarios[0].Parameters.Headcount[0].Salary = 1
	snap.Conversations[0].Messages[0].Content = "tampered"
	snap.Alerts[0].Dismissed = true

	fresh := c.Snapshot()
	assert.Equal(t, "Base Case", fresh.Scenarios[0].Name)
	assert.Equal(t, 150000.0, fresh.Scenarios[0].Parameters.Headcount[0].Salary)
	assert.NotEqual(t, "tampered", fresh.Conversations[0].Messages[0].Content)
	assert.False(t, fresh.Alerts[0].Dismissed)
}

func TestContainerUpdateAppendsScenario(t *testing.T) {
	c := NewContainer(DefaultSnapshot(), nil)

	err := c.Update(func(s *Snapshot) error {
		s.Scenarios = append(s.Scenarios, catalog.Scenario{ID: "scn-new", Name: "New Scenario"})
		s.ActiveScenarioID = "scn-new"
		return nil
	})
	require.NoError(t, err)

	snap := c.Snapshot()
	assert.Len(t, snap.Scenarios, 4)
	assert.Equal(t, "scn-new", snap.ActiveScenarioID)
}
