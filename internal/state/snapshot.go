// Package state holds the mutable application state: scenarios,
// conversations, collection tasks, widget layouts, alerts, and the
// business profile, snapshotted as one versioned JSON document.
package state

import (
	"encoding/json"
	"fmt"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/core/widgets"
)

const (
	// StoreKey is the single key the snapshot is persisted under.
	StoreKey = "pocket-cfo-store"

	// SchemaVersion is the current snapshot schema. Snapshots written
	// by a newer build are refused rather than misread.
	SchemaVersion = 1
)

// CollectionTask tracks one piece of collections follow-up work.
type CollectionTask struct {
	ID           string   `json:"id"`
	CustomerID   string   `json:"customerId"`
	CustomerName string   `json:"customerName"`
	Amount       float64  `json:"amount"`
	DaysOverdue  int      `json:"daysOverdue"`
	Priority     string   `json:"priority"` // low, medium, high
	NextAction   string   `json:"nextAction"`
	DueDate      string   `json:"dueDate"`
	Status       string   `json:"status"` // pending, in_progress, completed, escalated
	Notes        []string `json:"notes"`
}

// Snapshot is the complete persisted application state.
type Snapshot struct {
	SchemaVersion        int                             `json:"schema_version"`
	Scenarios            []catalog.Scenario              `json:"scenarios"`
	ActiveScenarioID     string                          `json:"activeScenarioId"`
	Conversations        []catalog.Conversation          `json:"conversations"`
	ActiveConversationID string                          `json:"activeConversationId"`
	CollectionTasks      []CollectionTask                `json:"collectionTasks"`
	WidgetLayouts        map[string][]widgets.LayoutItem `json:"widgetLayouts"`
	Alerts               []catalog.Alert                 `json:"alerts"`
	Profile              industry.BusinessProfile        `json:"profile"`
}

// DefaultSnapshot seeds a fresh install from the catalog.
func DefaultSnapshot() Snapshot {
	scenarios := catalog.SeedScenarios()
	conversations := catalog.SeedConversations()

	snap := Snapshot{
		SchemaVersion:   SchemaVersion,
		Scenarios:       scenarios,
		Conversations:   conversations,
		CollectionTasks: []CollectionTask{},
		WidgetLayouts:   map[string][]widgets.LayoutItem{},
		Alerts:          catalog.SeedAlerts(),
		Profile:         industry.DefaultProfile(),
	}
	if len(scenarios) > 0 {
		snap.ActiveScenarioID = scenarios[0].ID
	}
	if len(conversations) > 0 {
		snap.ActiveConversationID = conversations[0].ID
	}
	return snap
}

// Encode serializes the snapshot with the current schema version.
func (s Snapshot) Encode() ([]byte, error) {
	s.SchemaVersion = SchemaVersion
	return json.Marshal(s)
}

// DecodeSnapshot parses a persisted snapshot. Snapshots from a newer
// schema are refused; older ones are migrated forward.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse state snapshot: %w", err)
	}
	if snap.SchemaVersion > SchemaVersion {
		return Snapshot{}, fmt.Errorf("state snapshot schema v%d is newer than supported v%d", snap.SchemaVersion, SchemaVersion)
	}
	return migrate(snap), nil
}

// migrate brings older snapshots up to the current schema. Pre-versioned
// snapshots (v0) carried the same layout, so only the version and any
// missing containers need filling in.
func migrate(snap Snapshot) Snapshot {
	snap.SchemaVersion = SchemaVersion
	if snap.CollectionTasks == nil {
		snap.CollectionTasks = []CollectionTask{}
	}
	if snap.WidgetLayouts == nil {
		snap.WidgetLayouts = map[string][]widgets.LayoutItem{}
	}
	if snap.Alerts == nil {
		snap.Alerts = catalog.SeedAlerts()
	}
	return snap
}
