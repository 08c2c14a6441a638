package state

import (
	"sync"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/widgets"
)

// PersistHook receives a copy of the snapshot after every mutation.
// Implementations own their error handling; a failing hook must not
// roll back the in-memory state.
type PersistHook func(Snapshot)

// Container guards the snapshot behind a mutex. All mutations go
// through Update so they apply atomically and trigger the persist hook.
type Container struct {
	mu      sync.Mutex
	snap    Snapshot
	persist PersistHook
}

// NewContainer wraps an initial snapshot. The hook may be nil.
func NewContainer(initial Snapshot, persist PersistHook) *Container {
	return &Container{snap: initial, persist: persist}
}

// Snapshot returns a deep copy of the current state.
func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.clone()
}

// Update applies fn to the state under lock. When fn succeeds the
// persist hook fires with a copy of the new state; when it errors the
// state is restored untouched.
func (c *Container) Update(fn func(*Snapshot) error) error {
	c.mu.Lock()
	working := c.snap.clone()
	if err := fn(&working); err != nil {
		c.mu.Unlock()
		return err
	}
	c.snap = working
	persisted := working.clone()
	c.mu.Unlock()

	if c.persist != nil {
		c.persist(persisted)
	}
	return nil
}

func (s Snapshot) clone() Snapshot {
	out := s

	out.Scenarios = make([]catalog.Scenario, len(s.Scenarios))
	for i, scn := range s.Scenarios {
		scn.Parameters.Headcount = append([]catalog.HeadcountPlan(nil), scn.Parameters.Headcount...)
		out.Scenarios[i] = scn
	}

	out.Conversations = make([]catalog.Conversation, len(s.Conversations))
	for i, conv := range s.Conversations {
		msgs := make([]catalog.ChatMessage, len(conv.Messages))
		for j, m := range conv.Messages {
			m.KPIDeltas = append([]catalog.KPIDelta(nil), m.KPIDeltas...)
			m.Actions = append([]string(nil), m.Actions...)
			msgs[j] = m
		}
		conv.Messages = msgs
		out.Conversations[i] = conv
	}

	out.CollectionTasks = make([]CollectionTask, len(s.CollectionTasks))
	for i, task := range s.CollectionTasks {
		task.Notes = append([]string(nil), task.Notes...)
		out.CollectionTasks[i] = task
	}

	out.WidgetLayouts = make(map[string][]widgets.LayoutItem, len(s.WidgetLayouts))
	for key, layout := range s.WidgetLayouts {
		out.WidgetLayouts[key] = append([]widgets.LayoutItem(nil), layout...)
	}

	out.Alerts = make([]catalog.Alert, len(s.Alerts))
	for i, a := range s.Alerts {
		a.Actions = append([]string(nil), a.Actions...)
		a.RelatedMetrics = append([]string(nil), a.RelatedMetrics...)
		out.Alerts[i] = a
	}

	out.Profile.PrimaryChallenges = append([]string(nil), s.Profile.PrimaryChallenges...)

	return out
}
