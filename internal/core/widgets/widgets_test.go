package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Widget {
	return []Widget{
		{ID: "cash-runway", Title: "Cash Runway", Type: TypeKPI, DefaultEnabled: true},
		{ID: "monthly-burn", Title: "Monthly Burn Rate", Type: TypeKPI, DefaultEnabled: true},
		{ID: "revenue-growth", Title: "Revenue Growth", Type: TypeChart, DefaultEnabled: true},
		{ID: "accounts-receivable", Title: "Accounts Receivable", Type: TypeTable, DefaultEnabled: false},
		{ID: "expense-breakdown", Title: "Expense Categories", Type: TypeChart, DefaultEnabled: false},
	}
}

func assertDensePositions(t *testing.T, layout []LayoutItem) {
	t.Helper()
	for i, item := range layout {
		require.Equal(t, i, item.Position, "position must match slice index")
	}
}

func TestDefaultLayout(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	require.Len(t, layout, 3)
	assert.Equal(t, "cash-runway", layout[0].Widget.ID)
	for _, item := range layout {
		assert.True(t, item.Enabled)
	}
	assertDensePositions(t, layout)
}

func TestAdd(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	layout, ok := Add(layout, testCatalog()[3])
	require.True(t, ok)
	require.Len(t, layout, 4)
	assert.Equal(t, "accounts-receivable", layout[3].Widget.ID)
	assert.True(t, layout[3].Enabled)
	assertDensePositions(t, layout)

	_, ok = Add(layout, testCatalog()[3])
	assert.False(t, ok, "duplicate ids are rejected")
}

func TestRemoveRenumbers(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	layout, ok := Remove(layout, "monthly-burn")
	require.True(t, ok)
	require.Len(t, layout, 2)
	assert.Equal(t, "cash-runway", layout[0].Widget.ID)
	assert.Equal(t, "revenue-growth", layout[1].Widget.ID)
	assertDensePositions(t, layout)

	_, ok = Remove(layout, "missing")
	assert.False(t, ok)
}

func TestToggle(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	require.True(t, Toggle(layout, "cash-runway"))
	assert.False(t, layout[0].Enabled)
	assert.Equal(t, 0, layout[0].Position, "toggle does not reorder")

	require.True(t, Toggle(layout, "cash-runway"))
	assert.True(t, layout[0].Enabled)

	assert.False(t, Toggle(layout, "missing"))
}

func TestMove(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	require.True(t, MoveUp(layout, "monthly-burn"))
	assert.Equal(t, "monthly-burn", layout[0].Widget.ID)
	assert.Equal(t, "cash-runway", layout[1].Widget.ID)
	assertDensePositions(t, layout)

	require.True(t, MoveDown(layout, "cash-runway"))
	assert.Equal(t, "cash-runway", layout[2].Widget.ID)
	assertDensePositions(t, layout)
}

func TestMoveBoundaries(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	require.True(t, MoveUp(layout, "cash-runway"), "top boundary is a known-id no-op")
	assert.Equal(t, "cash-runway", layout[0].Widget.ID)

	require.True(t, MoveDown(layout, "revenue-growth"), "bottom boundary is a known-id no-op")
	assert.Equal(t, "revenue-growth", layout[2].Widget.ID)
	assertDensePositions(t, layout)

	assert.False(t, MoveUp(layout, "missing"))
	assert.False(t, MoveDown(layout, "missing"))
}

func TestPool(t *testing.T) {
	layout := DefaultLayout(testCatalog())

	pool := Pool(testCatalog(), layout)
	require.Len(t, pool, 2)
	assert.Equal(t, "accounts-receivable", pool[0].ID)
	assert.Equal(t, "expense-breakdown", pool[1].ID)

	// Matching is case-sensitive.
	layout = append(layout, LayoutItem{Widget: Widget{ID: "Accounts-Receivable"}, Position: len(layout)})
	pool = Pool(testCatalog(), layout)
	assert.Len(t, pool, 2)
}
