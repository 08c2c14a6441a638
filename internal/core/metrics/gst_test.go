package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

func TestNetGSTPayable(t *testing.T) {
	// Nov-Dec 2024 period: 102600 taxable, 4730 input credits.
	got := NetGSTPayable(102600, 4730)
	require.Equal(t, 10660.0, got)
}

func TestGSTOnSalesExcludesZeroRatedExports(t *testing.T) {
	o := catalog.GSTObligations[0]
	b := BreakdownGST(o)

	assert.Equal(t, 15390.0, b.GSTOnSales, "sales GST is 15%% of taxable supplies only")
	assert.Equal(t, 8900.0, b.ZeroRatedExports, "exports are reported but not taxed")
	assert.Equal(t, 10660.0, b.NetPayable)
}

func TestCurrentGSTObligation(t *testing.T) {
	t.Run("returns first unpaid period", func(t *testing.T) {
		o, ok := CurrentGSTObligation(catalog.GSTObligations)
		require.True(t, ok)
		assert.Equal(t, "Nov-Dec 2024", o.Period)
	})

	t.Run("falls back to most recent when all paid", func(t *testing.T) {
		paid := []catalog.GSTObligation{
			{Period: "Nov-Dec 2024", Status: "paid"},
			{Period: "Sep-Oct 2024", Status: "paid"},
		}
		o, ok := CurrentGSTObligation(paid)
		require.True(t, ok)
		assert.Equal(t, "Nov-Dec 2024", o.Period)
	})

	t.Run("empty list", func(t *testing.T) {
		_, ok := CurrentGSTObligation(nil)
		assert.False(t, ok)
	})
}
