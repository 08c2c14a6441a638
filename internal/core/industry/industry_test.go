package industry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNativeConfigs(t *testing.T) {
	cfg, ok := Resolve("tourism")
	require.True(t, ok)
	assert.Equal(t, "Tourism & Hospitality", cfg.Name)

	cfg, ok = Resolve("construction")
	require.True(t, ok)
	assert.Equal(t, "Construction & Trades", cfg.Name)
}

func TestResolveTemplatedIndustries(t *testing.T) {
	tests := []struct {
		industry string
		template string
	}{
		{industry: "retail", template: "tourism"},
		{industry: "services", template: "tourism"},
		{industry: "healthcare", template: "tourism"},
		{industry: "manufacturing", template: "construction"},
	}

	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			cfg, ok := Resolve(tt.industry)
			require.True(t, ok)
			want, _ := Resolve(tt.template)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, ok := Resolve("agriculture")
	assert.False(t, ok)
}

func TestAvailableTemplatesAreExplicit(t *testing.T) {
	for _, ind := range Available() {
		switch ind.ID {
		case "tourism", "construction":
			assert.Empty(t, ind.Template, "%s has native data", ind.ID)
		default:
			assert.NotEmpty(t, ind.Template, "%s must name its borrowed template", ind.ID)
		}
	}
}

func TestWidgetCatalog(t *testing.T) {
	catalog, err := WidgetCatalog("construction")
	require.NoError(t, err)
	assert.Len(t, catalog, 15, "10 universal + 5 construction widgets")

	_, err = WidgetCatalog("nope")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestProfileValidate(t *testing.T) {
	p := DefaultProfile()
	assert.ErrorIs(t, p.Validate(), ErrBusinessNameRequired)

	p.BusinessName = "Aroha Adventures"
	assert.NoError(t, p.Validate())

	p.Industry = "tourism"
	assert.NoError(t, p.Validate())

	p.Industry = "mining"
	assert.Error(t, p.Validate())
}
