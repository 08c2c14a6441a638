package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyNonFinite(t *testing.T) {
	assert.Equal(t, "—", FormatCurrency(math.NaN(), "en-NZ"))
	assert.Equal(t, "—", FormatCurrency(math.Inf(1), "en-NZ"))
	assert.Equal(t, "—", FormatCurrency(math.Inf(-1), "en-US"))
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(24.98, "en-NZ")
	assert.Contains(t, got, "24.98")

	got = FormatCurrency(24.98, "en-US")
	assert.Contains(t, got, "$")
}

func TestFormatCurrencyUnknownLocaleFallsBack(t *testing.T) {
	assert.Equal(t, FormatCurrency(100, "en-NZ"), FormatCurrency(100, "fr-FR"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.3%", FormatPercent(12.3, "en-NZ"))
	assert.Equal(t, "—", FormatPercent(math.NaN(), "en-NZ"))
}
