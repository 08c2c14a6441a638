package metrics

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type localeSpec struct {
	tag  language.Tag
	unit currency.Unit
}

var locales = map[string]localeSpec{
	"en-NZ": {language.MustParse("en-NZ"), currency.NZD},
	"en-US": {language.AmericanEnglish, currency.USD},
}

// FormatCurrency renders an amount in the given locale ("en-NZ" and
// "en-US" are supported; anything else falls back to en-NZ).
// Non-finite values render as an em dash placeholder.
func FormatCurrency(amount float64, locale string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "—"
	}
	spec, ok := locales[locale]
	if !ok {
		spec = locales["en-NZ"]
	}
	p := message.NewPrinter(spec.tag)
	return p.Sprintf("%v", currency.Symbol(spec.unit.Amount(amount)))
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(value float64, locale string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "—"
	}
	spec, ok := locales[locale]
	if !ok {
		spec = locales["en-NZ"]
	}
	p := message.NewPrinter(spec.tag)
	return p.Sprintf("%.1f%%", value)
}
