// Package scenario implements what-if scenario lifecycle operations.
// Results figures are author-supplied and never recomputed here.
package scenario

import (
	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

// Default returns the blank scenario created by the "new scenario"
// action. It carries neutral levers and placeholder results.
func Default(id string) catalog.Scenario {
	return catalog.Scenario{
		ID:          id,
		Name:        "New Scenario",
		Description: "Custom scenario",
		IsBaseline:  false,
		Parameters: catalog.ScenarioParameters{
			Headcount:            []catalog.HeadcountPlan{},
			MarketingSpendChange: 0,
			PricingChange:        0,
			PaymentTermsDays:     30,
		},
		Results: catalog.ScenarioResults{
			RunwayChange:   0,
			BreakEvenMonth: 18,
			CashflowImpact: 0,
		},
	}
}

// Duplicate deep-copies a scenario under a fresh id. The copy is never
// a baseline, whatever the source was.
func Duplicate(src catalog.Scenario, id string) catalog.Scenario {
	dup := src
	dup.ID = id
	dup.Name = src.Name + " (Copy)"
	dup.IsBaseline = false
	dup.Parameters.Headcount = make([]catalog.HeadcountPlan, len(src.Parameters.Headcount))
	copy(dup.Parameters.Headcount, src.Parameters.Headcount)
	return dup
}

// Remove deletes the scenario with the given id and resolves the active
// selection: an unrelated selection is kept, a deleted selection falls
// back to the first remaining scenario, or empty when none remain.
func Remove(scenarios []catalog.Scenario, id, activeID string) ([]catalog.Scenario, string, bool) {
	remaining := make([]catalog.Scenario, 0, len(scenarios))
	found := false
	for _, s := range scenarios {
		if s.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, s)
	}
	if !found {
		return scenarios, activeID, false
	}
	if activeID == id {
		if len(remaining) > 0 {
			activeID = remaining[0].ID
		} else {
			activeID = ""
		}
	}
	return remaining, activeID, true
}

// Find returns the scenario with the given id.
func Find(scenarios []catalog.Scenario, id string) (catalog.Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return catalog.Scenario{}, false
}
