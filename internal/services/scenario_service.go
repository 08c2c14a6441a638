package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
	"github.com/arohalabs/pocket-cfo-be/internal/core/scenario"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioService owns the what-if scenario lifecycle on top of the
// state container.
type ScenarioService struct {
	container *state.Container
}

func NewScenarioService(container *state.Container) *ScenarioService {
	return &ScenarioService{container: container}
}

// List returns all scenarios and the active selection.
func (s *ScenarioService) List() ([]catalog.Scenario, string) {
	snap := s.container.Snapshot()
	return snap.Scenarios, snap.ActiveScenarioID
}

func (s *ScenarioService) Get(id string) (catalog.Scenario, error) {
	snap := s.container.Snapshot()
	scn, ok := scenario.Find(snap.Scenarios, id)
	if !ok {
		return catalog.Scenario{}, ErrScenarioNotFound
	}
	return scn, nil
}

// Create adds a blank scenario and makes it the active selection.
func (s *ScenarioService) Create() (catalog.Scenario, error) {
	created := scenario.Default(uuid.NewString())
	err := s.container.Update(func(snap *state.Snapshot) error {
		snap.Scenarios = append(snap.Scenarios, created)
		snap.ActiveScenarioID = created.ID
		return nil
	})
	if err != nil {
		return catalog.Scenario{}, err
	}
	return created, nil
}

// Duplicate deep-copies an existing scenario and activates the copy.
func (s *ScenarioService) Duplicate(id string) (catalog.Scenario, error) {
	var created catalog.Scenario
	err := s.container.Update(func(snap *state.Snapshot) error {
		src, ok := scenario.Find(snap.Scenarios, id)
		if !ok {
			return ErrScenarioNotFound
		}
		created = scenario.Duplicate(src, uuid.NewString())
		snap.Scenarios = append(snap.Scenarios, created)
		snap.ActiveScenarioID = created.ID
		return nil
	})
	if err != nil {
		return catalog.Scenario{}, err
	}
	return created, nil
}

// Update replaces a scenario's editable fields. The id and the baseline
// flag are fixed at creation and cannot be changed here.
func (s *ScenarioService) Update(id string, updated catalog.Scenario) (catalog.Scenario, error) {
	var result catalog.Scenario
	err := s.container.Update(func(snap *state.Snapshot) error {
		for i := range snap.Scenarios {
			if snap.Scenarios[i].ID != id {
				continue
			}
			snap.Scenarios[i].Name = updated.Name
			snap.Scenarios[i].Description = updated.Description
			snap.Scenarios[i].Parameters = updated.Parameters
			snap.Scenarios[i].Results = updated.Results
			result = snap.Scenarios[i]
			return nil
		}
		return ErrScenarioNotFound
	})
	if err != nil {
		return catalog.Scenario{}, err
	}
	return result, nil
}

// Delete removes a scenario. A deleted active selection falls back to
// the first remaining scenario.
func (s *ScenarioService) Delete(id string) error {
	return s.container.Update(func(snap *state.Snapshot) error {
		remaining, active, found := scenario.Remove(snap.Scenarios, id, snap.ActiveScenarioID)
		if !found {
			return ErrScenarioNotFound
		}
		snap.Scenarios = remaining
		snap.ActiveScenarioID = active
		return nil
	})
}

// SetActive switches the active scenario selection.
func (s *ScenarioService) SetActive(id string) error {
	return s.container.Update(func(snap *state.Snapshot) error {
		if _, ok := scenario.Find(snap.Scenarios, id); !ok {
			return ErrScenarioNotFound
		}
		snap.ActiveScenarioID = id
		return nil
	})
}
