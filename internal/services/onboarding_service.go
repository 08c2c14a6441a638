package services

import (
	"github.com/google/uuid"

	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

// OnboardingService manages the business profile captured during setup.
type OnboardingService struct {
	container *state.Container
}

func NewOnboardingService(container *state.Container) *OnboardingService {
	return &OnboardingService{container: container}
}

// Profile returns the stored business profile.
func (s *OnboardingService) Profile() industry.BusinessProfile {
	return s.container.Snapshot().Profile
}

// SaveProfile validates and stores the profile, marking setup complete.
// The stored id survives re-saves.
func (s *OnboardingService) SaveProfile(profile industry.BusinessProfile) (industry.BusinessProfile, error) {
	if err := profile.Validate(); err != nil {
		return industry.BusinessProfile{}, err
	}

	err := s.container.Update(func(snap *state.Snapshot) error {
		if profile.ID == "" {
			profile.ID = snap.Profile.ID
		}
		if profile.ID == "" {
			profile.ID = uuid.NewString()
		}
		if profile.PrimaryChallenges == nil {
			profile.PrimaryChallenges = []string{}
		}
		profile.SetupComplete = true
		snap.Profile = profile
		return nil
	})
	if err != nil {
		return industry.BusinessProfile{}, err
	}
	return profile, nil
}

// Industries lists the selectable industries for the setup flow.
func (s *OnboardingService) Industries() []industry.Industry {
	return industry.Available()
}
