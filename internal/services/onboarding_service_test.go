package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arohalabs/pocket-cfo-be/internal/core/industry"
	"github.com/arohalabs/pocket-cfo-be/internal/state"
)

func newOnboardingService() *OnboardingService {
	return NewOnboardingService(state.NewContainer(state.DefaultSnapshot(), nil))
}

func TestOnboardingServiceSaveProfile(t *testing.T) {
	svc := newOnboardingService()

	saved, err := svc.SaveProfile(industry.BusinessProfile{
		BusinessName: "Fiordland Adventures Ltd",
		Industry:     "tourism",
		CompanySize:  "5-10",
		Location:     "Te Anau",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.True(t, saved.SetupComplete)
	assert.Equal(t, saved, svc.Profile())

	// Re-saving keeps the id stable.
	saved.Location = "Queenstown"
	again, err := svc.SaveProfile(industry.BusinessProfile{
		BusinessName: "Fiordland Adventures Ltd",
		Industry:     "tourism",
		Location:     "Queenstown",
	})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
}

func TestOnboardingServiceRejectsInvalidProfile(t *testing.T) {
	svc := newOnboardingService()

	_, err := svc.SaveProfile(industry.BusinessProfile{Industry: "tourism"})
	assert.ErrorIs(t, err, industry.ErrBusinessNameRequired)

	_, err = svc.SaveProfile(industry.BusinessProfile{
		BusinessName: "Acme",
		Industry:     "aerospace",
	})
	assert.Error(t, err)
}

func TestOnboardingServiceIndustries(t *testing.T) {
	svc := newOnboardingService()

	industries := svc.Industries()
	assert.Len(t, industries, 6)
}
