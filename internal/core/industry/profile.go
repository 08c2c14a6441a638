package industry

import "errors"

var ErrBusinessNameRequired = errors.New("business name is required")

// BusinessProfile is the onboarding record describing the business.
type BusinessProfile struct {
	ID                string   `json:"id"`
	BusinessName      string   `json:"businessName"`
	Industry          string   `json:"industry"`
	CompanySize       string   `json:"companySize"`
	Location          string   `json:"location"`
	AnnualRevenue     string   `json:"annualRevenue"`
	BusinessType      string   `json:"businessType"`
	PrimaryChallenges []string `json:"primaryChallenges"`
	SetupComplete     bool     `json:"setupComplete"`
}

// DefaultProfile is the blank profile a fresh install starts from.
func DefaultProfile() BusinessProfile {
	return BusinessProfile{PrimaryChallenges: []string{}}
}

// Validate rejects profiles that cannot be saved. The business name is
// the only hard requirement; an industry, when given, must be known.
func (p BusinessProfile) Validate() error {
	if p.BusinessName == "" {
		return ErrBusinessNameRequired
	}
	if p.Industry != "" {
		if _, ok := Resolve(p.Industry); !ok {
			return errors.New("unknown industry " + p.Industry)
		}
	}
	return nil
}
