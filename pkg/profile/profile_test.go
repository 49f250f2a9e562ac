package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsWellFormedProfile(t *testing.T) {
	assert.NoError(t, sampleProfile().Validate())
}

func TestValidateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BudgetProfile)
	}{
		{"negative income", func(p *BudgetProfile) { p.Income = -1 }},
		{"underage", func(p *BudgetProfile) { p.Age = 17 }},
		{"over max age", func(p *BudgetProfile) { p.Age = 101 }},
		{"negative dependents", func(p *BudgetProfile) { p.Dependents = -1 }},
		{"unknown occupation", func(p *BudgetProfile) { p.Occupation = "Freelancer" }},
		{"unknown city tier", func(p *BudgetProfile) { p.CityTier = "Tier_4" }},
		{"savings percentage over 100", func(p *BudgetProfile) { p.DesiredSavingsPercentage = 101 }},
		{"negative savings percentage", func(p *BudgetProfile) { p.DesiredSavingsPercentage = -5 }},
		{"negative expense", func(p *BudgetProfile) { p.Utilities = -10 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := sampleProfile()
			c.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestOccupationValid(t *testing.T) {
	for _, o := range []Occupation{OccupationEmployed, OccupationSelfEmployed, OccupationStudent, OccupationRetired} {
		assert.True(t, o.Valid(), string(o))
	}
	assert.False(t, Occupation("Unemployed").Valid())
	assert.False(t, Occupation("").Valid())
}

func TestDTOToBudgetProfileMapsAllFields(t *testing.T) {
	dto := BudgetProfileDTO{
		Income:                   62000,
		Age:                      28,
		Dependents:               1,
		Occupation:               "Self_Employed",
		CityTier:                 "Tier_3",
		Rent:                     9000,
		LoanRepayment:            1200,
		Insurance:                800,
		Groceries:                4200,
		Transport:                1500,
		EatingOut:                1300,
		Entertainment:            700,
		Utilities:                1900,
		Healthcare:               450,
		Education:                0,
		Miscellaneous:            300,
		DesiredSavingsPercentage: 15,
	}
	p := DTOToBudgetProfile(dto)

	assert.Equal(t, OccupationSelfEmployed, p.Occupation)
	assert.Equal(t, CityTier3, p.CityTier)
	assert.Equal(t, 62000.0, p.Income)
	assert.Equal(t, 1200.0, p.LoanRepayment)
	assert.Equal(t, 15.0, p.DesiredSavingsPercentage)
	assert.NoError(t, p.Validate())
}
