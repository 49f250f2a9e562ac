package profile

import (
	"fmt"
)

// Occupation is the user's declared occupation. Employed is the encoding
// baseline: it carries no flag of its own on the wire.
type Occupation string

const (
	OccupationEmployed     Occupation = "Employed"
	OccupationSelfEmployed Occupation = "Self_Employed"
	OccupationStudent      Occupation = "Student"
	OccupationRetired      Occupation = "Retired"
)

func (o Occupation) Valid() bool {
	switch o {
	case OccupationEmployed, OccupationSelfEmployed, OccupationStudent, OccupationRetired:
		return true
	}
	return false
}

// CityTier classifies the user's city. Tier_1 is the encoding baseline.
type CityTier string

const (
	CityTier1 CityTier = "Tier_1"
	CityTier2 CityTier = "Tier_2"
	CityTier3 CityTier = "Tier_3"
)

func (c CityTier) Valid() bool {
	switch c {
	case CityTier1, CityTier2, CityTier3:
		return true
	}
	return false
}

// BudgetProfile holds the raw monthly figures a user submits. It is
// immutable once features have been derived from it.
type BudgetProfile struct {
	Income     float64
	Age        int
	Dependents int
	Occupation Occupation
	CityTier   CityTier

	Rent          float64
	LoanRepayment float64
	Insurance     float64
	Groceries     float64
	Transport     float64
	EatingOut     float64
	Entertainment float64
	Utilities     float64
	Healthcare    float64
	Education     float64
	Miscellaneous float64

	DesiredSavingsPercentage float64
}

// Validate checks the form-level constraints on a submitted profile.
// Income == 0 passes here; callers that need the income-relative ratios
// must additionally require a positive income before deriving.
func (p BudgetProfile) Validate() error {
	if p.Income < 0 {
		return fmt.Errorf("income must not be negative")
	}
	if p.Age < 18 || p.Age > 100 {
		return fmt.Errorf("age must be between 18 and 100")
	}
	if p.Dependents < 0 {
		return fmt.Errorf("dependents must not be negative")
	}
	if !p.Occupation.Valid() {
		return fmt.Errorf("unknown occupation: %q", p.Occupation)
	}
	if !p.CityTier.Valid() {
		return fmt.Errorf("unknown city tier: %q", p.CityTier)
	}
	if p.DesiredSavingsPercentage < 0 || p.DesiredSavingsPercentage > 100 {
		return fmt.Errorf("desired savings percentage must be between 0 and 100")
	}

	expenses := map[string]float64{
		"rent":           p.Rent,
		"loan repayment": p.LoanRepayment,
		"insurance":      p.Insurance,
		"groceries":      p.Groceries,
		"transport":      p.Transport,
		"eating out":     p.EatingOut,
		"entertainment":  p.Entertainment,
		"utilities":      p.Utilities,
		"healthcare":     p.Healthcare,
		"education":      p.Education,
		"miscellaneous":  p.Miscellaneous,
	}
	for name, amount := range expenses {
		if amount < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}
