package profile

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() BudgetProfile {
	return BudgetProfile{
		Income:                   50000,
		Age:                      35,
		Dependents:               2,
		Occupation:               OccupationEmployed,
		CityTier:                 CityTier2,
		Rent:                     15000,
		Groceries:                6000,
		Transport:                3000,
		DesiredSavingsPercentage: 10,
	}
}

func TestDeriveExampleScenario(t *testing.T) {
	r := Derive(sampleProfile())

	assert.InDelta(t, 24000.0, r.TotalExpenses, 1e-9)
	assert.InDelta(t, 26000.0, r.DisposableIncome, 1e-9)
	assert.InDelta(t, 0.10, r.SavingsRate, 1e-9)
	assert.InDelta(t, 5000.0, r.DesiredSavingsAmount, 1e-9)
	assert.InDelta(t, 5000.0, r.ActualSavingsPotential, 1e-9)
	assert.InDelta(t, 1500.0, r.PotentialSavings.Groceries, 1e-9)
	assert.InDelta(t, 375.0, r.PotentialSavings.Transport, 1e-9)
	assert.InDelta(t, 15000.0, r.EssentialExpenses, 1e-9)
	assert.InDelta(t, 0.3, r.EssentialExpenseRatio, 1e-9)
	assert.InDelta(t, 35000.0, r.NonEssentialIncome, 1e-9)
	assert.InDelta(t, 0.0, r.DebtToIncomeRatio, 1e-9)
	assert.Equal(t, AgeGroupMidCareer, r.AgeGroup)
	assert.Equal(t, IncomeBracketMiddle, r.IncomeBracket)
	assert.Equal(t, SavingsDifficultyNan, r.SavingsDifficulty)

	dto := FeatureRecordToDTO(r)
	assert.Equal(t, 1, dto.IncomeBracketMiddle)
	assert.Equal(t, 0, dto.IncomeBracketLowIncome)
	assert.Equal(t, 1, dto.AgeGroupMidCareer)
	assert.Equal(t, 1, dto.CityTierTier2)
	assert.Equal(t, 0, dto.CityTierTier3)
}

func TestDeriveIsDeterministic(t *testing.T) {
	p := sampleProfile()
	first := Derive(p)
	second := Derive(p)
	assert.Equal(t, first, second)
}

func TestDeriveExpenseConservation(t *testing.T) {
	p := BudgetProfile{
		Income:        80000,
		Age:           42,
		Occupation:    OccupationSelfEmployed,
		CityTier:      CityTier1,
		Rent:          12000,
		LoanRepayment: 4500,
		Insurance:     1200,
		Groceries:     5500,
		Transport:     2100,
		EatingOut:     1800,
		Entertainment: 900,
		Utilities:     2300,
		Healthcare:    700,
		Education:     3000,
		Miscellaneous: 650,
	}
	r := Derive(p)

	sum := p.Rent + p.LoanRepayment + p.Insurance + p.Groceries + p.Transport +
		p.EatingOut + p.Entertainment + p.Utilities + p.Healthcare + p.Education + p.Miscellaneous
	assert.InDelta(t, sum, r.TotalExpenses, 1e-9)
	assert.InDelta(t, p.Income-sum, r.DisposableIncome, 1e-9)
	assert.InDelta(t, p.Rent+p.Insurance+p.LoanRepayment, r.EssentialExpenses, 1e-9)
	assert.InDelta(t, p.Income-r.EssentialExpenses, r.NonEssentialIncome, 1e-9)
	assert.InDelta(t, p.LoanRepayment/p.Income, r.DebtToIncomeRatio, 1e-9)
}

func TestDeriveSavingsCappedByDisposableIncome(t *testing.T) {
	p := sampleProfile()
	p.DesiredSavingsPercentage = 80 // desired 40000 exceeds disposable 26000
	r := Derive(p)

	assert.InDelta(t, 40000.0, r.DesiredSavingsAmount, 1e-9)
	assert.InDelta(t, 26000.0, r.ActualSavingsPotential, 1e-9)
}

func TestDeriveNegativeDisposableIncome(t *testing.T) {
	p := sampleProfile()
	p.Rent = 60000
	r := Derive(p)

	require.Negative(t, r.DisposableIncome)
	// the cap still applies: the potential equals the (negative) disposable income
	assert.InDelta(t, r.DisposableIncome, r.ActualSavingsPotential, 1e-9)
}

func TestDeriveZeroIncomePropagates(t *testing.T) {
	p := sampleProfile()
	p.Income = 0
	r := Derive(p)

	// ratios over a zero income are undefined, not errors
	assert.True(t, math.IsInf(r.EssentialExpenseRatio, 1))
	assert.True(t, math.IsNaN(r.DebtToIncomeRatio))
}

func TestAgeGroupBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want AgeGroup
	}{
		{18, AgeGroupYoungAdult},
		{29, AgeGroupYoungAdult},
		{30, AgeGroupMidCareer},
		{49, AgeGroupMidCareer},
		{50, AgeGroupPreRetirement},
		{64, AgeGroupPreRetirement},
		{65, AgeGroupSenior},
		{100, AgeGroupSenior},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AgeGroupFor(c.age), "age %d", c.age)
	}
}

func TestAgeGroupExhaustive(t *testing.T) {
	for age := 18; age <= 100; age++ {
		r := Derive(BudgetProfile{Income: 1000, Age: age, Occupation: OccupationEmployed, CityTier: CityTier1})
		dto := FeatureRecordToDTO(r)
		total := dto.AgeGroupYoungAdult + dto.AgeGroupMidCareer + dto.AgeGroupPreRetirement + dto.AgeGroupSenior
		assert.Equal(t, 1, total, "age %d must map to exactly one group", age)
	}
}

func TestIncomeBracketBoundaries(t *testing.T) {
	cases := []struct {
		income float64
		want   IncomeBracket
	}{
		{0, IncomeBracketLow},
		{29999.99, IncomeBracketLow},
		{30000, IncomeBracketLowerMid},
		{49999.99, IncomeBracketLowerMid},
		{50000, IncomeBracketMiddle},
		{79999.99, IncomeBracketMiddle},
		{80000, IncomeBracketUpperMid},
		{250000, IncomeBracketUpperMid},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IncomeBracketFor(c.income), "income %.2f", c.income)
	}
}

func TestIncomeBracketExclusive(t *testing.T) {
	for _, income := range []float64{0, 15000, 29999, 30000, 42000, 50000, 65000, 80000, 120000} {
		r := Derive(BudgetProfile{Income: income, Age: 30, Occupation: OccupationEmployed, CityTier: CityTier1})
		dto := FeatureRecordToDTO(r)
		total := dto.IncomeBracketLowIncome + dto.IncomeBracketLowerMid + dto.IncomeBracketMiddle + dto.IncomeBracketUpperMid
		assert.Equal(t, 1, total, "income %.0f must map to exactly one bracket", income)
	}
}

func TestOccupationFlagsBaseline(t *testing.T) {
	p := sampleProfile()
	p.Occupation = OccupationEmployed
	dto := FeatureRecordToDTO(Derive(p))
	assert.Zero(t, dto.OccupationRetired+dto.OccupationSelfEmployed+dto.OccupationStudent)

	p.Occupation = OccupationStudent
	dto = FeatureRecordToDTO(Derive(p))
	assert.Equal(t, 1, dto.OccupationStudent)
	assert.Zero(t, dto.OccupationRetired+dto.OccupationSelfEmployed)
}

func TestSavingsDifficultyAlwaysNan(t *testing.T) {
	dto := FeatureRecordToDTO(Derive(sampleProfile()))
	assert.Equal(t, 1, dto.SavingsDifficultyNan)
	assert.Zero(t, dto.SavingsDifficultyModerate)
	assert.Zero(t, dto.SavingsDifficultyVeryHard)
}

func TestFeatureRecordDTORoundTrip(t *testing.T) {
	original := Derive(sampleProfile())
	dto := FeatureRecordToDTO(original)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	var decoded FeatureRecordDTO
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, original, DTOToFeatureRecord(decoded))
}

func TestFeatureRecordDTOWireKeys(t *testing.T) {
	raw, err := json.Marshal(FeatureRecordToDTO(Derive(sampleProfile())))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, key := range []string{
		"Income", "City_Tier", "Loan_Repayment", "Eating_Out",
		"Desired_Savings_Percentage", "Disposable_Income",
		"Potential_Savings_Groceries", "Actual_Savings_Potential",
		"Essential_Expense_Ratio", "Debt_to_Income_Ratio",
		"Occupation_Self_Employed", "City_Tier_Tier_2",
		"Age_Group_Young_Adult", "Income_Bracket_Upper_Mid",
		"Savings_Difficulty_nan",
	} {
		assert.Contains(t, fields, key)
	}
}
