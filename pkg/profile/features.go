package profile

import "math"

// AgeGroup buckets Age into half-open intervals. Every age maps to exactly
// one group.
type AgeGroup string

const (
	AgeGroupYoungAdult    AgeGroup = "Young_Adult"    // < 30
	AgeGroupMidCareer     AgeGroup = "Mid_Career"     // 30-49
	AgeGroupPreRetirement AgeGroup = "Pre_Retirement" // 50-64
	AgeGroupSenior        AgeGroup = "Senior"         // >= 65
)

func AgeGroupFor(age int) AgeGroup {
	switch {
	case age < 30:
		return AgeGroupYoungAdult
	case age < 50:
		return AgeGroupMidCareer
	case age < 65:
		return AgeGroupPreRetirement
	default:
		return AgeGroupSenior
	}
}

// IncomeBracket buckets monthly income by threshold. Every non-negative
// income maps to exactly one bracket.
type IncomeBracket string

const (
	IncomeBracketLow      IncomeBracket = "Low_Income" // < 30000
	IncomeBracketLowerMid IncomeBracket = "Lower_Mid"  // < 50000
	IncomeBracketMiddle   IncomeBracket = "Middle"     // < 80000
	IncomeBracketUpperMid IncomeBracket = "Upper_Mid"  // otherwise
)

func IncomeBracketFor(income float64) IncomeBracket {
	switch {
	case income < 30000:
		return IncomeBracketLow
	case income < 50000:
		return IncomeBracketLowerMid
	case income < 80000:
		return IncomeBracketMiddle
	default:
		return IncomeBracketUpperMid
	}
}

// SavingsDifficulty is a categorical the upstream model was trained with.
// No derivation path produces the other levels yet, so every record carries
// the "nan" level.
type SavingsDifficulty string

const (
	SavingsDifficultyModerate SavingsDifficulty = "Moderate"
	SavingsDifficultyVeryHard SavingsDifficulty = "Very_Hard"
	SavingsDifficultyNan      SavingsDifficulty = "nan"
)

// Placeholder values the external model would normally supply. The model's
// training contract has not confirmed them as permanent; keep them named so
// call sites are easy to find.
const (
	defaultExpenseEfficiency    = 0.28
	defaultFinancialStressScore = 0.25
)

// Fraction of each expense category that is realistically recoverable as
// savings. A fixed lookup table, not derived from data.
const (
	groceriesSavingsRate     = 0.25
	transportSavingsRate     = 0.125
	eatingOutSavingsRate     = 0.282
	entertainmentSavingsRate = 0.127
	utilitiesSavingsRate     = 0.233
	healthcareSavingsRate    = 0.044
	educationSavingsRate     = 0.0
	miscellaneousSavingsRate = 0.103
)

// PotentialSavings is the per-category recoverable amount estimate.
type PotentialSavings struct {
	Groceries     float64
	Transport     float64
	EatingOut     float64
	Entertainment float64
	Utilities     float64
	Healthcare    float64
	Education     float64
	Miscellaneous float64
}

// FeatureRecord is a BudgetProfile expanded with every derived feature the
// prediction model consumes. Categorical features stay as enums here; the
// one-hot flags exist only on the wire (see FeatureRecordDTO).
type FeatureRecord struct {
	BudgetProfile

	TotalExpenses          float64
	DisposableIncome       float64
	SavingsRate            float64
	DesiredSavingsAmount   float64
	ActualSavingsPotential float64
	PotentialSavings       PotentialSavings
	EssentialExpenses      float64
	EssentialExpenseRatio  float64
	NonEssentialIncome     float64
	ExpenseEfficiency      float64
	DebtToIncomeRatio      float64
	FinancialStressScore   float64

	AgeGroup          AgeGroup
	IncomeBracket     IncomeBracket
	SavingsDifficulty SavingsDifficulty
}

// Derive expands a budget profile into the full feature record. It is pure
// and total: same profile in, same record out, no side effects. A negative
// disposable income is propagated as-is: it signals overspending, not an
// error. With Income == 0 the income-relative ratios come out as NaN or Inf;
// guarding against that is the caller's responsibility.
func Derive(p BudgetProfile) FeatureRecord {
	totalExpenses := p.Rent + p.LoanRepayment + p.Insurance + p.Groceries +
		p.Transport + p.EatingOut + p.Entertainment + p.Utilities +
		p.Healthcare + p.Education + p.Miscellaneous

	disposableIncome := p.Income - totalExpenses
	savingsRate := p.DesiredSavingsPercentage / 100
	desiredSavingsAmount := p.Income * savingsRate
	// A user cannot be credited with saving more than their disposable income.
	actualSavingsPotential := math.Min(desiredSavingsAmount, disposableIncome)

	essentialExpenses := p.Rent + p.Insurance + p.LoanRepayment

	return FeatureRecord{
		BudgetProfile: p,

		TotalExpenses:          totalExpenses,
		DisposableIncome:       disposableIncome,
		SavingsRate:            savingsRate,
		DesiredSavingsAmount:   desiredSavingsAmount,
		ActualSavingsPotential: actualSavingsPotential,
		PotentialSavings: PotentialSavings{
			Groceries:     p.Groceries * groceriesSavingsRate,
			Transport:     p.Transport * transportSavingsRate,
			EatingOut:     p.EatingOut * eatingOutSavingsRate,
			Entertainment: p.Entertainment * entertainmentSavingsRate,
			Utilities:     p.Utilities * utilitiesSavingsRate,
			Healthcare:    p.Healthcare * healthcareSavingsRate,
			Education:     p.Education * educationSavingsRate,
			Miscellaneous: p.Miscellaneous * miscellaneousSavingsRate,
		},
		EssentialExpenses:     essentialExpenses,
		EssentialExpenseRatio: essentialExpenses / p.Income,
		NonEssentialIncome:    p.Income - essentialExpenses,
		ExpenseEfficiency:     defaultExpenseEfficiency,
		DebtToIncomeRatio:     p.LoanRepayment / p.Income,
		FinancialStressScore:  defaultFinancialStressScore,

		AgeGroup:          AgeGroupFor(p.Age),
		IncomeBracket:     IncomeBracketFor(p.Income),
		SavingsDifficulty: SavingsDifficultyNan,
	}
}
