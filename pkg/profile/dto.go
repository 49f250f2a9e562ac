package profile

// BudgetProfileDTO is the form-submission wire shape.
type BudgetProfileDTO struct {
	Income                   float64 `json:"Income"`
	Age                      int     `json:"Age"`
	Dependents               int     `json:"Dependents"`
	Occupation               string  `json:"Occupation"`
	CityTier                 string  `json:"City_Tier"`
	Rent                     float64 `json:"Rent"`
	LoanRepayment            float64 `json:"Loan_Repayment"`
	Insurance                float64 `json:"Insurance"`
	Groceries                float64 `json:"Groceries"`
	Transport                float64 `json:"Transport"`
	EatingOut                float64 `json:"Eating_Out"`
	Entertainment            float64 `json:"Entertainment"`
	Utilities                float64 `json:"Utilities"`
	Healthcare               float64 `json:"Healthcare"`
	Education                float64 `json:"Education"`
	Miscellaneous            float64 `json:"Miscellaneous"`
	DesiredSavingsPercentage float64 `json:"Desired_Savings_Percentage"`
}

func DTOToBudgetProfile(dto BudgetProfileDTO) BudgetProfile {
	return BudgetProfile{
		Income:                   dto.Income,
		Age:                      dto.Age,
		Dependents:               dto.Dependents,
		Occupation:               Occupation(dto.Occupation),
		CityTier:                 CityTier(dto.CityTier),
		Rent:                     dto.Rent,
		LoanRepayment:            dto.LoanRepayment,
		Insurance:                dto.Insurance,
		Groceries:                dto.Groceries,
		Transport:                dto.Transport,
		EatingOut:                dto.EatingOut,
		Entertainment:            dto.Entertainment,
		Utilities:                dto.Utilities,
		Healthcare:               dto.Healthcare,
		Education:                dto.Education,
		Miscellaneous:            dto.Miscellaneous,
		DesiredSavingsPercentage: dto.DesiredSavingsPercentage,
	}
}

// FeatureRecordDTO is the full feature vector the prediction model consumes.
// Field names and types match the model's training data exactly: enums as
// their literal string tags, one-hot groups as 0/1 integers. The flags exist
// only here, at the serialization boundary; FeatureRecord itself carries
// enums, so an invalid multi-flag state cannot be represented internally.
type FeatureRecordDTO struct {
	Income                   float64 `json:"Income"`
	Age                      int     `json:"Age"`
	Dependents               int     `json:"Dependents"`
	Occupation               string  `json:"Occupation"`
	CityTier                 string  `json:"City_Tier"`
	Rent                     float64 `json:"Rent"`
	LoanRepayment            float64 `json:"Loan_Repayment"`
	Insurance                float64 `json:"Insurance"`
	Groceries                float64 `json:"Groceries"`
	Transport                float64 `json:"Transport"`
	EatingOut                float64 `json:"Eating_Out"`
	Entertainment            float64 `json:"Entertainment"`
	Utilities                float64 `json:"Utilities"`
	Healthcare               float64 `json:"Healthcare"`
	Education                float64 `json:"Education"`
	Miscellaneous            float64 `json:"Miscellaneous"`
	DesiredSavingsPercentage float64 `json:"Desired_Savings_Percentage"`

	DisposableIncome              float64 `json:"Disposable_Income"`
	PotentialSavingsGroceries     float64 `json:"Potential_Savings_Groceries"`
	PotentialSavingsTransport     float64 `json:"Potential_Savings_Transport"`
	PotentialSavingsEatingOut     float64 `json:"Potential_Savings_Eating_Out"`
	PotentialSavingsEntertainment float64 `json:"Potential_Savings_Entertainment"`
	PotentialSavingsUtilities     float64 `json:"Potential_Savings_Utilities"`
	PotentialSavingsHealthcare    float64 `json:"Potential_Savings_Healthcare"`
	PotentialSavingsEducation     float64 `json:"Potential_Savings_Education"`
	PotentialSavingsMiscellaneous float64 `json:"Potential_Savings_Miscellaneous"`
	SavingsRate                   float64 `json:"Savings_Rate"`
	ActualSavingsPotential        float64 `json:"Actual_Savings_Potential"`
	EssentialExpenses             float64 `json:"Essential_Expenses"`
	EssentialExpenseRatio         float64 `json:"Essential_Expense_Ratio"`
	NonEssentialIncome            float64 `json:"Non_Essential_Income"`
	ExpenseEfficiency             float64 `json:"Expense_Efficiency"`
	TotalExpenses                 float64 `json:"Total_Expenses"`
	DebtToIncomeRatio             float64 `json:"Debt_to_Income_Ratio"`
	FinancialStressScore          float64 `json:"Financial_Stress_Score"`

	OccupationRetired         int `json:"Occupation_Retired"`
	OccupationSelfEmployed    int `json:"Occupation_Self_Employed"`
	OccupationStudent         int `json:"Occupation_Student"`
	CityTierTier2             int `json:"City_Tier_Tier_2"`
	CityTierTier3             int `json:"City_Tier_Tier_3"`
	AgeGroupMidCareer         int `json:"Age_Group_Mid_Career"`
	AgeGroupPreRetirement     int `json:"Age_Group_Pre_Retirement"`
	AgeGroupSenior            int `json:"Age_Group_Senior"`
	AgeGroupYoungAdult        int `json:"Age_Group_Young_Adult"`
	IncomeBracketLowIncome    int `json:"Income_Bracket_Low_Income"`
	IncomeBracketLowerMid     int `json:"Income_Bracket_Lower_Mid"`
	IncomeBracketMiddle       int `json:"Income_Bracket_Middle"`
	IncomeBracketUpperMid     int `json:"Income_Bracket_Upper_Mid"`
	SavingsDifficultyModerate int `json:"Savings_Difficulty_Moderate"`
	SavingsDifficultyVeryHard int `json:"Savings_Difficulty_Very_Hard"`
	SavingsDifficultyNan      int `json:"Savings_Difficulty_nan"`
}

func FeatureRecordToDTO(r FeatureRecord) FeatureRecordDTO {
	return FeatureRecordDTO{
		Income:                   r.Income,
		Age:                      r.Age,
		Dependents:               r.Dependents,
		Occupation:               string(r.Occupation),
		CityTier:                 string(r.CityTier),
		Rent:                     r.Rent,
		LoanRepayment:            r.LoanRepayment,
		Insurance:                r.Insurance,
		Groceries:                r.Groceries,
		Transport:                r.Transport,
		EatingOut:                r.EatingOut,
		Entertainment:            r.Entertainment,
		Utilities:                r.Utilities,
		Healthcare:               r.Healthcare,
		Education:                r.Education,
		Miscellaneous:            r.Miscellaneous,
		DesiredSavingsPercentage: r.DesiredSavingsPercentage,

		DisposableIncome:              r.DisposableIncome,
		PotentialSavingsGroceries:     r.PotentialSavings.Groceries,
		PotentialSavingsTransport:     r.PotentialSavings.Transport,
		PotentialSavingsEatingOut:     r.PotentialSavings.EatingOut,
		PotentialSavingsEntertainment: r.PotentialSavings.Entertainment,
		PotentialSavingsUtilities:     r.PotentialSavings.Utilities,
		PotentialSavingsHealthcare:    r.PotentialSavings.Healthcare,
		PotentialSavingsEducation:     r.PotentialSavings.Education,
		PotentialSavingsMiscellaneous: r.PotentialSavings.Miscellaneous,
		SavingsRate:                   r.SavingsRate,
		ActualSavingsPotential:        r.ActualSavingsPotential,
		EssentialExpenses:             r.EssentialExpenses,
		EssentialExpenseRatio:         r.EssentialExpenseRatio,
		NonEssentialIncome:            r.NonEssentialIncome,
		ExpenseEfficiency:             r.ExpenseEfficiency,
		TotalExpenses:                 r.TotalExpenses,
		DebtToIncomeRatio:             r.DebtToIncomeRatio,
		FinancialStressScore:          r.FinancialStressScore,

		OccupationRetired:      flag(r.Occupation == OccupationRetired),
		OccupationSelfEmployed: flag(r.Occupation == OccupationSelfEmployed),
		OccupationStudent:      flag(r.Occupation == OccupationStudent),

		CityTierTier2: flag(r.CityTier == CityTier2),
		CityTierTier3: flag(r.CityTier == CityTier3),

		AgeGroupYoungAdult:    flag(r.AgeGroup == AgeGroupYoungAdult),
		AgeGroupMidCareer:     flag(r.AgeGroup == AgeGroupMidCareer),
		AgeGroupPreRetirement: flag(r.AgeGroup == AgeGroupPreRetirement),
		AgeGroupSenior:        flag(r.AgeGroup == AgeGroupSenior),

		IncomeBracketLowIncome: flag(r.IncomeBracket == IncomeBracketLow),
		IncomeBracketLowerMid:  flag(r.IncomeBracket == IncomeBracketLowerMid),
		IncomeBracketMiddle:    flag(r.IncomeBracket == IncomeBracketMiddle),
		IncomeBracketUpperMid:  flag(r.IncomeBracket == IncomeBracketUpperMid),

		SavingsDifficultyModerate: flag(r.SavingsDifficulty == SavingsDifficultyModerate),
		SavingsDifficultyVeryHard: flag(r.SavingsDifficulty == SavingsDifficultyVeryHard),
		SavingsDifficultyNan:      flag(r.SavingsDifficulty == SavingsDifficultyNan),
	}
}

// DTOToFeatureRecord reconstructs a feature record from its wire shape.
// The wire data is authoritative: flags are decoded back to enums rather
// than re-derived, so stored rows survive round trips unchanged even if the
// derivation rules evolve.
func DTOToFeatureRecord(dto FeatureRecordDTO) FeatureRecord {
	return FeatureRecord{
		BudgetProfile: BudgetProfile{
			Income:                   dto.Income,
			Age:                      dto.Age,
			Dependents:               dto.Dependents,
			Occupation:               Occupation(dto.Occupation),
			CityTier:                 CityTier(dto.CityTier),
			Rent:                     dto.Rent,
			LoanRepayment:            dto.LoanRepayment,
			Insurance:                dto.Insurance,
			Groceries:                dto.Groceries,
			Transport:                dto.Transport,
			EatingOut:                dto.EatingOut,
			Entertainment:            dto.Entertainment,
			Utilities:                dto.Utilities,
			Healthcare:               dto.Healthcare,
			Education:                dto.Education,
			Miscellaneous:            dto.Miscellaneous,
			DesiredSavingsPercentage: dto.DesiredSavingsPercentage,
		},

		TotalExpenses:          dto.TotalExpenses,
		DisposableIncome:       dto.DisposableIncome,
		SavingsRate:            dto.SavingsRate,
		DesiredSavingsAmount:   dto.Income * dto.SavingsRate,
		ActualSavingsPotential: dto.ActualSavingsPotential,
		PotentialSavings: PotentialSavings{
			Groceries:     dto.PotentialSavingsGroceries,
			Transport:     dto.PotentialSavingsTransport,
			EatingOut:     dto.PotentialSavingsEatingOut,
			Entertainment: dto.PotentialSavingsEntertainment,
			Utilities:     dto.PotentialSavingsUtilities,
			Healthcare:    dto.PotentialSavingsHealthcare,
			Education:     dto.PotentialSavingsEducation,
			Miscellaneous: dto.PotentialSavingsMiscellaneous,
		},
		EssentialExpenses:     dto.EssentialExpenses,
		EssentialExpenseRatio: dto.EssentialExpenseRatio,
		NonEssentialIncome:    dto.NonEssentialIncome,
		ExpenseEfficiency:     dto.ExpenseEfficiency,
		DebtToIncomeRatio:     dto.DebtToIncomeRatio,
		FinancialStressScore:  dto.FinancialStressScore,

		AgeGroup:          ageGroupFromFlags(dto),
		IncomeBracket:     incomeBracketFromFlags(dto),
		SavingsDifficulty: savingsDifficultyFromFlags(dto),
	}
}

func ageGroupFromFlags(dto FeatureRecordDTO) AgeGroup {
	switch {
	case dto.AgeGroupYoungAdult == 1:
		return AgeGroupYoungAdult
	case dto.AgeGroupMidCareer == 1:
		return AgeGroupMidCareer
	case dto.AgeGroupPreRetirement == 1:
		return AgeGroupPreRetirement
	case dto.AgeGroupSenior == 1:
		return AgeGroupSenior
	default:
		return AgeGroupFor(dto.Age)
	}
}

func incomeBracketFromFlags(dto FeatureRecordDTO) IncomeBracket {
	switch {
	case dto.IncomeBracketLowIncome == 1:
		return IncomeBracketLow
	case dto.IncomeBracketLowerMid == 1:
		return IncomeBracketLowerMid
	case dto.IncomeBracketMiddle == 1:
		return IncomeBracketMiddle
	case dto.IncomeBracketUpperMid == 1:
		return IncomeBracketUpperMid
	default:
		return IncomeBracketFor(dto.Income)
	}
}

func savingsDifficultyFromFlags(dto FeatureRecordDTO) SavingsDifficulty {
	switch {
	case dto.SavingsDifficultyModerate == 1:
		return SavingsDifficultyModerate
	case dto.SavingsDifficultyVeryHard == 1:
		return SavingsDifficultyVeryHard
	default:
		return SavingsDifficultyNan
	}
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
