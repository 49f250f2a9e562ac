package advisor

import (
	"fmt"
	"strings"

	"github.com/finsight/finsight/pkg/prediction"
)

// BuildPrompt assembles the advisor prompt from the user's latest prediction.
// Pure string assembly, no I/O.
func BuildPrompt(message string, record prediction.Record) string {
	input := record.Input
	output := record.Output

	var b strings.Builder
	b.WriteString("You are a Personal Finance Advisor chatbot.\n")
	b.WriteString("The user recently submitted this financial profile:\n\n")

	fmt.Fprintf(&b, "Income: ₹%.2f\n", input.Income)
	fmt.Fprintf(&b, "Age: %d\n", input.Age)
	fmt.Fprintf(&b, "Occupation: %s\n", input.Occupation)
	fmt.Fprintf(&b, "City Tier: %s\n", input.CityTier)
	fmt.Fprintf(&b, "Dependents: %d\n", input.Dependents)

	b.WriteString("\nMonthly Expenses:\n")
	fmt.Fprintf(&b, "Rent: ₹%.2f\n", input.Rent)
	fmt.Fprintf(&b, "Groceries: ₹%.2f\n", input.Groceries)
	fmt.Fprintf(&b, "Transport: ₹%.2f\n", input.Transport)
	fmt.Fprintf(&b, "Eating Out: ₹%.2f\n", input.EatingOut)
	fmt.Fprintf(&b, "Utilities: ₹%.2f\n", input.Utilities)
	fmt.Fprintf(&b, "Healthcare: ₹%.2f\n", input.Healthcare)
	fmt.Fprintf(&b, "Education: ₹%.2f\n", input.Education)
	fmt.Fprintf(&b, "Miscellaneous: ₹%.2f\n", input.Miscellaneous)

	b.WriteString("\nSavings Goals:\n")
	fmt.Fprintf(&b, "Desired Savings %%: %.1f%%\n", input.DesiredSavingsPercentage)
	fmt.Fprintf(&b, "Disposable Income: ₹%.2f\n", input.DisposableIncome)
	b.WriteString("Potential Savings Breakdown:\n")
	fmt.Fprintf(&b, " - Groceries: ₹%.2f\n", input.PotentialSavings.Groceries)
	fmt.Fprintf(&b, " - Transport: ₹%.2f\n", input.PotentialSavings.Transport)
	fmt.Fprintf(&b, " - Eating Out: ₹%.2f\n", input.PotentialSavings.EatingOut)
	fmt.Fprintf(&b, " - Utilities: ₹%.2f\n", input.PotentialSavings.Utilities)
	fmt.Fprintf(&b, " - Healthcare: ₹%.2f\n", input.PotentialSavings.Healthcare)
	fmt.Fprintf(&b, " - Education: ₹%.2f\n", input.PotentialSavings.Education)
	fmt.Fprintf(&b, " - Miscellaneous: ₹%.2f\n", input.PotentialSavings.Miscellaneous)

	b.WriteString("\nPrediction Results:\n")
	if s := output.SavingsModel; s != nil {
		fmt.Fprintf(&b, "Can Achieve Savings: %s\n", yesNo(s.CanAchieveSavings))
		fmt.Fprintf(&b, "Confidence: %.2f%%\n", s.Confidence*100)
	}
	if a := output.AmountModel; a != nil {
		fmt.Fprintf(&b, "Recommended Monthly Savings: ₹%.2f\n", a.RecommendedSavings)
	}
	if m := output.MultiTaskModel; m != nil {
		fmt.Fprintf(&b, "Financial Risk: %s\n", yesNo(m.FinancialRisk))
	}

	b.WriteString("\nNow the user is asking:\n")
	fmt.Fprintf(&b, "%q\n", message)

	b.WriteString(`
Instructions:
- For greetings/casual talk: Respond naturally and friendly
- For finance questions: Use their data to give personalized advice
- For general questions: Answer normally without forcing financial data
- Keep all responses under 100 words and conversational
- Always give response in plain text, do not use any ** or formatting
`)

	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
