package prediction

import (
	"time"

	"github.com/finsight/finsight/pkg/profile"
)

// SavingsModel is the binary classifier output: can the user achieve their
// desired savings, and how sure is the model.
type SavingsModel struct {
	CanAchieveSavings bool    `json:"can_achieve_savings"`
	Confidence        float64 `json:"confidence"`
}

// AmountModel is the regressor output: a recommended monthly savings amount.
type AmountModel struct {
	RecommendedSavings float64 `json:"recommended_savings"`
}

// MultiTaskModel combines classification, regression and risk scoring in a
// single head.
type MultiTaskModel struct {
	CanAchieveSavings        bool    `json:"can_achieve_savings"`
	SavingsConfidence        float64 `json:"savings_confidence"`
	RecommendedSavingsAmount float64 `json:"recommended_savings_amount"`
	FinancialRisk            bool    `json:"financial_risk"`
	RiskScore                float64 `json:"risk_score"`
}

// Result is the model service's response. It is treated as opaque: stored and
// returned as-is, never recomputed locally. Sections the service did not
// return stay nil.
type Result struct {
	SavingsModel   *SavingsModel   `json:"savings_model,omitempty"`
	AmountModel    *AmountModel    `json:"amount_model,omitempty"`
	MultiTaskModel *MultiTaskModel `json:"multi_task_model,omitempty"`
}

// Record is one stored prediction: the full feature vector that was sent to
// the model and the result that came back.
type Record struct {
	ID        string
	Timestamp time.Time
	Input     profile.FeatureRecord
	Output    Result
}

// Bundle is a user's prediction history, newest first.
type Bundle struct {
	Records []Record
}

func (b Bundle) IsEmpty() bool {
	return len(b.Records) == 0
}

// Latest returns the most recent record, relying on the newest-first order.
func (b Bundle) Latest() (Record, bool) {
	if b.IsEmpty() {
		return Record{}, false
	}
	return b.Records[0], true
}
