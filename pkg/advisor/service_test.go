package advisor

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finsight/finsight/pkg/prediction"
	"github.com/finsight/finsight/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedResolver struct {
	bundle prediction.Bundle
	err    error
}

func (r *fixedResolver) Resolve(context.Context) (prediction.Bundle, error) {
	return r.bundle, r.err
}

func latestRecord() prediction.Record {
	return prediction.Record{
		ID:        "p1",
		Timestamp: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
		Input: profile.Derive(profile.BudgetProfile{
			Income:                   50000,
			Age:                      35,
			Occupation:               profile.OccupationEmployed,
			CityTier:                 profile.CityTier2,
			Rent:                     15000,
			Groceries:                6000,
			Transport:                3000,
			DesiredSavingsPercentage: 10,
		}),
		Output: prediction.Result{
			SavingsModel: &prediction.SavingsModel{CanAchieveSavings: true, Confidence: 0.87},
			AmountModel:  &prediction.AmountModel{RecommendedSavings: 4200},
		},
	}
}

func TestChatUsesLatestPrediction(t *testing.T) {
	model := NewStubModel("Try cutting eating out by 20%.")
	record := latestRecord()
	older := latestRecord()
	older.ID = "p0"
	service := NewService(model, &fixedResolver{bundle: prediction.Bundle{Records: []prediction.Record{record, older}}})

	reply, err := service.Chat(context.Background(), "How can I save more?")
	require.NoError(t, err)
	assert.Equal(t, "Try cutting eating out by 20%.", reply)
	assert.Equal(t, 1, model.Calls)

	// the prompt carries the user's data and their question
	assert.Contains(t, model.LastPrompt, "Income: ₹50000.00")
	assert.Contains(t, model.LastPrompt, "Disposable Income: ₹26000.00")
	assert.Contains(t, model.LastPrompt, "Confidence: 87.00%")
	assert.Contains(t, model.LastPrompt, `"How can I save more?"`)
}

func TestChatWithoutDataRepliesGracefully(t *testing.T) {
	model := NewStubModel("unused")

	service := NewService(model, &fixedResolver{bundle: prediction.Bundle{}})
	reply, err := service.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, NoDataReply, reply)

	service = NewService(model, &fixedResolver{err: fmt.Errorf("all sources down")})
	reply, err = service.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, NoDataReply, reply)

	assert.Zero(t, model.Calls)
}

func TestChatPropagatesModelFailure(t *testing.T) {
	model := NewStubModel("")
	model.Err = fmt.Errorf("quota exceeded")
	service := NewService(model, &fixedResolver{bundle: prediction.Bundle{Records: []prediction.Record{latestRecord()}}})

	_, err := service.Chat(context.Background(), "How can I save more?")
	assert.Error(t, err)
}

func TestBuildPromptOmitsMissingModelSections(t *testing.T) {
	record := latestRecord()
	record.Output.AmountModel = nil

	prompt := BuildPrompt("hi", record)
	assert.Contains(t, prompt, "Can Achieve Savings: Yes")
	assert.NotContains(t, prompt, "Recommended Monthly Savings")
	assert.NotContains(t, prompt, "Financial Risk")
}
