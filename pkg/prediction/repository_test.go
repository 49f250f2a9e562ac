package prediction

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/finsight/finsight/internal/test_utils"
	"github.com/finsight/finsight/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*RepositoryImpl, *sql.DB) {
	t.Helper()
	db := test_utils.SetupTestDB(t)
	insertTestUser(t, db, "test-user-1")
	return NewPredictionRepository(db), db
}

func insertTestUser(t *testing.T, db *sql.DB, uid string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO users (uid, username, display_name, created_at) VALUES ($1, $2, $3, $4)`,
		uid, uid, "Test User", time.Now().UTC().Format(time.RFC3339),
	)
	require.NoError(t, err)
}

func testRecord(id string, timestamp time.Time) Record {
	return Record{
		ID:        id,
		Timestamp: timestamp,
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
		Output: Result{
			SavingsModel:   &SavingsModel{CanAchieveSavings: true, Confidence: 0.91},
			MultiTaskModel: &MultiTaskModel{CanAchieveSavings: true, SavingsConfidence: 0.88, RecommendedSavingsAmount: 4700, RiskScore: 0.2},
		},
	}
}

func TestStoreAndGetUserPredictions(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePrediction(ctx, "test-user-1", testRecord("p1", base)))
	require.NoError(t, repo.StorePrediction(ctx, "test-user-1", testRecord("p2", base.Add(time.Hour))))

	records, err := repo.GetUserPredictions(ctx, "test-user-1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// newest first
	assert.Equal(t, "p2", records[0].ID)
	assert.Equal(t, "p1", records[1].ID)

	// the feature vector and the model result survive the round trip
	assert.InDelta(t, 24000.0, records[1].Input.TotalExpenses, 1e-9)
	assert.Equal(t, profile.IncomeBracketMiddle, records[1].Input.IncomeBracket)
	require.NotNil(t, records[1].Output.SavingsModel)
	assert.InDelta(t, 0.91, records[1].Output.SavingsModel.Confidence, 1e-9)
	assert.Nil(t, records[1].Output.AmountModel)
}

func TestGetUserPredictionsEmpty(t *testing.T) {
	repo, _ := setupRepo(t)

	records, err := repo.GetUserPredictions(context.Background(), "test-user-1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetLatestPrediction(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	_, err := repo.GetLatestPrediction(ctx, "test-user-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, repo.StorePrediction(ctx, "test-user-1", testRecord("p1", base)))
	require.NoError(t, repo.StorePrediction(ctx, "test-user-1", testRecord("p2", base.Add(time.Hour))))

	latest, err := repo.GetLatestPrediction(ctx, "test-user-1")
	require.NoError(t, err)
	assert.Equal(t, "p2", latest.ID)
}

func TestDeletePrediction(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePrediction(ctx, "test-user-1", testRecord("p1", base)))

	deleted, err := repo.DeletePrediction(ctx, "test-user-1", "p1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeletePrediction(ctx, "test-user-1", "p1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeletePredictionScopedToUser(t *testing.T) {
	repo, db := setupRepo(t)
	insertTestUser(t, db, "other-user")
	ctx := context.Background()
	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.StorePrediction(ctx, "test-user-1", testRecord("p1", base)))

	deleted, err := repo.DeletePrediction(ctx, "other-user", "p1")
	require.NoError(t, err)
	assert.False(t, deleted)

	records, err := repo.GetUserPredictions(ctx, "test-user-1")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
