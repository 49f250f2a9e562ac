package userdata

import (
	"context"
	"testing"
	"time"

	"github.com/finsight/finsight/internal/cache"
	"github.com/finsight/finsight/internal/event_bus"
	"github.com/finsight/finsight/pkg/prediction"
	"github.com/finsight/finsight/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotRecord() prediction.Record {
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
		},
	}
}

func TestSnapshotSaveAndLoad(t *testing.T) {
	store := NewSnapshotStore(t.TempDir())
	record := snapshotRecord()

	require.NoError(t, store.Save("test-user-1", record))

	bundle, err := store.Load("test-user-1")
	require.NoError(t, err)
	require.Len(t, bundle.Records, 1)
	assert.Equal(t, record.ID, bundle.Records[0].ID)
	assert.Equal(t, record.Timestamp, bundle.Records[0].Timestamp)
	assert.InDelta(t, 24000.0, bundle.Records[0].Input.TotalExpenses, 1e-9)
	require.NotNil(t, bundle.Records[0].Output.SavingsModel)
	assert.True(t, bundle.Records[0].Output.SavingsModel.CanAchieveSavings)
}

func TestSnapshotLoadMissing(t *testing.T) {
	store := NewSnapshotStore(t.TempDir())

	bundle, err := store.Load("nobody")
	require.NoError(t, err)
	assert.True(t, bundle.IsEmpty())
}

func TestSnapshotKeepsOnlyLatestRecord(t *testing.T) {
	store := NewSnapshotStore(t.TempDir())

	first := snapshotRecord()
	second := snapshotRecord()
	second.ID = "p2"
	second.Timestamp = first.Timestamp.Add(time.Hour)

	require.NoError(t, store.Save("test-user-1", first))
	require.NoError(t, store.Save("test-user-1", second))

	bundle, err := store.Load("test-user-1")
	require.NoError(t, err)
	require.Len(t, bundle.Records, 1)
	assert.Equal(t, "p2", bundle.Records[0].ID)
}

func TestSnapshotWriterFollowsRecordedEvents(t *testing.T) {
	store := NewSnapshotStore(t.TempDir())
	bus := event_bus.NewEventBus()
	inner := &stubResolver{bundle: bundleWith("old")}
	resolver := NewCachingResolver(inner, cache.NewLRUCache[prediction.Bundle](16, time.Minute), 0, 0)
	RegisterSnapshotWriter(bus, store, resolver)

	record := snapshotRecord()
	err := bus.Publish(event_bus.NewEvent(context.Background(), event_bus.PredictionRecorded, prediction.RecordedEvent{
		UserUid: "test-user-1",
		Record:  record,
	}))
	require.NoError(t, err)

	bundle, err := store.Load("test-user-1")
	require.NoError(t, err)
	require.Len(t, bundle.Records, 1)
	assert.Equal(t, record.ID, bundle.Records[0].ID)
}
