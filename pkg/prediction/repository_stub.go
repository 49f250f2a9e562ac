package prediction

import (
	"context"
	"sort"
)

// StubPredictionRepository is an in-memory Repository for tests.
type StubPredictionRepository struct {
	records map[string][]Record
	Err     error
}

func NewStubPredictionRepository() *StubPredictionRepository {
	return &StubPredictionRepository{records: make(map[string][]Record)}
}

func (r *StubPredictionRepository) StorePrediction(_ context.Context, userUid string, record Record) error {
	if r.Err != nil {
		return r.Err
	}
	r.records[userUid] = append(r.records[userUid], record)
	return nil
}

func (r *StubPredictionRepository) GetUserPredictions(_ context.Context, userUid string) ([]Record, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	records := make([]Record, len(r.records[userUid]))
	copy(records, r.records[userUid])
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (r *StubPredictionRepository) GetLatestPrediction(ctx context.Context, userUid string) (Record, error) {
	records, err := r.GetUserPredictions(ctx, userUid)
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, ErrRecordNotFound
	}
	return records[0], nil
}

func (r *StubPredictionRepository) DeletePrediction(_ context.Context, userUid string, id string) (bool, error) {
	if r.Err != nil {
		return false, r.Err
	}
	records := r.records[userUid]
	for i, record := range records {
		if record.ID == id {
			r.records[userUid] = append(records[:i], records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *StubPredictionRepository) Cleanup() {
	r.records = make(map[string][]Record)
	r.Err = nil
}
