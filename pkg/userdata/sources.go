package userdata

import (
	"context"

	"github.com/finsight/finsight/pkg/prediction"
	"github.com/finsight/finsight/pkg/user"
)

// Source is one provider in the resolution chain. A source either yields a
// usable bundle, reports that it has nothing (empty bundle, nil error), or
// fails. The chain treats the last two the same way and moves on.
type Source interface {
	Name() string
	FetchBundle(ctx context.Context) (prediction.Bundle, error)
}

// predictorSource asks the prediction model service for the user's history.
type predictorSource struct {
	client prediction.Client
}

func NewPredictorSource(client prediction.Client) Source {
	return &predictorSource{client: client}
}

func (s *predictorSource) Name() string {
	return "predictor"
}

func (s *predictorSource) FetchBundle(ctx context.Context) (prediction.Bundle, error) {
	return s.client.FetchUserData(ctx)
}

// storeSource reads the locally persisted prediction history.
type storeSource struct {
	repo prediction.Repository
}

func NewStoreSource(repo prediction.Repository) Source {
	return &storeSource{repo: repo}
}

func (s *storeSource) Name() string {
	return "store"
}

func (s *storeSource) FetchBundle(ctx context.Context) (prediction.Bundle, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return prediction.Bundle{}, err
	}
	records, err := s.repo.GetUserPredictions(ctx, uid)
	if err != nil {
		return prediction.Bundle{}, err
	}
	return prediction.Bundle{Records: records}, nil
}

// snapshotSource reads the last-known-good document from disk.
type snapshotSource struct {
	store *SnapshotStore
}

func NewSnapshotSource(store *SnapshotStore) Source {
	return &snapshotSource{store: store}
}

func (s *snapshotSource) Name() string {
	return "snapshot"
}

func (s *snapshotSource) FetchBundle(ctx context.Context) (prediction.Bundle, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return prediction.Bundle{}, err
	}
	return s.store.Load(uid)
}
