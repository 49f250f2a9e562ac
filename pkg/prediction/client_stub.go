package prediction

import (
	"context"

	"github.com/finsight/finsight/pkg/profile"
)

// StubClient is an in-memory Client for tests. It counts calls and returns
// the configured values.
type StubClient struct {
	PredictCalls  int
	FetchCalls    int
	PingCalls     int
	PredictResult Result
	PredictErr    error
	FetchResult   Bundle
	FetchErr      error
	PingErr       error

	LastFeatures profile.FeatureRecordDTO
}

func NewStubClient() *StubClient {
	return &StubClient{}
}

func (c *StubClient) Predict(_ context.Context, features profile.FeatureRecordDTO) (Result, error) {
	c.PredictCalls++
	c.LastFeatures = features
	if c.PredictErr != nil {
		return Result{}, c.PredictErr
	}
	return c.PredictResult, nil
}

func (c *StubClient) FetchUserData(_ context.Context) (Bundle, error) {
	c.FetchCalls++
	if c.FetchErr != nil {
		return Bundle{}, c.FetchErr
	}
	return c.FetchResult, nil
}

func (c *StubClient) Ping(_ context.Context) error {
	c.PingCalls++
	return c.PingErr
}

func (c *StubClient) Cleanup() {
	*c = StubClient{}
}
