package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/finsight/finsight/internal/event_bus"
	"github.com/finsight/finsight/internal/utils"
	"github.com/finsight/finsight/pkg/profile"
	"github.com/finsight/finsight/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidProfile   = errors.New("invalid budget profile")
	ErrModelUnavailable = errors.New("prediction service unavailable")
)

// RecordedEvent is the payload published with event_bus.PredictionRecorded.
type RecordedEvent struct {
	UserUid string
	Record  Record
}

type Service interface {
	Predict(ctx context.Context, p profile.BudgetProfile) (Result, error)
	History(ctx context.Context) (Bundle, error)
	Latest(ctx context.Context) (Record, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	client Client
	repo   Repository
	bus    *event_bus.EventBus
	clock  utils.Clock
}

func NewService(client Client, repo Repository, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		client: client,
		repo:   repo,
		bus:    bus,
		clock:  clock,
	}
}

// Predict derives the feature vector from the submitted profile, obtains a
// prediction from the model service, and records the pair. A storage failure
// does not fail the prediction: the user still gets their result, the record
// is just not persisted.
func (s *ServiceImpl) Predict(ctx context.Context, p profile.BudgetProfile) (Result, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return Result{}, err
	}

	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	// the income-relative ratios are undefined at zero income
	if p.Income <= 0 {
		return Result{}, fmt.Errorf("%w: income must be positive", ErrInvalidProfile)
	}

	features := profile.Derive(p)

	result, err := s.client.Predict(ctx, profile.FeatureRecordToDTO(features))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrModelUnavailable, err)
	}

	record := Record{
		ID:        uuid.NewString(),
		Timestamp: s.clock.Now(),
		Input:     features,
		Output:    result,
	}
	if err := s.repo.StorePrediction(ctx, uid, record); err != nil {
		log.Errorf("could not store prediction for user %s: %v", uid, err)
	} else {
		event := event_bus.NewEvent(ctx, event_bus.PredictionRecorded, RecordedEvent{
			UserUid: uid,
			Record:  record,
		})
		if err := s.bus.Publish(event); err != nil {
			log.Errorf("could not publish prediction recorded event: %v", err)
		}
	}

	return result, nil
}

func (s *ServiceImpl) History(ctx context.Context) (Bundle, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return Bundle{}, err
	}

	records, err := s.repo.GetUserPredictions(ctx, uid)
	if err != nil {
		return Bundle{}, fmt.Errorf("could not load prediction history: %w", err)
	}
	return Bundle{Records: records}, nil
}

func (s *ServiceImpl) Latest(ctx context.Context) (Record, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return Record{}, err
	}
	return s.repo.GetLatestPrediction(ctx, uid)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeletePrediction(ctx, uid, id)
	if err != nil {
		return fmt.Errorf("could not delete prediction: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}
