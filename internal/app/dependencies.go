package app

import (
	"context"
	"database/sql"

	"github.com/finsight/finsight/internal/cache"
	"github.com/finsight/finsight/internal/config"
	"github.com/finsight/finsight/internal/event_bus"
	"github.com/finsight/finsight/internal/utils"
	"github.com/finsight/finsight/pkg/advisor"
	"github.com/finsight/finsight/pkg/prediction"
	"github.com/finsight/finsight/pkg/user"
	"github.com/finsight/finsight/pkg/userdata"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	PredictionClient  prediction.Client
	PredictionRepo    prediction.Repository
	PredictionService prediction.Service
	PredictionHandler *prediction.Handler

	SnapshotStore    *userdata.SnapshotStore
	UserDataResolver *userdata.CachingResolver
	UserDataHandler  *userdata.Handler

	AdvisorService advisor.Service
	AdvisorHandler *advisor.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()

	deps.UserService = user.NewUserService(user.NewUserRepo(db), deps.Clock)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.PredictionClient = prediction.NewHTTPClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout)
	deps.PredictionRepo = prediction.NewPredictionRepository(db)
	deps.PredictionService = prediction.NewService(deps.PredictionClient, deps.PredictionRepo, deps.EventBus, deps.Clock)
	deps.PredictionHandler = prediction.NewHandler(deps.PredictionService, deps.PredictionClient)

	deps.SnapshotStore = userdata.NewSnapshotStore(cfg.Snapshot.Path)
	chain := userdata.NewChainResolver(
		userdata.NewPredictorSource(deps.PredictionClient),
		userdata.NewStoreSource(deps.PredictionRepo),
		userdata.NewSnapshotSource(deps.SnapshotStore),
	)
	bundleCache := cache.NewLRUCache[prediction.Bundle](128, cfg.UserData.CacheTTL)
	deps.UserDataResolver = userdata.NewCachingResolver(chain, bundleCache, cfg.UserData.Retries, cfg.UserData.RetryDelay)
	deps.UserDataHandler = userdata.NewHandler(deps.UserDataResolver)

	userdata.RegisterSnapshotWriter(deps.EventBus, deps.SnapshotStore, deps.UserDataResolver)

	if cfg.Advisor.APIKey != "" {
		model, err := advisor.NewGeminiModel(context.Background(), cfg.Advisor.APIKey, cfg.Advisor.Model)
		if err != nil {
			log.Errorf("could not initialize advisor model, chat disabled: %v", err)
		} else {
			deps.AdvisorService = advisor.NewService(model, deps.UserDataResolver)
			deps.AdvisorHandler = advisor.NewHandler(deps.AdvisorService)
		}
	} else {
		log.Warn("no advisor API key configured, chat disabled")
	}

	return deps
}
