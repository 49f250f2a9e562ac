package advisor

import (
	"context"
	"fmt"

	"github.com/finsight/finsight/pkg/userdata"
	log "github.com/sirupsen/logrus"
)

// NoDataReply is returned when the resolution chain has nothing for the user.
// Asking for advice without data is a normal state, not an error.
const NoDataReply = "I don't have any saved financial data yet. Please make a savings prediction first!"

type Service interface {
	Chat(ctx context.Context, message string) (string, error)
}

type ServiceImpl struct {
	model    Model
	resolver userdata.Resolver
}

func NewService(model Model, resolver userdata.Resolver) *ServiceImpl {
	return &ServiceImpl{model: model, resolver: resolver}
}

func (s *ServiceImpl) Chat(ctx context.Context, message string) (string, error) {
	bundle, err := s.resolver.Resolve(ctx)
	if err != nil {
		log.Warnf("advisor could not resolve user data: %v", err)
		return NoDataReply, nil
	}

	latest, ok := bundle.Latest()
	if !ok {
		return NoDataReply, nil
	}

	reply, err := s.model.Generate(ctx, BuildPrompt(message, latest))
	if err != nil {
		return "", fmt.Errorf("could not generate advice: %w", err)
	}
	return reply, nil
}
