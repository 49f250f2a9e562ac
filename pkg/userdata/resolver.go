package userdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/finsight/finsight/pkg/prediction"
	log "github.com/sirupsen/logrus"
)

// Resolver produces the user's data bundle from whatever provider currently
// has it.
type Resolver interface {
	Resolve(ctx context.Context) (prediction.Bundle, error)
}

// ChainResolver walks an ordered list of sources. Each source is attempted
// once; an error or an empty bundle moves the chain to the next source. When
// every source has been exhausted, the final source gets exactly one more
// attempt before the chain reports a single aggregated error. The resolver
// never returns partial data.
type ChainResolver struct {
	sources []Source
}

func NewChainResolver(sources ...Source) *ChainResolver {
	return &ChainResolver{sources: sources}
}

func (r *ChainResolver) Resolve(ctx context.Context) (prediction.Bundle, error) {
	if len(r.sources) == 0 {
		return prediction.Bundle{}, errors.New("no user data sources configured")
	}

	var failures []error
	for _, source := range r.sources {
		bundle, ok := r.attempt(ctx, source, &failures)
		if ok {
			return bundle, nil
		}
	}

	// last resort: the final source gets a second chance before giving up
	lastResort := r.sources[len(r.sources)-1]
	log.Warnf("all user data sources exhausted, retrying %s", lastResort.Name())
	if bundle, ok := r.attempt(ctx, lastResort, &failures); ok {
		return bundle, nil
	}

	return prediction.Bundle{}, fmt.Errorf("could not resolve user data: %w", errors.Join(failures...))
}

func (r *ChainResolver) attempt(ctx context.Context, source Source, failures *[]error) (prediction.Bundle, bool) {
	bundle, err := source.FetchBundle(ctx)
	if err != nil {
		log.Warnf("user data source %s failed: %v", source.Name(), err)
		*failures = append(*failures, fmt.Errorf("%s: %w", source.Name(), err))
		return prediction.Bundle{}, false
	}
	if bundle.IsEmpty() {
		log.Debugf("user data source %s has no data", source.Name())
		*failures = append(*failures, fmt.Errorf("%s: no data", source.Name()))
		return prediction.Bundle{}, false
	}

	log.Debugf("user data resolved from source %s", source.Name())
	return bundle, true
}
