package userdata

import (
	"context"
	"time"

	"github.com/finsight/finsight/internal/cache"
	"github.com/finsight/finsight/pkg/prediction"
	"github.com/finsight/finsight/pkg/user"
	log "github.com/sirupsen/logrus"
)

// CachingResolver decorates a Resolver with the caller-side policy: a bounded
// number of retries with a fixed delay around the whole chain, and a
// per-user cache of the last good bundle so repeated reads within the
// staleness window skip the chain entirely.
type CachingResolver struct {
	inner      Resolver
	cache      cache.Cache[prediction.Bundle]
	retries    int
	retryDelay time.Duration
}

func NewCachingResolver(inner Resolver, c cache.Cache[prediction.Bundle], retries int, retryDelay time.Duration) *CachingResolver {
	return &CachingResolver{
		inner:      inner,
		cache:      c,
		retries:    retries,
		retryDelay: retryDelay,
	}
}

func (r *CachingResolver) Resolve(ctx context.Context) (prediction.Bundle, error) {
	uid, err := user.CurrentUid(ctx)
	if err != nil {
		return prediction.Bundle{}, err
	}

	if bundle, ok := r.cache.Get(uid); ok {
		return bundle, nil
	}

	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			log.Debugf("retrying user data resolution, attempt %d of %d", attempt, r.retries)
			select {
			case <-time.After(r.retryDelay):
			case <-ctx.Done():
				return prediction.Bundle{}, ctx.Err()
			}
		}

		bundle, err := r.inner.Resolve(ctx)
		if err == nil {
			r.cache.Set(uid, bundle)
			return bundle, nil
		}
		lastErr = err
	}

	return prediction.Bundle{}, lastErr
}

// Invalidate drops the cached bundle for a user, forcing the next read to
// walk the chain again. Called when a new prediction is recorded.
func (r *CachingResolver) Invalidate(userUid string) {
	r.cache.Delete(userUid)
}
