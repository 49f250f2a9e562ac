package userdata

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finsight/finsight/internal/cache"
	"github.com/finsight/finsight/internal/test_utils"
	"github.com/finsight/finsight/pkg/prediction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver fails a configured number of times before succeeding.
type stubResolver struct {
	failures int
	bundle   prediction.Bundle
	calls    int
}

func (r *stubResolver) Resolve(context.Context) (prediction.Bundle, error) {
	r.calls++
	if r.calls <= r.failures {
		return prediction.Bundle{}, fmt.Errorf("attempt %d failed", r.calls)
	}
	return r.bundle, nil
}

func newCachingResolver(inner Resolver, retries int) *CachingResolver {
	return NewCachingResolver(inner, cache.NewLRUCache[prediction.Bundle](16, time.Minute), retries, 0)
}

func TestCachingResolverCachesGoodBundle(t *testing.T) {
	inner := &stubResolver{bundle: bundleWith("p1")}
	resolver := newCachingResolver(inner, 2)
	ctx := test_utils.TestUserContext()

	first, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	second, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingResolverRetries(t *testing.T) {
	inner := &stubResolver{failures: 2, bundle: bundleWith("p1")}
	resolver := newCachingResolver(inner, 2)

	bundle, err := resolver.Resolve(test_utils.TestUserContext())
	require.NoError(t, err)
	assert.Equal(t, "p1", bundle.Records[0].ID)
	assert.Equal(t, 3, inner.calls)
}

func TestCachingResolverExhaustsRetries(t *testing.T) {
	inner := &stubResolver{failures: 10}
	resolver := newCachingResolver(inner, 2)

	_, err := resolver.Resolve(test_utils.TestUserContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attempt 3 failed")
	assert.Equal(t, 3, inner.calls)
}

func TestCachingResolverInvalidate(t *testing.T) {
	inner := &stubResolver{bundle: bundleWith("p1")}
	resolver := newCachingResolver(inner, 0)
	ctx := test_utils.TestUserContext()

	_, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	resolver.Invalidate("test-user-1")

	_, err = resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachingResolverRequiresUser(t *testing.T) {
	resolver := newCachingResolver(&stubResolver{}, 0)

	_, err := resolver.Resolve(context.Background())
	assert.Error(t, err)
}
