package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"overcooked-menu/menu-svc/internal/domain"

	"github.com/cespare/xxhash/v2"
)

// DefaultVersionTTL is how long a resolved latest version is trusted.
const DefaultVersionTTL = 24 * time.Hour

// VersionCacheKey derives the cache key for a lineage from its full hash
// set. Order does not matter; a lineage that has grown gets a new key.
func VersionCacheKey(siblings []string) string {
	sorted := append([]string(nil), siblings...)
	sort.Strings(sorted)

	digest := xxhash.New()
	for _, hash := range sorted {
		_, _ = digest.WriteString(hash)
		_, _ = digest.Write([]byte{0})
	}
	return fmt.Sprintf("latest-version:%d:%016x", len(sorted), digest.Sum64())
}

// VersionResolver finds the most recently scraped formulation of a dish
// across every hash in its lineage.
//
// Concurrent misses on the same lineage may each query the store; the last
// cache write wins. Entries keyed by a lineage's older, smaller hash set are
// left to expire unless they are dropped with Forget.
type VersionResolver struct {
	lineages Lineages
	store    SnapshotStore
	cache    VersionCache
	logger   *slog.Logger
}

func NewVersionResolver(lineages Lineages, store SnapshotStore, cache VersionCache, logger *slog.Logger) *VersionResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &VersionResolver{
		lineages: lineages,
		store:    store,
		cache:    cache,
		logger:   logger,
	}
}

func (r *VersionResolver) ResolveLatest(ctx context.Context, hash string) (*domain.VersionPointer, error) {
	siblings := r.lineages.LineageOf(hash)
	key := VersionCacheKey(siblings)

	if r.cache != nil {
		cached, ok, err := r.cache.Get(ctx, key)
		switch {
		case err != nil:
			versionCacheLookups.WithLabelValues("error").Inc()
			r.logger.Warn("latest version cache read failed", "key", key, "error", err)
		case ok:
			versionCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			versionCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	versionStoreQueries.Inc()
	occurrence, err := r.store.LatestOccurrence(ctx, siblings)
	if err != nil {
		return nil, fmt.Errorf("%w: latest occurrence of %s: %w", ErrStoreUnavailable, hash, err)
	}
	if occurrence == nil {
		return nil, nil
	}

	item, ok := domain.Fingerprint(occurrence.Item)
	if !ok {
		return nil, nil
	}
	version := &domain.VersionPointer{MenuItem: item, Date: occurrence.Date}

	if r.cache != nil {
		if err := r.cache.Put(ctx, key, *version); err != nil {
			r.logger.Warn("latest version cache write failed", "key", key, "error", err)
		}
	}
	return version, nil
}

// Forget drops the cached latest version for the given hash set.
func (r *VersionResolver) Forget(ctx context.Context, siblings []string) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, VersionCacheKey(siblings))
}
