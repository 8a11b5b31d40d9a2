package service

import (
	"context"
	"fmt"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
)

const day = 24 * time.Hour

// DefaultFallbackHorizon bounds how far after the business date a scrape may
// have happened and still be used by the fallback branch.
const DefaultFallbackHorizon = 2 * day

// SnapshotSelector picks the scrape that best represents a business date when
// scrapes run on an irregular cadence.
type SnapshotSelector struct {
	store SnapshotStore

	// FallbackHorizon caps the fallback branch at date+FallbackHorizon.
	// Zero leaves it unbounded.
	FallbackHorizon time.Duration
}

func NewSnapshotSelector(store SnapshotStore, fallbackHorizon time.Duration) *SnapshotSelector {
	return &SnapshotSelector{store: store, FallbackHorizon: fallbackHorizon}
}

// Select prefers the latest scrape taken no later than a day after the
// business date. Failing that it takes the earliest scrape taken no earlier
// than a day before it. It returns nil when neither exists.
func (s *SnapshotSelector) Select(ctx context.Context, date, locationSlug, menuTypeSlug string) (*domain.Snapshot, error) {
	businessDate, err := time.Parse(domain.BusinessDateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	before := businessDate.Add(day)
	snapshots, err := s.store.FindSnapshots(ctx, SnapshotQuery{
		LocationSlug:      locationSlug,
		MenuTypeSlug:      menuTypeSlug,
		Date:              date,
		ScrapedAtOrBefore: &before,
		Order:             ScrapedDescending,
		Limit:             1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: find prior snapshot: %w", ErrStoreUnavailable, err)
	}
	if len(snapshots) > 0 {
		return &snapshots[0], nil
	}

	after := businessDate.Add(-day)
	fallback := SnapshotQuery{
		LocationSlug:     locationSlug,
		MenuTypeSlug:     menuTypeSlug,
		Date:             date,
		ScrapedAtOrAfter: &after,
		Order:            ScrapedAscending,
		Limit:            1,
	}
	if s.FallbackHorizon > 0 {
		horizon := businessDate.Add(s.FallbackHorizon)
		fallback.ScrapedAtOrBefore = &horizon
	}
	snapshots, err = s.store.FindSnapshots(ctx, fallback)
	if err != nil {
		return nil, fmt.Errorf("%w: find later snapshot: %w", ErrStoreUnavailable, err)
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return &snapshots[0], nil
}
