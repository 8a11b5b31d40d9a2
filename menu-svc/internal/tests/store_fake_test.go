package tests

import (
	"context"
	"sort"
	"sync"
	"time"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"
)

// memorySnapshotStore is an in-memory SnapshotStore with the same query
// semantics as the Postgres store.
type memorySnapshotStore struct {
	mu          sync.Mutex
	snapshots   []domain.Snapshot
	latestCalls int
}

func (s *memorySnapshotStore) add(location, menuType, date string, scrapedAt time.Time, items ...domain.RawItem) {
	infos := map[string]domain.SectionInfo{}
	for _, item := range items {
		infos[item.MenuID.String()] = domain.SectionInfo{}
	}
	snapshot := domain.Snapshot{
		LocationSlug: location,
		MenuTypeSlug: menuType,
		Date:         date,
		ScrapedAt:    scrapedAt,
		Result: domain.ScrapeResult{
			Date:      date,
			MenuInfo:  infos,
			MenuItems: append([]domain.RawItem{}, items...),
		},
	}
	_ = s.AppendSnapshot(context.Background(), &snapshot)
}

func (s *memorySnapshotStore) FindSnapshots(_ context.Context, query service.SnapshotQuery) ([]domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Snapshot
	for _, snapshot := range s.snapshots {
		if snapshot.LocationSlug != query.LocationSlug || snapshot.MenuTypeSlug != query.MenuTypeSlug || snapshot.Date != query.Date {
			continue
		}
		if query.ScrapedAtOrBefore != nil && snapshot.ScrapedAt.After(*query.ScrapedAtOrBefore) {
			continue
		}
		if query.ScrapedAtOrAfter != nil && snapshot.ScrapedAt.Before(*query.ScrapedAtOrAfter) {
			continue
		}
		out = append(out, snapshot)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if query.Order == service.ScrapedDescending {
			return out[i].ScrapedAt.After(out[j].ScrapedAt)
		}
		return out[i].ScrapedAt.Before(out[j].ScrapedAt)
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

func (s *memorySnapshotStore) ScanHashSightings(_ context.Context, fn func(domain.HashSighting) error) error {
	s.mu.Lock()
	ordered := append([]domain.Snapshot{}, s.snapshots...)
	s.mu.Unlock()
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ScrapedAt.Before(ordered[j].ScrapedAt) })

	names := map[string]string{}
	for _, snapshot := range ordered {
		for _, item := range snapshot.Result.MenuItems {
			if item.Hash == "" || item.Food == nil {
				continue
			}
			if _, seen := names[item.Hash]; !seen {
				names[item.Hash] = item.Food.Name
			}
		}
	}
	hashes := make([]string, 0, len(names))
	for hash := range names {
		hashes = append(hashes, hash)
	}
	sort.Strings(hashes)
	for _, hash := range hashes {
		if err := fn(domain.HashSighting{Hash: hash, Name: names[hash]}); err != nil {
			return err
		}
	}
	return nil
}

func (s *memorySnapshotStore) LatestOccurrence(_ context.Context, hashes []string) (*domain.Occurrence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latestCalls++

	wanted := map[string]bool{}
	for _, hash := range hashes {
		wanted[hash] = true
	}
	var best *domain.Occurrence
	for _, snapshot := range s.snapshots {
		for _, item := range snapshot.Result.MenuItems {
			if !wanted[item.Hash] {
				continue
			}
			newer := best == nil || snapshot.ScrapedAt.After(best.ScrapedAt) ||
				(snapshot.ScrapedAt.Equal(best.ScrapedAt) && snapshot.Date > best.Date)
			if newer {
				best = &domain.Occurrence{Date: snapshot.Date, ScrapedAt: snapshot.ScrapedAt, Item: item}
			}
		}
	}
	return best, nil
}

func (s *memorySnapshotStore) DistinctMenus(context.Context) ([]domain.MenuKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[domain.MenuKey]bool{}
	var out []domain.MenuKey
	for _, snapshot := range s.snapshots {
		key := domain.MenuKey{LocationSlug: snapshot.LocationSlug, MenuTypeSlug: snapshot.MenuTypeSlug}
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out, nil
}

func (s *memorySnapshotStore) DistinctFoodProperties(context.Context) ([]domain.FoodProperty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	var out []domain.FoodProperty
	for _, snapshot := range s.snapshots {
		for _, item := range snapshot.Result.MenuItems {
			if item.Food == nil {
				continue
			}
			for _, icon := range item.Food.Icons.FoodIcons {
				if !seen[icon.Slug] {
					seen[icon.Slug] = true
					out = append(out, domain.FoodProperty{Slug: icon.Slug, Name: icon.Name, Description: icon.HelpText})
				}
			}
		}
	}
	return out, nil
}

func (s *memorySnapshotStore) AppendSnapshot(_ context.Context, snapshot *domain.Snapshot) error {
	snapshot.Result.StampHashes()

	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot.ID = int64(len(s.snapshots) + 1)
	s.snapshots = append(s.snapshots, *snapshot)
	return nil
}

func (s *memorySnapshotStore) latestQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestCalls
}

var _ service.SnapshotStore = (*memorySnapshotStore)(nil)
