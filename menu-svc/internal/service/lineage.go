package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"overcooked-menu/menu-svc/internal/domain"
)

// LineageRegistry maps a canonical dish name to the ordered list of hashes
// known to be versions of that dish. A hash belongs to at most one lineage,
// and once assigned it is never moved or removed.
//
// Reads are safe for concurrent use. Reconcile is the only writer.
type LineageRegistry struct {
	store     SnapshotStore
	persisted LineageStore
	logger    *slog.Logger

	reconcileMu sync.Mutex

	mu       sync.RWMutex
	lineages map[string][]string
	owners   map[string]string
}

func NewLineageRegistry(store SnapshotStore, persisted LineageStore, logger *slog.Logger) *LineageRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineageRegistry{
		store:     store,
		persisted: persisted,
		logger:    logger,
		lineages:  map[string][]string{},
		owners:    map[string]string{},
	}
}

// Load replaces the in-memory registry with the persisted one.
func (r *LineageRegistry) Load() error {
	lineages, err := r.persisted.Load()
	if err != nil {
		return fmt.Errorf("load lineages: %w", err)
	}
	owners, err := indexOwners(lineages)
	if err != nil {
		return err
	}
	if lineages == nil {
		lineages = map[string][]string{}
	}

	r.mu.Lock()
	r.lineages = lineages
	r.owners = owners
	r.mu.Unlock()
	return nil
}

// Reconcile appends every hash seen in the snapshot store but not yet in
// any lineage to the lineage named after the dish it was first seen as,
// then writes the registry back. It returns the lineages that grew.
func (r *LineageRegistry) Reconcile(ctx context.Context) ([]domain.LineageGrowth, error) {
	r.reconcileMu.Lock()
	defer r.reconcileMu.Unlock()

	lineages, err := r.persisted.Load()
	if err != nil {
		return nil, fmt.Errorf("load lineages: %w", err)
	}
	if lineages == nil {
		lineages = map[string][]string{}
	}
	owners, err := indexOwners(lineages)
	if err != nil {
		return nil, err
	}

	previous := map[string][]string{}
	added := map[string][]string{}
	err = r.store.ScanHashSightings(ctx, func(sighting domain.HashSighting) error {
		if sighting.Hash == "" {
			return nil
		}
		if _, known := owners[sighting.Hash]; known {
			return nil
		}
		if _, touched := previous[sighting.Name]; !touched {
			previous[sighting.Name] = append([]string{}, lineages[sighting.Name]...)
		}
		lineages[sighting.Name] = append(lineages[sighting.Name], sighting.Hash)
		owners[sighting.Hash] = sighting.Name
		added[sighting.Name] = append(added[sighting.Name], sighting.Hash)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: scan hash sightings: %w", ErrStoreUnavailable, err)
	}

	if err := r.persisted.Save(lineages); err != nil {
		return nil, fmt.Errorf("save lineages: %w", err)
	}

	r.mu.Lock()
	r.lineages = lineages
	r.owners = owners
	r.mu.Unlock()

	growth := make([]domain.LineageGrowth, 0, len(added))
	for name, hashes := range added {
		growth = append(growth, domain.LineageGrowth{
			Name:     name,
			Previous: previous[name],
			Added:    hashes,
		})
	}
	sort.Slice(growth, func(i, j int) bool { return growth[i].Name < growth[j].Name })

	r.logger.Info("lineages reconciled", "lineages", len(lineages), "hashes", len(owners), "grown", len(growth))
	return growth, nil
}

// LineageOf returns the lineage containing hash, or a single-element list
// holding hash when it belongs to none. The result is a copy.
func (r *LineageRegistry) LineageOf(hash string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.owners[hash]
	if !ok {
		return []string{hash}
	}
	return append([]string(nil), r.lineages[name]...)
}

// NameOf returns the canonical name of the lineage holding hash.
func (r *LineageRegistry) NameOf(hash string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.owners[hash]
	return name, ok
}

func (r *LineageRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.lineages)
}

func indexOwners(lineages map[string][]string) (map[string]string, error) {
	names := make([]string, 0, len(lineages))
	for name := range lineages {
		names = append(names, name)
	}
	sort.Strings(names)

	owners := make(map[string]string)
	for _, name := range names {
		for _, hash := range lineages[name] {
			if other, taken := owners[hash]; taken {
				return nil, fmt.Errorf("%w: %s in %q and %q", ErrDuplicateHash, hash, other, name)
			}
			owners[hash] = name
		}
	}
	return owners, nil
}
