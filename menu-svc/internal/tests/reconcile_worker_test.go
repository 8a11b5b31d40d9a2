package tests

import (
	"context"
	"path/filepath"
	"testing"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/mocks"
	"overcooked-menu/menu-svc/internal/service"
	"overcooked-menu/menu-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workerFixture struct {
	store    *memorySnapshotStore
	lineages *service.LineageRegistry
	catalog  *service.CatalogRegistry
	file     *storage.YAMLDocument[map[string][]string]
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()
	store := &memorySnapshotStore{}
	file := storage.NewYAMLDocument[map[string][]string](filepath.Join(t.TempDir(), "food_versions.yml"))
	return &workerFixture{
		store:    store,
		lineages: service.NewLineageRegistry(store, file, quietLogger()),
		catalog:  newTestCatalog(t, store),
		file:     file,
	}
}

func TestReconcileWorker_RunOnce(t *testing.T) {
	old := eggMuffin("egg, muffin")
	current := eggMuffin("egg, english muffin")

	tests := []struct {
		name       string
		invalidate bool
		publishErr error
	}{
		{name: "publishes_growth"},
		{name: "drops_superseded_cache_entry", invalidate: true},
		{name: "publish_failure_is_not_fatal", publishErr: assert.AnError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fixture := newWorkerFixture(t)
			fixture.store.add("north", "breakfast", "2024-03-01", businessDay.AddDate(0, 0, -9), old)

			cache := mocks.NewVersionCache(t)
			resolver := service.NewVersionResolver(fixture.lineages, fixture.store, cache, quietLogger())
			publisher := mocks.NewLineagePublisher(t)
			worker := service.NewReconcileWorker(fixture.lineages, fixture.catalog, resolver, publisher, service.ReconcileConfig{
				Writer:             true,
				InvalidateOnGrowth: testCase.invalidate,
			}, quietLogger())

			publisher.On("PublishGrowth", mock.Anything, domain.LineageGrowth{
				Name:     "Egg Muffin",
				Previous: []string{},
				Added:    []string{hashOf(t, old)},
			}).Return(nil).Once()
			require.NoError(t, worker.RunOnce(context.Background()))

			fixture.store.add("north", "breakfast", "2024-03-10", businessDay, current)
			publisher.On("PublishGrowth", mock.Anything, domain.LineageGrowth{
				Name:     "Egg Muffin",
				Previous: []string{hashOf(t, old)},
				Added:    []string{hashOf(t, current)},
			}).Return(testCase.publishErr).Once()
			if testCase.invalidate {
				cache.On("Delete", mock.Anything, service.VersionCacheKey([]string{hashOf(t, old)})).Return(nil).Once()
			}
			require.NoError(t, worker.RunOnce(context.Background()))

			assert.Equal(t, []string{hashOf(t, old), hashOf(t, current)}, fixture.lineages.LineageOf(hashOf(t, old)))
			require.Len(t, fixture.catalog.Locations(), 1)
			assert.Equal(t, "north", fixture.catalog.Locations()[0].Slug)
		})
	}
}

func TestReconcileWorker_RunOnceFailure(t *testing.T) {
	store := mocks.NewSnapshotStore(t)
	store.On("ScanHashSightings", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	fixture := newWorkerFixture(t)
	lineages := service.NewLineageRegistry(store, fixture.file, quietLogger())
	worker := service.NewReconcileWorker(lineages, fixture.catalog, nil, nil, service.ReconcileConfig{Writer: true}, quietLogger())

	assert.ErrorIs(t, worker.RunOnce(context.Background()), service.ErrStoreUnavailable)
}

func TestReconcileWorker_RunAsReader(t *testing.T) {
	fixture := newWorkerFixture(t)
	require.NoError(t, fixture.file.Save(map[string][]string{"Soup": {"aaa", "bbb"}}))

	worker := service.NewReconcileWorker(fixture.lineages, fixture.catalog, nil, nil, service.ReconcileConfig{}, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	worker.Run(ctx)

	assert.Equal(t, []string{"aaa", "bbb"}, fixture.lineages.LineageOf("bbb"))
	persisted, err := fixture.file.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Soup": {"aaa", "bbb"}}, persisted)
}

func TestReconcileWorker_RunAsWriter(t *testing.T) {
	fixture := newWorkerFixture(t)
	item := rawItem("1", 0, "Soup")
	fixture.store.add("north", "lunch", businessDate, businessDay, item)

	worker := service.NewReconcileWorker(fixture.lineages, fixture.catalog, nil, nil, service.ReconcileConfig{Writer: true}, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	worker.Run(ctx)

	persisted, err := fixture.file.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Soup": {hashOf(t, item)}}, persisted)
}
