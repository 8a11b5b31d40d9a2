package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	versionCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_latest_version_cache_lookups_total",
		Help: "Latest-version cache lookups by result (hit, miss, error)",
	}, []string{"result"})

	versionStoreQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menu_latest_version_store_queries_total",
		Help: "Cross-snapshot latest-occurrence queries sent to the snapshot store",
	})

	reconcilePasses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_reconcile_passes_total",
		Help: "Registry reconciliation passes by outcome",
	}, []string{"outcome"})

	lineageHashesAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "menu_lineage_hashes_added_total",
		Help: "Hashes appended to lineages by reconciliation",
	})

	snapshotsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_snapshots_ingested_total",
		Help: "Snapshots received from the scrape feed by outcome",
	}, []string{"outcome"})
)
