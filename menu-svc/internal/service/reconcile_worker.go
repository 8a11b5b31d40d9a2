package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const DefaultReconcileInterval = time.Hour

type ReconcileConfig struct {
	Interval time.Duration

	// Writer makes this worker reconcile the registries against the store.
	// Exactly one process may do so; every other process should run with
	// Writer unset and only reload the persisted registries.
	Writer bool

	// InvalidateOnGrowth drops the cached latest version keyed by a
	// lineage's previous hash set once the lineage grows.
	InvalidateOnGrowth bool
}

// ReconcileWorker is the single background writer of the lineage and
// catalog registries.
type ReconcileWorker struct {
	lineages  *LineageRegistry
	catalog   *CatalogRegistry
	resolver  *VersionResolver
	publisher LineagePublisher
	config    ReconcileConfig
	logger    *slog.Logger
}

func NewReconcileWorker(
	lineages *LineageRegistry,
	catalog *CatalogRegistry,
	resolver *VersionResolver,
	publisher LineagePublisher,
	config ReconcileConfig,
	logger *slog.Logger,
) *ReconcileWorker {
	if config.Interval <= 0 {
		config.Interval = DefaultReconcileInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileWorker{
		lineages:  lineages,
		catalog:   catalog,
		resolver:  resolver,
		publisher: publisher,
		config:    config,
		logger:    logger,
	}
}

// Run performs one pass immediately and then one per interval until ctx is
// cancelled. Failed passes are logged and retried on the next tick.
func (w *ReconcileWorker) Run(ctx context.Context) {
	w.logger.Info("registry worker started", "interval", w.config.Interval, "writer", w.config.Writer)
	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		if err := w.tick(ctx); err != nil {
			w.logger.Error("registry pass failed", "error", err)
		}
		select {
		case <-ctx.Done():
			w.logger.Info("registry worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *ReconcileWorker) tick(ctx context.Context) error {
	if w.config.Writer {
		return w.RunOnce(ctx)
	}
	if err := w.lineages.Load(); err != nil {
		return err
	}
	return w.catalog.Load()
}

// RunOnce reconciles the lineage registry, then the catalogs.
func (w *ReconcileWorker) RunOnce(ctx context.Context) error {
	growth, err := w.lineages.Reconcile(ctx)
	if err != nil {
		reconcilePasses.WithLabelValues("error").Inc()
		return fmt.Errorf("reconcile lineages: %w", err)
	}

	for _, grown := range growth {
		lineageHashesAdded.Add(float64(len(grown.Added)))

		if w.config.InvalidateOnGrowth && w.resolver != nil && len(grown.Previous) > 0 {
			if err := w.resolver.Forget(ctx, grown.Previous); err != nil {
				w.logger.Warn("failed to drop superseded latest version", "lineage", grown.Name, "error", err)
			}
		}
		if w.publisher != nil {
			if err := w.publisher.PublishGrowth(ctx, grown); err != nil {
				w.logger.Warn("failed to publish lineage growth", "lineage", grown.Name, "error", err)
			}
		}
	}

	if err := w.catalog.Reconcile(ctx); err != nil {
		reconcilePasses.WithLabelValues("error").Inc()
		return fmt.Errorf("reconcile catalog: %w", err)
	}
	reconcilePasses.WithLabelValues("ok").Inc()
	return nil
}
