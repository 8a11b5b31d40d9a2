package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"overcooked-menu/menu-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// SnapshotIngestor appends scrape results published by the scraper to the
// snapshot store, stamping each item with its fingerprint on the way in.
type SnapshotIngestor struct {
	Reader MessageReader
	Store  SnapshotStore

	// RetryDelay is the first wait before a message that failed to store is
	// tried again. It doubles on every attempt up to MaxRetryDelay.
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration

	logger *slog.Logger
}

func NewSnapshotIngestor(reader MessageReader, store SnapshotStore, logger *slog.Logger) *SnapshotIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotIngestor{
		Reader:        reader,
		Store:         store,
		RetryDelay:    time.Second,
		MaxRetryDelay: 30 * time.Second,
		logger:        logger,
	}
}

// Start consumes until ctx is cancelled. A message is committed once it has
// been stored or found to be malformed; no later message is fetched before
// that, so a store outage stalls the partition instead of skipping offsets.
func (i *SnapshotIngestor) Start(ctx context.Context) {
	i.logger.Info("snapshot ingestor started")
	for {
		message, err := i.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				i.logger.Info("snapshot ingestor stopped")
				return
			}
			i.logger.Error("error reading snapshot message", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		if !i.handleWithRetry(ctx, message) {
			i.logger.Info("snapshot ingestor stopped", "pending_offset", message.Offset)
			return
		}
		if err := i.Reader.CommitMessages(ctx, message); err != nil {
			i.logger.Error("error committing snapshot message", "offset", message.Offset, "error", err)
		}
	}
}

// handleWithRetry reports false only when ctx ends before the message could
// be stored.
func (i *SnapshotIngestor) handleWithRetry(ctx context.Context, message kafka.Message) bool {
	delay := i.RetryDelay
	for attempt := 1; ; attempt++ {
		err := i.HandleMessage(ctx, message.Value)
		if err == nil || errors.Is(err, ErrMalformedRecord) {
			return true
		}
		i.logger.Error("error ingesting snapshot",
			"offset", message.Offset, "attempt", attempt, "retry_in", delay, "error", err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		if delay *= 2; i.MaxRetryDelay > 0 && delay > i.MaxRetryDelay {
			delay = i.MaxRetryDelay
		}
	}
}

func (i *SnapshotIngestor) HandleMessage(ctx context.Context, payload []byte) error {
	var snapshot domain.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		snapshotsIngested.WithLabelValues("malformed").Inc()
		i.logger.Warn("skipping undecodable snapshot message", "error", err)
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return i.Ingest(ctx, &snapshot)
}

func (i *SnapshotIngestor) Ingest(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		snapshotsIngested.WithLabelValues("malformed").Inc()
		i.logger.Warn("skipping malformed snapshot", "error", err)
		return err
	}

	hashed := snapshot.Result.StampHashes()
	if err := i.Store.AppendSnapshot(ctx, snapshot); err != nil {
		snapshotsIngested.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: append snapshot: %w", ErrStoreUnavailable, err)
	}

	snapshotsIngested.WithLabelValues("ok").Inc()
	i.logger.Info("snapshot ingested",
		"location", snapshot.LocationSlug, "menu_type", snapshot.MenuTypeSlug, "date", snapshot.Date,
		"items", len(snapshot.Result.MenuItems), "hashed", hashed)
	return nil
}

func validateSnapshot(snapshot *domain.Snapshot) error {
	switch {
	case snapshot.LocationSlug == "":
		return fmt.Errorf("%w: missing location slug", ErrMalformedRecord)
	case snapshot.MenuTypeSlug == "":
		return fmt.Errorf("%w: missing menu type slug", ErrMalformedRecord)
	case snapshot.ScrapedAt.IsZero():
		return fmt.Errorf("%w: missing scrape time", ErrMalformedRecord)
	}
	if _, err := time.Parse(domain.BusinessDateLayout, snapshot.Date); err != nil {
		return fmt.Errorf("%w: business date %q", ErrMalformedRecord, snapshot.Date)
	}
	return nil
}
